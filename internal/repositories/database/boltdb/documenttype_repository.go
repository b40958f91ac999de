package boltdb

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
)

// documentTypesKey names the document-type registry blob.
const documentTypesKey = "documenttypes"

// BoltDocumentTypeRepository stores the document-type registry as one JSON blob.
type BoltDocumentTypeRepository struct {
	BaseRepository
}

func newBoltDocumentTypeRepository(db *bolt.DB) portsrepo.DocumentTypeRepositoryFacade {
	return &BoltDocumentTypeRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.DocumentTypeRepositoryFacade = (*BoltDocumentTypeRepository)(nil)

func (r *BoltDocumentTypeRepository) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	var types []domain.DocumentType
	if err := r.loadCollection(ctx, documentTypesKey, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *BoltDocumentTypeRepository) SaveDocumentType(ctx context.Context, docType domain.DocumentType) error {
	types, err := r.ListDocumentTypes(ctx)
	if err != nil {
		return err
	}
	return r.saveCollection(ctx, documentTypesKey, append(types, docType))
}

func (r *BoltDocumentTypeRepository) UpdateDocumentType(ctx context.Context, docType domain.DocumentType) error {
	types, err := r.ListDocumentTypes(ctx)
	if err != nil {
		return err
	}
	for i := range types {
		if types[i].ID == docType.ID {
			types[i] = docType
			return r.saveCollection(ctx, documentTypesKey, types)
		}
	}
	return fmt.Errorf("%w: document type %s", apperrors.ErrNotFound, docType.ID)
}

func (r *BoltDocumentTypeRepository) DeleteDocumentType(ctx context.Context, docTypeID string) error {
	types, err := r.ListDocumentTypes(ctx)
	if err != nil {
		return err
	}
	remaining := types[:0]
	found := false
	for _, docType := range types {
		if docType.ID == docTypeID {
			found = true
			continue
		}
		remaining = append(remaining, docType)
	}
	if !found {
		return fmt.Errorf("%w: document type %s", apperrors.ErrNotFound, docTypeID)
	}
	return r.saveCollection(ctx, documentTypesKey, remaining)
}
