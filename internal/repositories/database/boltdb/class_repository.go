package boltdb

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
)

// classesKey names the class collection blob.
const classesKey = "classes"

// BoltClassRepository stores the class collection as one JSON blob.
type BoltClassRepository struct {
	BaseRepository
}

func newBoltClassRepository(db *bolt.DB) portsrepo.ClassRepositoryFacade {
	return &BoltClassRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ClassRepositoryFacade = (*BoltClassRepository)(nil)

// ListClasses retrieves the whole class collection.
func (r *BoltClassRepository) ListClasses(ctx context.Context) ([]domain.Class, error) {
	var classes []domain.Class
	if err := r.loadCollection(ctx, classesKey, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// FindClassByID scans the collection for the given ID.
func (r *BoltClassRepository) FindClassByID(ctx context.Context, classID string) (*domain.Class, error) {
	classes, err := r.ListClasses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		if classes[i].ID == classID {
			return &classes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: class %s", apperrors.ErrNotFound, classID)
}

// SaveClass appends a new class record.
func (r *BoltClassRepository) SaveClass(ctx context.Context, class domain.Class) error {
	classes, err := r.ListClasses(ctx)
	if err != nil {
		return err
	}
	return r.saveCollection(ctx, classesKey, append(classes, class))
}

// UpdateClass replaces the stored record with the same ID.
func (r *BoltClassRepository) UpdateClass(ctx context.Context, class domain.Class) error {
	classes, err := r.ListClasses(ctx)
	if err != nil {
		return err
	}
	for i := range classes {
		if classes[i].ID == class.ID {
			classes[i] = class
			return r.saveCollection(ctx, classesKey, classes)
		}
	}
	return fmt.Errorf("%w: class %s", apperrors.ErrNotFound, class.ID)
}

// DeleteClass removes the record with the given ID.
func (r *BoltClassRepository) DeleteClass(ctx context.Context, classID string) error {
	classes, err := r.ListClasses(ctx)
	if err != nil {
		return err
	}
	remaining := classes[:0]
	found := false
	for _, class := range classes {
		if class.ID == classID {
			found = true
			continue
		}
		remaining = append(remaining, class)
	}
	if !found {
		return fmt.Errorf("%w: class %s", apperrors.ErrNotFound, classID)
	}
	return r.saveCollection(ctx, classesKey, remaining)
}

// ReplaceClasses rewrites the whole collection in one step.
func (r *BoltClassRepository) ReplaceClasses(ctx context.Context, classes []domain.Class) error {
	return r.saveCollection(ctx, classesKey, classes)
}
