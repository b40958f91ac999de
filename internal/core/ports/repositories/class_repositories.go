package repositories

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
)

// ClassReader defines read operations over the class collection.
type ClassReader interface {
	// ListClasses retrieves the whole class collection.
	ListClasses(ctx context.Context) ([]domain.Class, error)

	// FindClassByID retrieves a single class, or apperrors.ErrNotFound.
	FindClassByID(ctx context.Context, classID string) (*domain.Class, error)
}

// ClassWriter defines write operations over the class collection.
type ClassWriter interface {
	// SaveClass appends a new class record.
	SaveClass(ctx context.Context, class domain.Class) error

	// UpdateClass replaces the stored record with the same ID, or returns
	// apperrors.ErrNotFound.
	UpdateClass(ctx context.Context, class domain.Class) error

	// DeleteClass removes the record with the given ID, or returns
	// apperrors.ErrNotFound.
	DeleteClass(ctx context.Context, classID string) error

	// ReplaceClasses rewrites the whole collection in one step. Used by the
	// balance recomputation repair path.
	ReplaceClasses(ctx context.Context, classes []domain.Class) error
}

// ClassRepositoryFacade combines all class repository interfaces.
type ClassRepositoryFacade interface {
	ClassReader
	ClassWriter
}
