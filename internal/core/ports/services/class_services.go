package services

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClassBalanceAdjusterSvc is the narrow dependency the print-job ledger needs:
// the incremental-consistency primitive of the class ledger.
type ClassBalanceAdjusterSvc interface {
	// AdjustBalance looks the class up by name (case-insensitively), lazily
	// creating it when absent, and applies newBalance = max(0, old+delta).
	AdjustBalance(ctx context.Context, className string, delta decimal.Decimal) (*domain.Class, error)
}

// ClassSvcFacade exposes the class ledger: CRUD over billing buckets, the
// balance adjustment primitive, and the recompute-from-history repair path.
type ClassSvcFacade interface {
	ClassBalanceAdjusterSvc

	// GetClasses returns every class. Degrades to an empty slice plus
	// apperrors.ErrStorageUnavailable when the store cannot be read.
	GetClasses(ctx context.Context) ([]domain.Class, error)

	// CreateClass registers a new class with a zero balance. Fails with
	// apperrors.ErrDuplicate when the name is already taken (case-insensitive).
	CreateClass(ctx context.Context, name string) (*domain.Class, error)

	// UpdateClass renames a class, keeping name uniqueness.
	UpdateClass(ctx context.Context, classID string, name string) (*domain.Class, error)

	// DeleteClass removes a class record.
	DeleteClass(ctx context.Context, classID string) error

	// RecomputeBalances rebuilds every class balance by summing unpaid jobs per
	// class name, creating class records for names only jobs know about. This
	// is the reconciliation escape hatch for balance drift.
	RecomputeBalances(ctx context.Context) ([]domain.Class, error)
}
