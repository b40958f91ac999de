package repositories

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
)

// PrintJobReader defines read operations over the print-job collection.
// The backing store has no secondary indexes; all filtering happens in memory
// after a full list load.
type PrintJobReader interface {
	// ListPrintJobs retrieves the whole print-job collection.
	ListPrintJobs(ctx context.Context) ([]domain.PrintJob, error)

	// FindPrintJobByID retrieves a single job, or apperrors.ErrNotFound.
	FindPrintJobByID(ctx context.Context, jobID string) (*domain.PrintJob, error)
}

// PrintJobWriter defines write operations over the print-job collection.
// Each call rewrites the collection blob; from the caller's point of view the
// mutation is atomic for the one record involved.
type PrintJobWriter interface {
	// SavePrintJob appends a fully-formed job to the collection.
	SavePrintJob(ctx context.Context, job domain.PrintJob) error

	// UpdatePrintJob replaces the stored record with the same ID, or returns
	// apperrors.ErrNotFound.
	UpdatePrintJob(ctx context.Context, job domain.PrintJob) error

	// DeletePrintJob removes the record with the given ID, or returns
	// apperrors.ErrNotFound.
	DeletePrintJob(ctx context.Context, jobID string) error
}

// PrintJobRepositoryFacade combines all print-job repository interfaces.
type PrintJobRepositoryFacade interface {
	PrintJobReader
	PrintJobWriter
}
