package services

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
	"github.com/printenterprise/pe_backend/internal/dto"
)

// PrintJobReaderSvc defines the read-only queries over the print-job ledger.
// All of them are pure filters over the loaded collection.
type PrintJobReaderSvc interface {
	// GetPrintJobs returns every job. When the backing store cannot be read it
	// returns an empty slice together with apperrors.ErrStorageUnavailable so
	// callers can degrade gracefully instead of crashing.
	GetPrintJobs(ctx context.Context) ([]domain.PrintJob, error)

	// GetPrintJobByID returns one job, or apperrors.ErrNotFound.
	GetPrintJobByID(ctx context.Context, jobID string) (*domain.PrintJob, error)

	// GetTodayJobs returns the jobs created on the current calendar date.
	GetTodayJobs(ctx context.Context) ([]domain.PrintJob, error)

	// GetUnpaidJobs returns the jobs whose price has not been settled.
	GetUnpaidJobs(ctx context.Context) ([]domain.PrintJob, error)

	// GetJobsByClass returns the jobs recorded against the given class name.
	GetJobsByClass(ctx context.Context, className string) ([]domain.PrintJob, error)
}

// PrintJobWriterSvc defines the mutating operations of the print-job ledger.
type PrintJobWriterSvc interface {
	// CreatePrintJob prices the draft, assigns id, serial number and timestamp,
	// persists the record, applies the unpaid-balance delta to the owning class
	// and finally informs the notification dispatcher (best effort).
	CreatePrintJob(ctx context.Context, req dto.CreatePrintJobRequest) (*domain.PrintJob, error)

	// UpdatePrintJob applies the mutable fields of req to the stored record.
	// Flipping the paid flag triggers the compensating balance delta.
	UpdatePrintJob(ctx context.Context, jobID string, req dto.UpdatePrintJobRequest) (*domain.PrintJob, error)

	// DeletePrintJob removes the record and, if it was unpaid, removes the debt
	// it represented from its class balance.
	DeletePrintJob(ctx context.Context, jobID string) error
}

// DuplicateCheckerSvc classifies a draft as a probable resubmission. It never
// blocks creation; a confirmed duplicate may still be created by the caller.
type DuplicateCheckerSvc interface {
	CheckDuplicate(ctx context.Context, req dto.CheckDuplicateRequest) (bool, error)
}

// PrintJobSvcFacade combines all print-job ledger interfaces.
type PrintJobSvcFacade interface {
	PrintJobReaderSvc
	PrintJobWriterSvc
	DuplicateCheckerSvc
}
