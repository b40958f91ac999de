package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/dto"
	"github.com/printenterprise/pe_backend/internal/middleware"
)

// printJobService owns the authoritative print-job collection. It is the only
// writer of that collection, and it coordinates the cross-ledger sequence
// explicitly: job state is persisted first, the class balance delta is applied
// second, the notification dispatcher is informed last (best effort).
type printJobService struct {
	jobRepo     portsrepo.PrintJobRepositoryFacade
	classSvc    portssvc.ClassBalanceAdjusterSvc
	settingsSvc portssvc.SettingsSvcFacade
	notifier    portssvc.NotificationDispatcher

	// mu serializes mutating operations. Serial-number derivation reads the
	// collection and the subsequent append must see the same snapshot, and the
	// job-write/balance-write sequences must not interleave. Lock order is
	// always this mutex first, then the class ledger's.
	mu sync.Mutex

	now func() time.Time
}

// PrintJobOption customizes the print-job ledger at construction time.
type PrintJobOption func(*printJobService)

// WithClock overrides the time source; tests use it to pin the calendar date.
func WithClock(now func() time.Time) PrintJobOption {
	return func(s *printJobService) { s.now = now }
}

// NewPrintJobService creates the print-job ledger.
func NewPrintJobService(
	jobRepo portsrepo.PrintJobRepositoryFacade,
	classSvc portssvc.ClassBalanceAdjusterSvc,
	settingsSvc portssvc.SettingsSvcFacade,
	notifier portssvc.NotificationDispatcher,
	opts ...PrintJobOption,
) portssvc.PrintJobSvcFacade {
	s := &printJobService{
		jobRepo:     jobRepo,
		classSvc:    classSvc,
		settingsSvc: settingsSvc,
		notifier:    notifier,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PrintJobSvcFacade = (*printJobService)(nil)

// GetPrintJobs returns every job record. When the backing store cannot be
// read, it presents an empty collection while surfacing the typed error, so
// callers degrade instead of crashing.
func (s *printJobService) GetPrintJobs(ctx context.Context) ([]domain.PrintJob, error) {
	jobs, err := s.jobRepo.ListPrintJobs(ctx)
	if err != nil {
		return []domain.PrintJob{}, fmt.Errorf("failed to list print jobs: %w", err)
	}
	if jobs == nil {
		jobs = []domain.PrintJob{}
	}
	return jobs, nil
}

// GetPrintJobByID returns one job record, or apperrors.ErrNotFound.
func (s *printJobService) GetPrintJobByID(ctx context.Context, jobID string) (*domain.PrintJob, error) {
	job, err := s.jobRepo.FindPrintJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find print job %s: %w", jobID, err)
	}
	return job, nil
}

// GetTodayJobs returns the jobs created on the current calendar date.
func (s *printJobService) GetTodayJobs(ctx context.Context) ([]domain.PrintJob, error) {
	return s.filterJobs(ctx, func(job domain.PrintJob) bool {
		return job.IsSameCalendarDay(s.now().UTC())
	})
}

// GetUnpaidJobs returns the jobs whose price is still owed.
func (s *printJobService) GetUnpaidJobs(ctx context.Context) ([]domain.PrintJob, error) {
	return s.filterJobs(ctx, func(job domain.PrintJob) bool {
		return !job.Paid
	})
}

// GetJobsByClass returns the jobs recorded against a class name. Matching is
// case-insensitive, consistent with class-name uniqueness.
func (s *printJobService) GetJobsByClass(ctx context.Context, className string) ([]domain.PrintJob, error) {
	return s.filterJobs(ctx, func(job domain.PrintJob) bool {
		return strings.EqualFold(job.ClassName, className)
	})
}

func (s *printJobService) filterJobs(ctx context.Context, keep func(domain.PrintJob) bool) ([]domain.PrintJob, error) {
	jobs, err := s.GetPrintJobs(ctx)
	if err != nil {
		return jobs, err
	}
	filtered := make([]domain.PrintJob, 0, len(jobs))
	for _, job := range jobs {
		if keep(job) {
			filtered = append(filtered, job)
		}
	}
	return filtered, nil
}

// CheckDuplicate classifies a draft against recent ledger entries. It never
// blocks creation; the caller decides what to do with a positive answer.
func (s *printJobService) CheckDuplicate(ctx context.Context, req dto.CheckDuplicateRequest) (bool, error) {
	jobs, err := s.jobRepo.ListPrintJobs(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list print jobs for duplicate check: %w", err)
	}
	return IsDuplicateJob(req, jobs, s.now().UTC(), DuplicateWindow), nil
}

// CreatePrintJob records a new job ticket: validates the draft, prices it
// against the current price table, assigns id, serial number and timestamp,
// and persists the record. Serial-number assignment and persistence happen
// under one lock so two creates cannot observe the same collection snapshot.
//
// Only after successful persistence does the unpaid total flow into the class
// balance, and only after that is the dispatcher informed. A failed balance
// write is logged as a reconciliation discrepancy rather than failing the
// create: the persisted job record is the source of truth and
// RecomputeBalances repairs the aggregate.
func (s *printJobService) CreatePrintJob(ctx context.Context, req dto.CreatePrintJobRequest) (*domain.PrintJob, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateDraft(req); err != nil {
		return nil, err
	}

	settings, err := s.settingsSvc.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price table: %w", err)
	}
	totalPrice := CalculatePrice(req.PrintType, req.Pages, req.RectoPages, req.RectoVersoPages, req.Copies, settings.Prices())

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.jobRepo.ListPrintJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger state for serial assignment: %w", err)
	}

	now := s.now().UTC()
	job := domain.PrintJob{
		ID:           uuid.NewString(),
		SerialNumber: NextSerialNumber(jobs, now),
		Timestamp:    now,
		ClassName:    strings.TrimSpace(req.ClassName),
		TeacherName:  req.TeacherName,
		DocumentType: req.DocumentType,
		PrintType:    req.PrintType,
		Pages:        req.Pages,
		Copies:       req.Copies,
		TotalPrice:   totalPrice,
		Paid:         req.Paid,
		Notes:        req.Notes,
	}

	if err := s.jobRepo.SavePrintJob(ctx, job); err != nil {
		// No balance adjustment and no notification: the mutation did not happen.
		return nil, fmt.Errorf("failed to persist print job: %w", err)
	}

	if !job.Paid {
		if _, err := s.classSvc.AdjustBalance(ctx, job.ClassName, job.TotalPrice); err != nil {
			logger.Error("Balance adjustment failed after job persistence; run balance recomputation",
				slog.String("job_id", job.ID),
				slog.String("class_name", job.ClassName),
				slog.String("delta", job.TotalPrice.String()),
				slog.String("error", err.Error()))
		}
	}

	s.notifier.DispatchReceipt(ctx, job, settings)

	logger.Info("Print job recorded",
		slog.String("job_id", job.ID),
		slog.String("serial_number", job.SerialNumber),
		slog.String("class_name", job.ClassName),
		slog.String("total_price", job.TotalPrice.String()))
	return &job, nil
}

// UpdatePrintJob applies the mutable fields of req to the stored record.
// Identity, pricing inputs and class attribution are immutable after
// creation; flipping the paid flag is the one change with a side effect, the
// compensating balance delta.
func (s *printJobService) UpdatePrintJob(ctx context.Context, jobID string, req dto.UpdatePrintJobRequest) (*domain.PrintJob, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.jobRepo.FindPrintJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find print job %s: %w", jobID, err)
	}

	updated := *stored
	updated.Paid = req.Paid
	updated.TeacherName = req.TeacherName
	updated.DocumentType = req.DocumentType
	updated.Notes = req.Notes

	if err := s.jobRepo.UpdatePrintJob(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to persist print job update %s: %w", jobID, err)
	}

	if stored.Paid != updated.Paid {
		// unpaid -> paid settles debt; paid -> unpaid restores it.
		delta := updated.TotalPrice
		if updated.Paid {
			delta = delta.Neg()
		}
		if _, err := s.classSvc.AdjustBalance(ctx, updated.ClassName, delta); err != nil {
			logger.Error("Balance adjustment failed after paid toggle; run balance recomputation",
				slog.String("job_id", updated.ID),
				slog.String("class_name", updated.ClassName),
				slog.String("delta", delta.String()),
				slog.String("error", err.Error()))
		}

		if updated.Paid {
			settings, err := s.settingsSvc.GetSettings(ctx)
			switch {
			case err != nil:
				logger.Warn("Could not load settings for paid notification", slog.String("error", err.Error()))
			case settings.EnableAutoPaidNotification:
				s.notifier.DispatchReceipt(ctx, updated, settings)
			}
		}
	}

	return &updated, nil
}

// DeletePrintJob removes a job record. An unpaid job carries debt, so its
// removal subtracts the total from the owning class after the record is gone.
// If the balance write fails once the removal has succeeded, it is retried
// and, still failing, logged as a reconciliation discrepancy; it is never
// silently dropped.
func (s *printJobService) DeletePrintJob(ctx context.Context, jobID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.jobRepo.FindPrintJobByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to find print job %s: %w", jobID, err)
	}

	if err := s.jobRepo.DeletePrintJob(ctx, jobID); err != nil {
		return fmt.Errorf("failed to delete print job %s: %w", jobID, err)
	}

	if !stored.Paid {
		delta := stored.TotalPrice.Neg()
		_, err := s.classSvc.AdjustBalance(ctx, stored.ClassName, delta)
		if err != nil {
			_, err = s.classSvc.AdjustBalance(ctx, stored.ClassName, delta)
		}
		if err != nil {
			logger.Error("Reconciliation discrepancy: job removed but balance subtraction failed twice; run balance recomputation",
				slog.String("job_id", stored.ID),
				slog.String("class_name", stored.ClassName),
				slog.String("delta", delta.String()),
				slog.String("error", err.Error()))
		}
	}

	return nil
}

// validateDraft rejects malformed drafts before any mutation. The pricing
// calculator itself never clamps, so non-positive counts must stop here.
func validateDraft(req dto.CreatePrintJobRequest) error {
	if req.Pages <= 0 {
		return fmt.Errorf("%w: pages must be positive", apperrors.ErrValidation)
	}
	if req.Copies <= 0 {
		return fmt.Errorf("%w: copies must be positive", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.ClassName) == "" {
		return fmt.Errorf("%w: class name is required", apperrors.ErrValidation)
	}
	switch req.PrintType {
	case domain.Recto, domain.RectoVerso:
		// pages is authoritative
	case domain.Both:
		if req.RectoPages < 0 || req.RectoVersoPages < 0 {
			return fmt.Errorf("%w: per-side page counts must not be negative", apperrors.ErrValidation)
		}
		if req.RectoPages+req.RectoVersoPages != req.Pages {
			return fmt.Errorf("%w: pages must equal rectoPages + rectoVersoPages for print type %q", apperrors.ErrValidation, domain.Both)
		}
	default:
		return fmt.Errorf("%w: unknown print type %q", apperrors.ErrValidation, req.PrintType)
	}
	return nil
}
