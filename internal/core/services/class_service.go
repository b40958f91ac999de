package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/middleware"
)

// classService owns the class collection and each class's unpaid-balance
// aggregate. It is the only writer of that collection; balance changes flow
// through AdjustBalance as signed deltas rather than recomputation.
type classService struct {
	classRepo portsrepo.ClassRepositoryFacade
	jobRepo   portsrepo.PrintJobReader

	// mu serializes mutations of the class collection. The multi-step
	// read-modify-write sequences below are not atomic in the blob store, so
	// interleaving two of them could lose a delta. Lock order is always
	// print-job ledger first, class ledger second; this service never calls
	// back into the print-job ledger.
	mu sync.Mutex
}

// NewClassService creates the class ledger. jobRepo is read-only and only
// consulted by the balance recomputation repair path.
func NewClassService(classRepo portsrepo.ClassRepositoryFacade, jobRepo portsrepo.PrintJobReader) portssvc.ClassSvcFacade {
	return &classService{classRepo: classRepo, jobRepo: jobRepo}
}

var _ portssvc.ClassSvcFacade = (*classService)(nil)

// GetClasses returns every class record. When the backing store cannot be
// read, it degrades to an empty collection while surfacing the typed error.
func (s *classService) GetClasses(ctx context.Context) ([]domain.Class, error) {
	classes, err := s.classRepo.ListClasses(ctx)
	if err != nil {
		return []domain.Class{}, fmt.Errorf("failed to list classes: %w", err)
	}
	if classes == nil {
		classes = []domain.Class{}
	}
	return classes, nil
}

// CreateClass registers a new class with a zero balance. The name must be
// unique case-insensitively.
func (s *classService) CreateClass(ctx context.Context, name string) (*domain.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createClassLocked(ctx, name)
}

// createClassLocked is CreateClass without the lock; callers hold s.mu.
func (s *classService) createClassLocked(ctx context.Context, name string) (*domain.Class, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: class name is required", apperrors.ErrValidation)
	}

	classes, err := s.classRepo.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for uniqueness check: %w", err)
	}
	for _, c := range classes {
		if strings.EqualFold(c.Name, name) {
			return nil, fmt.Errorf("%w: class %q", apperrors.ErrDuplicate, name)
		}
	}

	class := domain.Class{
		ID:          uuid.NewString(),
		Name:        name,
		TotalUnpaid: decimal.Zero,
	}
	if err := s.classRepo.SaveClass(ctx, class); err != nil {
		return nil, fmt.Errorf("failed to save class %q: %w", name, err)
	}
	return &class, nil
}

// UpdateClass renames a class, preserving name uniqueness and the balance.
func (s *classService) UpdateClass(ctx context.Context, classID string, name string) (*domain.Class, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: class name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	class, err := s.classRepo.FindClassByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to find class %s: %w", classID, err)
	}

	classes, err := s.classRepo.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for uniqueness check: %w", err)
	}
	for _, c := range classes {
		if c.ID != classID && strings.EqualFold(c.Name, name) {
			return nil, fmt.Errorf("%w: class %q", apperrors.ErrDuplicate, name)
		}
	}

	class.Name = name
	if err := s.classRepo.UpdateClass(ctx, *class); err != nil {
		return nil, fmt.Errorf("failed to update class %s: %w", classID, err)
	}
	return class, nil
}

// DeleteClass removes a class record. Historical jobs keep referencing the
// name; a later job for that name lazily recreates the class.
func (s *classService) DeleteClass(ctx context.Context, classID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.classRepo.DeleteClass(ctx, classID); err != nil {
		return fmt.Errorf("failed to delete class %s: %w", classID, err)
	}
	return nil
}

// AdjustBalance is the incremental-consistency primitive: it looks the class
// up by name, lazily creating it when absent, and applies
// newBalance = max(0, oldBalance + delta).
//
// The floor-at-zero clamp makes a sequence of deltas non-reversible by
// construction: a negative delta that would drive the balance below zero is
// absorbed rather than carried as a credit.
func (s *classService) AdjustBalance(ctx context.Context, className string, delta decimal.Decimal) (*domain.Class, error) {
	if strings.TrimSpace(className) == "" {
		return nil, fmt.Errorf("%w: class name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	classes, err := s.classRepo.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for balance adjustment: %w", err)
	}

	for i := range classes {
		if !strings.EqualFold(classes[i].Name, className) {
			continue
		}
		class := classes[i]
		class.TotalUnpaid = clampBalance(class.TotalUnpaid.Add(delta))
		if err := s.classRepo.UpdateClass(ctx, class); err != nil {
			return nil, fmt.Errorf("failed to apply balance delta to class %q: %w", class.Name, err)
		}
		return &class, nil
	}

	// A job may reference a class name that was never explicitly registered;
	// create the record on first use and apply the delta to it.
	class := domain.Class{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(className),
		TotalUnpaid: clampBalance(delta),
	}
	if err := s.classRepo.SaveClass(ctx, class); err != nil {
		return nil, fmt.Errorf("failed to lazily create class %q: %w", className, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Lazily created class on first reference",
		slog.String("class_name", class.Name), slog.String("class_id", class.ID))
	return &class, nil
}

// RecomputeBalances rebuilds every class balance from the job history: the
// print-job collection is the source of truth and the balances are derived.
// Day-to-day updates are incremental; this is the reconciliation escape hatch
// for drift left behind by a crash between a job write and its balance write.
func (s *classService) RecomputeBalances(ctx context.Context) ([]domain.Class, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.jobRepo.ListPrintJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list print jobs for recomputation: %w", err)
	}
	classes, err := s.classRepo.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for recomputation: %w", err)
	}

	unpaidByName := make(map[string]decimal.Decimal)
	displayName := make(map[string]string)
	for _, job := range jobs {
		if job.Paid {
			continue
		}
		key := strings.ToLower(job.ClassName)
		unpaidByName[key] = unpaidByName[key].Add(job.TotalPrice)
		if _, ok := displayName[key]; !ok {
			displayName[key] = job.ClassName
		}
	}

	for i := range classes {
		key := strings.ToLower(classes[i].Name)
		recomputed := unpaidByName[key]
		if !classes[i].TotalUnpaid.Equal(recomputed) {
			logger.Warn("Recomputed balance differs from stored aggregate",
				slog.String("class_name", classes[i].Name),
				slog.String("stored", classes[i].TotalUnpaid.String()),
				slog.String("recomputed", recomputed.String()))
		}
		classes[i].TotalUnpaid = recomputed
		delete(unpaidByName, key)
	}

	// Names only the job history knows about get a class record now.
	for key, balance := range unpaidByName {
		classes = append(classes, domain.Class{
			ID:          uuid.NewString(),
			Name:        displayName[key],
			TotalUnpaid: balance,
		})
	}

	if err := s.classRepo.ReplaceClasses(ctx, classes); err != nil {
		return nil, fmt.Errorf("failed to persist recomputed balances: %w", err)
	}
	logger.Info("Class balances recomputed from job history",
		slog.Int("classes", len(classes)), slog.Time("at", time.Now().UTC()))
	return classes, nil
}

// clampBalance floors a balance at zero. Overpayment-style deltas are
// absorbed, never carried as credit.
func clampBalance(balance decimal.Decimal) decimal.Decimal {
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
