package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
)

// recentJobsLimit caps how many jobs the dashboard lists.
const recentJobsLimit = 5

// reportingService computes the dashboard aggregates by scanning the job and
// class collections. Note that the unpaid total here is summed from the jobs
// on purpose, so the dashboard also reveals drift of the incremental class
// aggregates.
type reportingService struct {
	jobRepo   portsrepo.PrintJobReader
	classRepo portsrepo.ClassReader

	now func() time.Time
}

// ReportingOption customizes the reporting service at construction time.
type ReportingOption func(*reportingService)

// WithReportingClock overrides the time source used for "today".
func WithReportingClock(now func() time.Time) ReportingOption {
	return func(s *reportingService) { s.now = now }
}

// NewReportingService creates the dashboard reporting service.
func NewReportingService(jobRepo portsrepo.PrintJobReader, classRepo portsrepo.ClassReader, opts ...ReportingOption) portssvc.ReportingSvcFacade {
	s := &reportingService{jobRepo: jobRepo, classRepo: classRepo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	jobs, err := s.jobRepo.ListPrintJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list print jobs for dashboard: %w", err)
	}
	classes, err := s.classRepo.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes for dashboard: %w", err)
	}

	now := s.now().UTC()
	stats := domain.DashboardStats{
		TotalJobs:   len(jobs),
		TotalUnpaid: decimal.Zero,
	}

	for _, job := range jobs {
		stats.TotalPages += job.Pages * job.Copies
		if job.IsSameCalendarDay(now) {
			stats.TodayJobs++
		}
		if !job.Paid {
			stats.TotalUnpaid = stats.TotalUnpaid.Add(job.TotalPrice)
		}
	}

	recent := make([]domain.PrintJob, len(jobs))
	copy(recent, jobs)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > recentJobsLimit {
		recent = recent[:recentJobsLimit]
	}
	stats.RecentJobs = recent

	high := make([]domain.Class, 0, len(classes))
	for _, class := range classes {
		if class.TotalUnpaid.IsPositive() {
			high = append(high, class)
		}
	}
	sort.Slice(high, func(i, j int) bool {
		return high[i].TotalUnpaid.GreaterThan(high[j].TotalUnpaid)
	})
	stats.ClassesWithHighBalance = high

	return &stats, nil
}
