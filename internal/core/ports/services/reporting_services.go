package services

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
)

// ReportingSvcFacade computes the dashboard aggregates from the job and class
// collections. Read-only; no side effects.
type ReportingSvcFacade interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
