package services

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
)

// NotificationDispatcher receives a fully-formed job record plus the settings
// snapshot in force when the mutation happened, and decides independently
// whether and how to notify. Implementations must be best-effort and
// non-blocking: a dispatch failure never rolls back ledger state.
type NotificationDispatcher interface {
	DispatchReceipt(ctx context.Context, job domain.PrintJob, settings domain.Settings)
}
