package repositories

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
)

// SettingsRepositoryFacade covers the single shop-wide settings record.
type SettingsRepositoryFacade interface {
	// LoadSettings retrieves the settings record, falling back to
	// domain.DefaultSettings when none has been stored yet.
	LoadSettings(ctx context.Context) (domain.Settings, error)

	// SaveSettings replaces the stored settings record.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
