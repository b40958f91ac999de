package services

import (
	"context"

	"github.com/printenterprise/pe_backend/internal/core/domain"
	"github.com/printenterprise/pe_backend/internal/dto"
)

// SettingsSvcFacade exposes the shop-wide settings record. The ledger core
// consumes the snapshot it returns; it never caches one across mutations.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error)
}
