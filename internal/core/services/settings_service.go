package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
	portssvc "github.com/printenterprise/pe_backend/internal/core/ports/services"
	"github.com/printenterprise/pe_backend/internal/dto"
)

// settingsService exposes the shop-wide settings record. The ledger core
// reads a fresh snapshot per operation; nothing caches settings across
// mutations.
type settingsService struct {
	repo portsrepo.SettingsRepositoryFacade
	mu   sync.Mutex
}

// NewSettingsService creates the settings service.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{repo: repo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return domain.DefaultSettings(), fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings merges the fields present in req over the stored record, the
// way the settings screen saves one section at a time.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings for update: %w", err)
	}

	if req.ShopName != nil {
		settings.ShopName = *req.ShopName
	}
	if req.ContactInfo != nil {
		settings.ContactInfo = *req.ContactInfo
	}
	if req.PriceRecto != nil {
		settings.PriceRecto = *req.PriceRecto
	}
	if req.PriceRectoVerso != nil {
		settings.PriceRectoVerso = *req.PriceRectoVerso
	}
	if req.PriceBoth != nil {
		settings.PriceBoth = *req.PriceBoth
	}
	if req.MaxUnpaidThreshold != nil {
		settings.MaxUnpaidThreshold = *req.MaxUnpaidThreshold
	}
	if req.WhatsappTemplate != nil {
		settings.WhatsappTemplate = *req.WhatsappTemplate
	}
	if req.DefaultSavePath != nil {
		settings.DefaultSavePath = *req.DefaultSavePath
	}
	if req.EnableAutoPdfSave != nil {
		settings.EnableAutoPdfSave = *req.EnableAutoPdfSave
	}
	if req.EnableWhatsappNotification != nil {
		settings.EnableWhatsappNotification = *req.EnableWhatsappNotification
	}
	if req.EnableAutoPaidNotification != nil {
		settings.EnableAutoPaidNotification = *req.EnableAutoPaidNotification
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
