package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/printenterprise/pe_backend/internal/apperrors"
	"github.com/printenterprise/pe_backend/internal/core/domain"
	portsrepo "github.com/printenterprise/pe_backend/internal/core/ports/repositories"
	"github.com/printenterprise/pe_backend/pkg/storage"
)

// settingsKey names the single shop-wide settings record.
const settingsKey = "settings"

// BoltSettingsRepository stores the settings record as one JSON object blob.
type BoltSettingsRepository struct {
	BaseRepository
}

func newBoltSettingsRepository(db *bolt.DB) portsrepo.SettingsRepositoryFacade {
	return &BoltSettingsRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.SettingsRepositoryFacade = (*BoltSettingsRepository)(nil)

// LoadSettings retrieves the stored settings record, falling back to the
// defaults when none has been written yet.
func (r *BoltSettingsRepository) LoadSettings(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	var data []byte
	err := r.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(storage.CollectionsBucket))
		if bucket == nil {
			return fmt.Errorf("%w: collections bucket missing", apperrors.ErrStorageUnavailable)
		}
		if value := bucket.Get([]byte(settingsKey)); value != nil {
			data = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStorageUnavailable) {
			return domain.Settings{}, err
		}
		return domain.Settings{}, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	if data == nil {
		return domain.DefaultSettings(), nil
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: corrupt settings record: %v", apperrors.ErrStorageUnavailable, err)
	}
	return settings, nil
}

// SaveSettings replaces the stored settings record.
func (r *BoltSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return r.saveCollection(ctx, settingsKey, settings)
}
