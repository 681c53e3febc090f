package repositories

import (
	"errors"
	"fmt"
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSettingsNotFound = errors.New("settings not found")
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the single settings row
func (r *settingsRepository) Get() (*models.Settings, error) {
	var settings models.Settings
	if err := r.db.Order("updated_at DESC").First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

// Save upserts the settings row
func (r *settingsRepository) Save(settings *models.Settings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	settings.UpdatedAt = time.Now()
	if err := r.db.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
