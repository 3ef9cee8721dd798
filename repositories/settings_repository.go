package repositories

import (
	"context"

	"campus-news-api/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Ensure creates the singleton row when absent. Calling it again is a
	// no-op, never an error.
	Ensure(ctx context.Context) (*models.Settings, error)
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Ensure(ctx context.Context) (*models.Settings, error) {
	settings := models.Settings{ID: models.SettingsRowID}
	err := r.db.WithContext(ctx).
		Where("id = ?", models.SettingsRowID).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := r.db.WithContext(ctx).First(&settings, models.SettingsRowID).Error
	if err != nil {
		return nil, translate(err, "settings not initialized", "")
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	settings.ID = models.SettingsRowID
	return r.db.WithContext(ctx).Save(settings).Error
}
