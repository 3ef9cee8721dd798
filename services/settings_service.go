package services

import (
	"context"

	"campus-news-api/models"
	"campus-news-api/repositories"
)

type SettingsService interface {
	// Bootstrap is the idempotent singleton setup: the second and every later
	// call leaves the one existing row untouched.
	Bootstrap(ctx context.Context) (*models.Settings, error)
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, req models.UpdateSettingsRequest) (*models.Settings, error)
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Bootstrap(ctx context.Context) (*models.Settings, error) {
	return s.settingsRepo.Ensure(ctx)
}

func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, req models.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.settingsRepo.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	if req.SiteName != nil {
		settings.SiteName = *req.SiteName
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}
	if req.AdsEmail != nil {
		settings.AdsEmail = *req.AdsEmail
	}
	if req.CommentsEnabled != nil {
		settings.CommentsEnabled = *req.CommentsEnabled
	}
	if req.AdsEnabled != nil {
		settings.AdsEnabled = *req.AdsEnabled
	}
	if req.StoriesEnabled != nil {
		settings.StoriesEnabled = *req.StoriesEnabled
	}
	if req.MaxUploadSizeMB != nil {
		settings.MaxUploadSizeMB = *req.MaxUploadSizeMB
	}
	if req.AllowedFileTypes != nil {
		settings.AllowedFileTypes = *req.AllowedFileTypes
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
