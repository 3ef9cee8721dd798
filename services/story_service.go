package services

import (
	"context"

	"campus-news-api/models"
	"campus-news-api/repositories"
)

type StoryService interface {
	Submit(ctx context.Context, req models.StoryRequest) (*models.AnonymousStory, error)
	GetList(ctx context.Context, params models.ListParams, status models.StoryStatus) ([]models.AnonymousStory, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.StoryStatus) (*models.AnonymousStory, error)
	Delete(ctx context.Context, id uint) error
}

type storyService struct {
	storyRepo    repositories.StoryRepository
	settingsRepo repositories.SettingsRepository
}

func NewStoryService(storyRepo repositories.StoryRepository, settingsRepo repositories.SettingsRepository) StoryService {
	return &storyService{storyRepo: storyRepo, settingsRepo: settingsRepo}
}

func (s *storyService) Submit(ctx context.Context, req models.StoryRequest) (*models.AnonymousStory, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err == nil && !settings.StoriesEnabled {
		return nil, models.Forbidden("story submissions are currently disabled")
	}

	story := &models.AnonymousStory{
		Title:        req.Title,
		Body:         req.Body,
		Category:     req.Category,
		ContactEmail: req.ContactEmail,
		Status:       models.StoryPending,
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

func (s *storyService) GetList(ctx context.Context, params models.ListParams, status models.StoryStatus) ([]models.AnonymousStory, int64, error) {
	return s.storyRepo.GetList(ctx, params, status)
}

func (s *storyService) UpdateStatus(ctx context.Context, id uint, status models.StoryStatus) (*models.AnonymousStory, error) {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	story.Status = status
	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

func (s *storyService) Delete(ctx context.Context, id uint) error {
	return s.storyRepo.Delete(ctx, id)
}
