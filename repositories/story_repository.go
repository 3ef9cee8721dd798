package repositories

import (
	"context"

	"campus-news-api/models"

	"gorm.io/gorm"
)

type StoryRepository interface {
	Create(ctx context.Context, story *models.AnonymousStory) error
	GetByID(ctx context.Context, id uint) (*models.AnonymousStory, error)
	GetList(ctx context.Context, params models.ListParams, status models.StoryStatus) ([]models.AnonymousStory, int64, error)
	Update(ctx context.Context, story *models.AnonymousStory) error
	Delete(ctx context.Context, id uint) error
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.AnonymousStory) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *storyRepository) GetByID(ctx context.Context, id uint) (*models.AnonymousStory, error) {
	var story models.AnonymousStory
	err := r.db.WithContext(ctx).First(&story, id).Error
	if err != nil {
		return nil, translate(err, "story not found", "")
	}
	return &story, nil
}

func (r *storyRepository) GetList(ctx context.Context, params models.ListParams, status models.StoryStatus) ([]models.AnonymousStory, int64, error) {
	var stories []models.AnonymousStory
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AnonymousStory{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at " + sortDirection(params.SortOrder)).
		Offset(offset).Limit(params.Limit).Find(&stories).Error

	return stories, total, err
}

func (r *storyRepository) Update(ctx context.Context, story *models.AnonymousStory) error {
	return r.db.WithContext(ctx).Save(story).Error
}

func (r *storyRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.AnonymousStory{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NotFound("story not found")
	}
	return nil
}
