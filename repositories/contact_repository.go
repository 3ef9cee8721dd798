package repositories

import (
	"context"

	"campus-news-api/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	GetList(ctx context.Context, params models.ListParams) ([]models.ContactMessage, int64, error)
	Update(ctx context.Context, message *models.ContactMessage) error
	Delete(ctx context.Context, id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.WithContext(ctx).First(&message, id).Error
	if err != nil {
		return nil, translate(err, "message not found", "")
	}
	return &message, nil
}

func (r *contactRepository) GetList(ctx context.Context, params models.ListParams) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at " + sortDirection(params.SortOrder)).
		Offset(offset).Limit(params.Limit).Find(&messages).Error

	return messages, total, err
}

func (r *contactRepository) Update(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NotFound("message not found")
	}
	return nil
}
