package repositories

import (
	"context"

	"campus-news-api/models"

	"gorm.io/gorm"
)

type AdRepository interface {
	Create(ctx context.Context, ad *models.AdSubmission) error
	GetByID(ctx context.Context, id uint) (*models.AdSubmission, error)
	GetByReference(ctx context.Context, reference string) (*models.AdSubmission, error)
	ListByEmail(ctx context.Context, email string) ([]models.AdSubmission, error)
	GetList(ctx context.Context, params models.ListParams, status models.AdStatus) ([]models.AdSubmission, int64, error)
	Update(ctx context.Context, ad *models.AdSubmission) error
}

type adRepository struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ctx context.Context, ad *models.AdSubmission) error {
	return translate(r.db.WithContext(ctx).Create(ad).Error,
		"ad submission not found", "an ad submission with this payment reference already exists")
}

func (r *adRepository) GetByID(ctx context.Context, id uint) (*models.AdSubmission, error) {
	var ad models.AdSubmission
	err := r.db.WithContext(ctx).First(&ad, id).Error
	if err != nil {
		return nil, translate(err, "ad submission not found", "")
	}
	return &ad, nil
}

func (r *adRepository) GetByReference(ctx context.Context, reference string) (*models.AdSubmission, error) {
	var ad models.AdSubmission
	err := r.db.WithContext(ctx).Where("payment_reference = ?", reference).First(&ad).Error
	if err != nil {
		return nil, translate(err, "ad submission not found", "")
	}
	return &ad, nil
}

func (r *adRepository) ListByEmail(ctx context.Context, email string) ([]models.AdSubmission, error) {
	var ads []models.AdSubmission
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at desc").
		Find(&ads).Error
	return ads, err
}

func (r *adRepository) GetList(ctx context.Context, params models.ListParams, status models.AdStatus) ([]models.AdSubmission, int64, error) {
	var ads []models.AdSubmission
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AdSubmission{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at " + sortDirection(params.SortOrder)).
		Offset(offset).Limit(params.Limit).Find(&ads).Error

	return ads, total, err
}

func (r *adRepository) Update(ctx context.Context, ad *models.AdSubmission) error {
	return translate(r.db.WithContext(ctx).Save(ad).Error,
		"ad submission not found", "an ad submission with this payment reference already exists")
}
