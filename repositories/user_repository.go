package repositories

import (
	"context"
	"fmt"

	"campus-news-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetList(ctx context.Context, params models.ListParams) ([]models.User, int64, error)
	SearchAuthors(ctx context.Context, query string, limit int) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error, "user not found", "user already exists")
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate(err, "user not found", "user already exists")
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err, "user not found", "user already exists")
	}
	return &user, nil
}

func (r *userRepository) GetList(ctx context.Context, params models.ListParams) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order(fmt.Sprintf("%s %s", sortColumn(params.SortBy, "created_at", "username", "email", "role"), sortDirection(params.SortOrder))).
		Offset(offset).Limit(params.Limit).Find(&users).Error

	return users, total, err
}

// SearchAuthors matches display names and usernames of users who publish
// content; readers never appear in suggestions.
func (r *userRepository) SearchAuthors(ctx context.Context, query string, limit int) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("role IN ?", []models.UserRole{models.RoleAuthor, models.RoleEditor, models.RoleAdmin}).
		Where("is_active = ?", true).
		Where("display_name ILIKE ? OR username ILIKE ?", pattern, pattern).
		Order("display_name asc").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Save(user).Error, "user not found", "user already exists")
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NotFound("user not found")
	}
	return nil
}
