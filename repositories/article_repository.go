package repositories

import (
	"context"
	"fmt"

	"campus-news-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error)
	GetList(ctx context.Context, params models.ListParams, publishedOnly bool) ([]models.Article, int64, error)
	SearchPublished(ctx context.Context, query string, limit int) ([]models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return translate(r.db.WithContext(ctx).Create(article).Error,
		"article not found", "an article with this slug already exists")
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Preload("Author").First(&article, id).Error
	if err != nil {
		return nil, translate(err, "article not found", "")
	}
	return &article, nil
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error) {
	query := r.db.WithContext(ctx).Preload("Author").Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("status = ?", models.ArticlePublished)
	}

	var article models.Article
	if err := query.First(&article).Error; err != nil {
		return nil, translate(err, "article not found", "")
	}
	return &article, nil
}

func (r *articleRepository) GetList(ctx context.Context, params models.ListParams, publishedOnly bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Article{}).Preload("Author")
	if publishedOnly {
		query = query.Where("status = ?", models.ArticlePublished)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := sortColumn(params.SortBy, "created_at", "created_at", "published_at", "title")
	offset := (params.Page - 1) * params.Limit
	err := query.Order(fmt.Sprintf("%s %s", sortBy, sortDirection(params.SortOrder))).
		Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

// SearchPublished does a case-insensitive partial title match over published
// articles only. Unpublished work must never leak into suggestions.
func (r *articleRepository) SearchPublished(ctx context.Context, query string, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ArticlePublished).
		Where("title ILIKE ?", "%"+query+"%").
		Order("published_at desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return translate(r.db.WithContext(ctx).Save(article).Error,
		"article not found", "an article with this slug already exists")
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Article{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.NotFound("article not found")
	}
	return nil
}
