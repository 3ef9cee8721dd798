package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"campus-news-api/models"
	"campus-news-api/repositories"
)

type ArticleService interface {
	GetPublishedList(ctx context.Context, params models.ListParams) ([]models.Article, int64, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	Create(ctx context.Context, req models.CreateArticleRequest, authorID uint) (*models.Article, error)
	Update(ctx context.Context, id uint, req models.UpdateArticleRequest) (*models.Article, error)
	UpdateStatus(ctx context.Context, id uint, status models.ArticleStatus) (*models.Article, error)
	Delete(ctx context.Context, id uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) GetPublishedList(ctx context.Context, params models.ListParams) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(ctx, params, true)
}

func (s *articleService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.articleRepo.GetBySlug(ctx, slug, true)
}

func (s *articleService) Create(ctx context.Context, req models.CreateArticleRequest, authorID uint) (*models.Article, error) {
	article := &models.Article{
		AuthorID: authorID,
		Title:    req.Title,
		Slug:     Slugify(req.Title),
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Status:   models.ArticleDraft,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) Update(ctx context.Context, id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		article.Title = req.Title
		article.Slug = Slugify(req.Title)
	}
	if req.Excerpt != "" {
		article.Excerpt = req.Excerpt
	}
	if req.Content != "" {
		article.Content = req.Content
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) UpdateStatus(ctx context.Context, id uint, status models.ArticleStatus) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Status = status
	if status == models.ArticlePublished && article.PublishedAt == nil {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id uint) error {
	return s.articleRepo.Delete(ctx, id)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL-safe slug from a title: lowercased, non-alphanumeric
// runs collapsed into single hyphens, no leading or trailing hyphen.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
