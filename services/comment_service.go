package services

import (
	"context"

	"campus-news-api/models"
	"campus-news-api/repositories"
)

type CommentService interface {
	CreateOnArticle(ctx context.Context, slug string, authorID uint, req models.CreateCommentRequest) (*models.Comment, error)
	ListByArticleSlug(ctx context.Context, slug string) ([]models.Comment, error)
	GetList(ctx context.Context, params models.ListParams) ([]models.Comment, int64, error)
	Delete(ctx context.Context, id uint) error
}

type commentService struct {
	commentRepo  repositories.CommentRepository
	articleRepo  repositories.ArticleRepository
	settingsRepo repositories.SettingsRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, settingsRepo repositories.SettingsRepository) CommentService {
	return &commentService{commentRepo: commentRepo, articleRepo: articleRepo, settingsRepo: settingsRepo}
}

// CreateOnArticle allows any authenticated user to comment on a published
// article, provided commenting is enabled site-wide.
func (s *commentService) CreateOnArticle(ctx context.Context, slug string, authorID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err == nil && !settings.CommentsEnabled {
		return nil, models.Forbidden("comments are currently disabled")
	}

	article, err := s.articleRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: article.ID,
		AuthorID:  authorID,
		Body:      req.Body,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *commentService) ListByArticleSlug(ctx context.Context, slug string) ([]models.Comment, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}

	return s.commentRepo.ListByArticle(ctx, article.ID)
}

func (s *commentService) GetList(ctx context.Context, params models.ListParams) ([]models.Comment, int64, error) {
	return s.commentRepo.GetList(ctx, params)
}

func (s *commentService) Delete(ctx context.Context, id uint) error {
	return s.commentRepo.Delete(ctx, id)
}
