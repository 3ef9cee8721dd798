package services

import (
	"context"
	"testing"

	"campus-news-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "beyond-the-lecture-hall", Slugify("Beyond the Lecture Hall!"))
	assert.Equal(t, "voice-matters", Slugify("Voice Matters"))
	assert.Equal(t, "q-a-with-the-dean", Slugify("Q&A with the Dean"))
	assert.Equal(t, "2024-budget-review", Slugify("  2024 Budget Review  "))
}

func TestCreateArticleDerivesSlugAndDraftStatus(t *testing.T) {
	svc := NewArticleService(&fakeArticleRepo{})

	article, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:   "Beyond the Lecture Hall",
		Content: "How students are redefining success.",
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, "beyond-the-lecture-hall", article.Slug)
	assert.Equal(t, models.ArticleDraft, article.Status)
	assert.Equal(t, uint(7), article.AuthorID)
}

func TestUpdateStatusStampsPublishedAtOnce(t *testing.T) {
	repo := &fakeArticleRepo{}
	svc := NewArticleService(repo)

	article, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:   "Campus Elections",
		Content: "Coverage of the campus elections.",
	}, 1)
	require.NoError(t, err)
	require.Nil(t, article.PublishedAt)

	published, err := svc.UpdateStatus(context.Background(), article.ID, models.ArticlePublished)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Republishing keeps the original publication time.
	archived, err := svc.UpdateStatus(context.Background(), article.ID, models.ArticleArchived)
	require.NoError(t, err)
	republished, err := svc.UpdateStatus(context.Background(), archived.ID, models.ArticlePublished)
	require.NoError(t, err)

	assert.Equal(t, firstStamp, *republished.PublishedAt)
}

func TestGetPublishedBySlugHidesDrafts(t *testing.T) {
	repo := &fakeArticleRepo{}
	svc := NewArticleService(repo)

	article, err := svc.Create(context.Background(), models.CreateArticleRequest{
		Title:   "Hidden Draft",
		Content: "Not ready yet.",
	}, 1)
	require.NoError(t, err)

	_, err = svc.GetPublishedBySlug(context.Background(), article.Slug)
	assert.Error(t, err)

	_, err = svc.UpdateStatus(context.Background(), article.ID, models.ArticlePublished)
	require.NoError(t, err)

	found, err := svc.GetPublishedBySlug(context.Background(), article.Slug)
	require.NoError(t, err)
	assert.Equal(t, article.ID, found.ID)
}
