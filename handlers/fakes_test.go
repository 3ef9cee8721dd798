package handlers

import (
	"context"
	"sort"
	"strings"

	"campus-news-api/models"
	"campus-news-api/services"
)

// In-memory repositories backing the handler tests. They honor the same
// not-found and visibility contracts as the gorm implementations.

type memUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uint]*models.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, models.NotFound("user not found")
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, models.NotFound("user not found")
}

func (m *memUserRepo) GetList(ctx context.Context, params models.ListParams) ([]models.User, int64, error) {
	var users []models.User
	for _, user := range m.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, int64(len(users)), nil
}

func (m *memUserRepo) SearchAuthors(ctx context.Context, query string, limit int) ([]models.User, error) {
	return nil, nil
}

func (m *memUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return models.NotFound("user not found")
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.users[id]; !ok {
		return models.NotFound("user not found")
	}
	delete(m.users, id)
	return nil
}

type memArticleRepo struct {
	articles map[uint]*models.Article
	nextID   uint
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{articles: map[uint]*models.Article{}}
}

func (m *memArticleRepo) Create(ctx context.Context, article *models.Article) error {
	for _, existing := range m.articles {
		if existing.Slug == article.Slug {
			return models.Conflict("an article with this slug already exists")
		}
	}
	m.nextID++
	article.ID = m.nextID
	m.articles[article.ID] = article
	return nil
}

func (m *memArticleRepo) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	if article, ok := m.articles[id]; ok {
		return article, nil
	}
	return nil, models.NotFound("article not found")
}

func (m *memArticleRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error) {
	for _, article := range m.articles {
		if article.Slug != slug {
			continue
		}
		if publishedOnly && article.Status != models.ArticlePublished {
			continue
		}
		return article, nil
	}
	return nil, models.NotFound("article not found")
}

func (m *memArticleRepo) GetList(ctx context.Context, params models.ListParams, publishedOnly bool) ([]models.Article, int64, error) {
	var articles []models.Article
	for _, article := range m.articles {
		if publishedOnly && article.Status != models.ArticlePublished {
			continue
		}
		articles = append(articles, *article)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })
	return articles, int64(len(articles)), nil
}

func (m *memArticleRepo) SearchPublished(ctx context.Context, query string, limit int) ([]models.Article, error) {
	var matches []models.Article
	for _, article := range m.articles {
		if article.Status != models.ArticlePublished {
			continue
		}
		if containsFold(article.Title, query) {
			matches = append(matches, *article)
		}
		if len(matches) == limit {
			break
		}
	}
	return matches, nil
}

func (m *memArticleRepo) Update(ctx context.Context, article *models.Article) error {
	m.articles[article.ID] = article
	return nil
}

func (m *memArticleRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.articles[id]; !ok {
		return models.NotFound("article not found")
	}
	delete(m.articles, id)
	return nil
}

type memCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[uint]*models.Comment{}}
}

func (m *memCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	m.nextID++
	comment.ID = m.nextID
	m.comments[comment.ID] = comment
	return nil
}

func (m *memCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	if comment, ok := m.comments[id]; ok {
		return comment, nil
	}
	return nil, models.NotFound("comment not found")
}

func (m *memCommentRepo) ListByArticle(ctx context.Context, articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	for _, comment := range m.comments {
		if comment.ArticleID == articleID {
			comments = append(comments, *comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (m *memCommentRepo) GetList(ctx context.Context, params models.ListParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	for _, comment := range m.comments {
		comments = append(comments, *comment)
	}
	return comments, int64(len(comments)), nil
}

func (m *memCommentRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.comments[id]; !ok {
		return models.NotFound("comment not found")
	}
	delete(m.comments, id)
	return nil
}

type memAdRepo struct {
	ads    map[uint]*models.AdSubmission
	nextID uint
}

func newMemAdRepo() *memAdRepo {
	return &memAdRepo{ads: map[uint]*models.AdSubmission{}}
}

func (m *memAdRepo) Create(ctx context.Context, ad *models.AdSubmission) error {
	m.nextID++
	ad.ID = m.nextID
	m.ads[ad.ID] = ad
	return nil
}

func (m *memAdRepo) GetByID(ctx context.Context, id uint) (*models.AdSubmission, error) {
	if ad, ok := m.ads[id]; ok {
		return ad, nil
	}
	return nil, models.NotFound("ad submission not found")
}

func (m *memAdRepo) GetByReference(ctx context.Context, reference string) (*models.AdSubmission, error) {
	for _, ad := range m.ads {
		if ad.PaymentReference == reference {
			return ad, nil
		}
	}
	return nil, models.NotFound("ad submission not found")
}

func (m *memAdRepo) ListByEmail(ctx context.Context, email string) ([]models.AdSubmission, error) {
	var ads []models.AdSubmission
	for _, ad := range m.ads {
		if ad.Email == email {
			ads = append(ads, *ad)
		}
	}
	sort.Slice(ads, func(i, j int) bool { return ads[i].ID > ads[j].ID })
	return ads, nil
}

func (m *memAdRepo) GetList(ctx context.Context, params models.ListParams, status models.AdStatus) ([]models.AdSubmission, int64, error) {
	var ads []models.AdSubmission
	for _, ad := range m.ads {
		if status != "" && ad.Status != status {
			continue
		}
		ads = append(ads, *ad)
	}
	return ads, int64(len(ads)), nil
}

func (m *memAdRepo) Update(ctx context.Context, ad *models.AdSubmission) error {
	m.ads[ad.ID] = ad
	return nil
}

type memSettingsRepo struct {
	settings *models.Settings
	creates  int
}

func (m *memSettingsRepo) Ensure(ctx context.Context) (*models.Settings, error) {
	if m.settings == nil {
		m.creates++
		m.settings = &models.Settings{
			ID:              models.SettingsRowID,
			SiteName:        "Campus News",
			CommentsEnabled: true,
			AdsEnabled:      true,
			StoriesEnabled:  true,
		}
	}
	return m.settings, nil
}

func (m *memSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	if m.settings == nil {
		return nil, models.NotFound("settings not initialized")
	}
	return m.settings, nil
}

func (m *memSettingsRepo) Update(ctx context.Context, settings *models.Settings) error {
	m.settings = settings
	return nil
}

type memStoryRepo struct {
	stories map[uint]*models.AnonymousStory
	nextID  uint
}

func newMemStoryRepo() *memStoryRepo {
	return &memStoryRepo{stories: map[uint]*models.AnonymousStory{}}
}

func (m *memStoryRepo) Create(ctx context.Context, story *models.AnonymousStory) error {
	m.nextID++
	story.ID = m.nextID
	m.stories[story.ID] = story
	return nil
}

func (m *memStoryRepo) GetByID(ctx context.Context, id uint) (*models.AnonymousStory, error) {
	if story, ok := m.stories[id]; ok {
		return story, nil
	}
	return nil, models.NotFound("story not found")
}

func (m *memStoryRepo) GetList(ctx context.Context, params models.ListParams, status models.StoryStatus) ([]models.AnonymousStory, int64, error) {
	var stories []models.AnonymousStory
	for _, story := range m.stories {
		if status != "" && story.Status != status {
			continue
		}
		stories = append(stories, *story)
	}
	return stories, int64(len(stories)), nil
}

func (m *memStoryRepo) Update(ctx context.Context, story *models.AnonymousStory) error {
	m.stories[story.ID] = story
	return nil
}

func (m *memStoryRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.stories[id]; !ok {
		return models.NotFound("story not found")
	}
	delete(m.stories, id)
	return nil
}

type memContactRepo struct {
	messages map[uint]*models.ContactMessage
	nextID   uint
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{messages: map[uint]*models.ContactMessage{}}
}

func (m *memContactRepo) Create(ctx context.Context, message *models.ContactMessage) error {
	m.nextID++
	message.ID = m.nextID
	m.messages[message.ID] = message
	return nil
}

func (m *memContactRepo) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	if message, ok := m.messages[id]; ok {
		return message, nil
	}
	return nil, models.NotFound("message not found")
}

func (m *memContactRepo) GetList(ctx context.Context, params models.ListParams) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	for _, message := range m.messages {
		messages = append(messages, *message)
	}
	return messages, int64(len(messages)), nil
}

func (m *memContactRepo) Update(ctx context.Context, message *models.ContactMessage) error {
	m.messages[message.ID] = message
	return nil
}

func (m *memContactRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.messages[id]; !ok {
		return models.NotFound("message not found")
	}
	delete(m.messages, id)
	return nil
}

type stubGateway struct {
	verifyStatus string
}

func (g *stubGateway) InitializeTransaction(ctx context.Context, amountMinor int64, email, reference, callbackURL string) (*services.GatewayAuthorization, error) {
	return &services.GatewayAuthorization{
		AuthorizationURL: "https://checkout.example.com/" + reference,
		AccessCode:       "access_" + reference,
		Reference:        reference,
	}, nil
}

func (g *stubGateway) VerifyTransaction(ctx context.Context, reference string) (*services.GatewayTransaction, error) {
	status := g.verifyStatus
	if status == "" {
		status = "success"
	}
	return &services.GatewayTransaction{Status: status, Reference: reference, Amount: 50000}, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
