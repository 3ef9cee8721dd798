package services

import (
	"context"

	"campus-news-api/models"
)

// Base fakes with not-found defaults; tests embed these and override what
// they need.

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.users == nil {
		f.users = map[uint]*models.User{}
	}
	user.ID = uint(len(f.users) + 1)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, models.NotFound("user not found")
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, models.NotFound("user not found")
}

func (f *fakeUserRepo) GetList(ctx context.Context, params models.ListParams) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) SearchAuthors(ctx context.Context, query string, limit int) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.users[id]; !ok {
		return models.NotFound("user not found")
	}
	delete(f.users, id)
	return nil
}

type fakeArticleRepo struct {
	articles map[uint]*models.Article
}

func (f *fakeArticleRepo) Create(ctx context.Context, article *models.Article) error {
	if f.articles == nil {
		f.articles = map[uint]*models.Article{}
	}
	article.ID = uint(len(f.articles) + 1)
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	if article, ok := f.articles[id]; ok {
		return article, nil
	}
	return nil, models.NotFound("article not found")
}

func (f *fakeArticleRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error) {
	for _, article := range f.articles {
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

func (f *fakeArticleRepo) GetList(ctx context.Context, params models.ListParams, publishedOnly bool) ([]models.Article, int64, error) {
	var articles []models.Article
	for _, article := range f.articles {
		if publishedOnly && article.Status != models.ArticlePublished {
			continue
		}
		articles = append(articles, *article)
	}
	return articles, int64(len(articles)), nil
}

func (f *fakeArticleRepo) SearchPublished(ctx context.Context, query string, limit int) ([]models.Article, error) {
	return nil, nil
}

func (f *fakeArticleRepo) Update(ctx context.Context, article *models.Article) error {
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.articles[id]; !ok {
		return models.NotFound("article not found")
	}
	delete(f.articles, id)
	return nil
}

type fakeAdRepo struct {
	ads map[uint]*models.AdSubmission
}

func (f *fakeAdRepo) Create(ctx context.Context, ad *models.AdSubmission) error {
	if f.ads == nil {
		f.ads = map[uint]*models.AdSubmission{}
	}
	ad.ID = uint(len(f.ads) + 1)
	f.ads[ad.ID] = ad
	return nil
}

func (f *fakeAdRepo) GetByID(ctx context.Context, id uint) (*models.AdSubmission, error) {
	if ad, ok := f.ads[id]; ok {
		return ad, nil
	}
	return nil, models.NotFound("ad submission not found")
}

func (f *fakeAdRepo) GetByReference(ctx context.Context, reference string) (*models.AdSubmission, error) {
	for _, ad := range f.ads {
		if ad.PaymentReference == reference {
			return ad, nil
		}
	}
	return nil, models.NotFound("ad submission not found")
}

func (f *fakeAdRepo) ListByEmail(ctx context.Context, email string) ([]models.AdSubmission, error) {
	var ads []models.AdSubmission
	for _, ad := range f.ads {
		if ad.Email == email {
			ads = append(ads, *ad)
		}
	}
	return ads, nil
}

func (f *fakeAdRepo) GetList(ctx context.Context, params models.ListParams, status models.AdStatus) ([]models.AdSubmission, int64, error) {
	var ads []models.AdSubmission
	for _, ad := range f.ads {
		if status != "" && ad.Status != status {
			continue
		}
		ads = append(ads, *ad)
	}
	return ads, int64(len(ads)), nil
}

func (f *fakeAdRepo) Update(ctx context.Context, ad *models.AdSubmission) error {
	f.ads[ad.ID] = ad
	return nil
}

type fakeSettingsRepo struct {
	settings *models.Settings
	ensures  int
}

func (f *fakeSettingsRepo) Ensure(ctx context.Context) (*models.Settings, error) {
	f.ensures++
	if f.settings == nil {
		f.settings = &models.Settings{
			ID:              models.SettingsRowID,
			SiteName:        "Campus News",
			CommentsEnabled: true,
			AdsEnabled:      true,
			StoriesEnabled:  true,
		}
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	if f.settings == nil {
		return nil, models.NotFound("settings not initialized")
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, settings *models.Settings) error {
	f.settings = settings
	return nil
}

type fakeGateway struct {
	initCalls   int
	verifyCalls int
	verifyTxn   *GatewayTransaction

	lastAmount    int64
	lastReference string
}

func (f *fakeGateway) InitializeTransaction(ctx context.Context, amountMinor int64, email, reference, callbackURL string) (*GatewayAuthorization, error) {
	f.initCalls++
	f.lastAmount = amountMinor
	f.lastReference = reference
	return &GatewayAuthorization{
		AuthorizationURL: "https://checkout.example.com/" + reference,
		AccessCode:       "access_" + reference,
		Reference:        reference,
	}, nil
}

func (f *fakeGateway) VerifyTransaction(ctx context.Context, reference string) (*GatewayTransaction, error) {
	f.verifyCalls++
	if f.verifyTxn != nil {
		return f.verifyTxn, nil
	}
	return &GatewayTransaction{Status: "success", Reference: reference, Amount: 50000}, nil
}
