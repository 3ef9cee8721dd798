package models

// RegisterRequest carries no role on purpose: everyone registers as a reader
// and only an admin can elevate an account afterwards.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AdSubmissionRequest is shared by /ads/submit and /ads/submit-simple. Field
// names follow the public form payload, hence the camelCase JSON keys.
type AdSubmissionRequest struct {
	FirstName      string `json:"firstName" validate:"required,min=2,max=100"`
	LastName       string `json:"lastName" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	Company        string `json:"company" validate:"omitempty,max=150"`
	BusinessType   string `json:"businessType" validate:"required,oneof=individual small-business organization other"`
	AdType         string `json:"adType" validate:"required,oneof=banner sidebar featured classified"`
	AdTitle        string `json:"adTitle" validate:"required,min=3,max=150"`
	AdDescription  string `json:"adDescription" validate:"required,min=20"`
	TargetAudience string `json:"targetAudience" validate:"required,min=3"`
	Budget         string `json:"budget" validate:"required"`
	Duration       string `json:"duration" validate:"required,oneof=1-week 2-weeks 1-month 3-months 6-months 1-year"`
	StartDate      string `json:"startDate" validate:"required"`
	ImageURL       string `json:"imageUrl" validate:"omitempty,url"`
	WebsiteURL     string `json:"websiteUrl" validate:"omitempty,url"`
	TermsAccepted  bool   `json:"termsAccepted" validate:"required"`
}

type PaymentInitRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Email       string  `json:"email" validate:"required,email"`
	Reference   string  `json:"reference" validate:"omitempty,min=8"`
	CallbackURL string  `json:"callback_url" validate:"omitempty,url"`
}

type PaymentInitResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

type StoryRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Body         string `json:"body" validate:"required,min=20"`
	Category     string `json:"category" validate:"omitempty,max=100"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=5"`
}

type UploadSignRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	FileSize    int64  `json:"file_size" validate:"required,gt=0"`
	ContentType string `json:"content_type" validate:"required"`
}

type UploadSignResponse struct {
	UploadPreset string   `json:"upload_preset"`
	MaxFileSize  int64    `json:"max_file_size"`
	AllowedTypes []string `json:"allowed_types"`
}

type CreateArticleRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=255"`
	Excerpt string `json:"excerpt" validate:"omitempty,max=500"`
	Content string `json:"content" validate:"required"`
}

type UpdateArticleRequest struct {
	Title   string `json:"title" validate:"omitempty,min=3,max=255"`
	Excerpt string `json:"excerpt" validate:"omitempty,max=500"`
	Content string `json:"content" validate:"omitempty"`
}

type UpdateArticleStatusRequest struct {
	Status ArticleStatus `json:"status" validate:"required,oneof=draft published archived"`
}

type UpdateUserRequest struct {
	DisplayName *string   `json:"display_name" validate:"omitempty,max=100"`
	Role        *UserRole `json:"role" validate:"omitempty,oneof=reader author editor admin"`
	IsActive    *bool     `json:"is_active"`
	Bio         *string   `json:"bio" validate:"omitempty,max=1000"`
	AvatarURL   *string   `json:"avatar_url" validate:"omitempty,url"`
	Website     *string   `json:"website" validate:"omitempty,url"`
	Location    *string   `json:"location" validate:"omitempty,max=100"`
}

type UpdateAdStatusRequest struct {
	Status     AdStatus `json:"status" validate:"required,oneof=pending approved published rejected"`
	AdminNotes string   `json:"admin_notes" validate:"omitempty,max=2000"`
}

type UpdateStoryStatusRequest struct {
	Status StoryStatus `json:"status" validate:"required,oneof=pending approved rejected"`
}

type UpdateSettingsRequest struct {
	SiteName         *string `json:"site_name" validate:"omitempty,min=1,max=200"`
	ContactEmail     *string `json:"contact_email" validate:"omitempty,email"`
	AdsEmail         *string `json:"ads_email" validate:"omitempty,email"`
	CommentsEnabled  *bool   `json:"comments_enabled"`
	AdsEnabled       *bool   `json:"ads_enabled"`
	StoriesEnabled   *bool   `json:"stories_enabled"`
	MaxUploadSizeMB  *int    `json:"max_upload_size_mb" validate:"omitempty,gt=0,lte=100"`
	AllowedFileTypes *string `json:"allowed_file_types"`
}

type ListParams struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}

type SuggestionType string

const (
	SuggestionArticle SuggestionType = "article"
	SuggestionAuthor  SuggestionType = "author"
)

type Suggestion struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Type      SuggestionType `json:"type"`
	Highlight string         `json:"highlight"`
}

// PublicAd is the subset of AdSubmission served to unauthenticated callers.
type PublicAd struct {
	ID            uint     `json:"id"`
	AdType        string   `json:"ad_type"`
	AdTitle       string   `json:"ad_title"`
	AdDescription string   `json:"ad_description"`
	ImageURL      string   `json:"image_url,omitempty"`
	WebsiteURL    string   `json:"website_url,omitempty"`
	Duration      string   `json:"duration"`
	StartDate     string   `json:"start_date"`
	Status        AdStatus `json:"status"`
}

func (a *AdSubmission) Public() PublicAd {
	return PublicAd{
		ID:            a.ID,
		AdType:        a.AdType,
		AdTitle:       a.AdTitle,
		AdDescription: a.AdDescription,
		ImageURL:      a.ImageURL,
		WebsiteURL:    a.WebsiteURL,
		Duration:      a.Duration,
		StartDate:     a.StartDate,
		Status:        a.Status,
	}
}

// SubmittedAd is the trimmed shape returned by /ads/submit-simple.
type SubmittedAd struct {
	ID        uint     `json:"id"`
	Status    AdStatus `json:"status"`
	AdTitle   string   `json:"adTitle"`
	Email     string   `json:"email"`
	CreatedAt string   `json:"createdAt"`
}
