package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"campus-news-api/models"
	"campus-news-api/repositories"

	"github.com/google/uuid"
)

type AdService interface {
	Submit(ctx context.Context, req models.AdSubmissionRequest) (*models.AdSubmission, error)
	GetPublic(ctx context.Context, id uint) (*models.PublicAd, error)
	GetByID(ctx context.Context, id uint) (*models.AdSubmission, error)
	ListByEmail(ctx context.Context, email string) ([]models.AdSubmission, error)
	GetList(ctx context.Context, params models.ListParams, status models.AdStatus) ([]models.AdSubmission, int64, error)
	UpdateStatus(ctx context.Context, id uint, req models.UpdateAdStatusRequest) (*models.AdSubmission, error)
	InitializePayment(ctx context.Context, req models.PaymentInitRequest) (*models.PaymentInitResponse, error)
	VerifyPayment(ctx context.Context, reference string) (*models.AdSubmission, error)
}

type adService struct {
	adRepo       repositories.AdRepository
	settingsRepo repositories.SettingsRepository
	gateway      PaymentGateway
}

func NewAdService(adRepo repositories.AdRepository, settingsRepo repositories.SettingsRepository, gateway PaymentGateway) AdService {
	return &adService{adRepo: adRepo, settingsRepo: settingsRepo, gateway: gateway}
}

// Submit records a new submission. Every submission starts in pending
// regardless of what the caller sends.
func (s *adService) Submit(ctx context.Context, req models.AdSubmissionRequest) (*models.AdSubmission, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err == nil && !settings.AdsEnabled {
		return nil, models.Forbidden("ad submissions are currently disabled")
	}

	ad := &models.AdSubmission{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          strings.ToLower(req.Email),
		Phone:          req.Phone,
		Company:        req.Company,
		BusinessType:   req.BusinessType,
		AdType:         req.AdType,
		AdTitle:        req.AdTitle,
		AdDescription:  req.AdDescription,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
		Duration:       req.Duration,
		StartDate:      req.StartDate,
		ImageURL:       req.ImageURL,
		WebsiteURL:     req.WebsiteURL,
		Status:         models.AdPending,
		PaymentStatus:  models.PaymentUnpaid,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// GetPublic serves the trimmed ad shape, and only for statuses the public may
// see. Everything else is indistinguishable from a missing row.
func (s *adService) GetPublic(ctx context.Context, id uint) (*models.PublicAd, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ad.Status.PubliclyVisible() {
		return nil, models.NotFound("ad submission not found")
	}

	public := ad.Public()
	return &public, nil
}

func (s *adService) GetByID(ctx context.Context, id uint) (*models.AdSubmission, error) {
	return s.adRepo.GetByID(ctx, id)
}

func (s *adService) ListByEmail(ctx context.Context, email string) ([]models.AdSubmission, error) {
	return s.adRepo.ListByEmail(ctx, strings.ToLower(email))
}

func (s *adService) GetList(ctx context.Context, params models.ListParams, status models.AdStatus) ([]models.AdSubmission, int64, error) {
	return s.adRepo.GetList(ctx, params, status)
}

func (s *adService) UpdateStatus(ctx context.Context, id uint, req models.UpdateAdStatusRequest) (*models.AdSubmission, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ad.Status = req.Status
	if req.AdminNotes != "" {
		ad.AdminNotes = req.AdminNotes
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// InitializePayment converts the amount to minor units, generates a reference
// when the caller did not supply one, and asks the gateway for an
// authorization URL.
func (s *adService) InitializePayment(ctx context.Context, req models.PaymentInitRequest) (*models.PaymentInitResponse, error) {
	amountMinor := int64(math.Round(req.Amount * 100))

	reference := req.Reference
	if reference == "" {
		reference = GeneratePaymentReference()
	}

	// Attach the reference to the caller's newest pending submission before
	// touching the gateway, so the verify step can always find it. Without a
	// submission to attach there is nothing a successful charge could approve.
	submissions, err := s.adRepo.ListByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}

	var target *models.AdSubmission
	for i := range submissions {
		ad := &submissions[i]
		if ad.Status == models.AdPending && ad.PaymentReference == "" {
			target = ad
			break
		}
	}
	if target == nil {
		return nil, models.NotFound("no pending ad submission found for this email")
	}

	target.PaymentReference = reference
	if err := s.adRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	auth, err := s.gateway.InitializeTransaction(ctx, amountMinor, req.Email, reference, req.CallbackURL)
	if err != nil {
		return nil, models.Internal("failed to initialize payment")
	}

	return &models.PaymentInitResponse{
		AuthorizationURL: auth.AuthorizationURL,
		AccessCode:       auth.AccessCode,
		Reference:        auth.Reference,
	}, nil
}

// VerifyPayment drives the submission state machine off the gateway's view of
// the transaction: success moves pending to approved and records the amount,
// failure marks the payment failed and leaves the submission pending.
// Re-verifying an approved submission changes nothing.
func (s *adService) VerifyPayment(ctx context.Context, reference string) (*models.AdSubmission, error) {
	ad, err := s.adRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if ad.Status != models.AdPending {
		return ad, nil
	}

	txn, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, models.Internal("failed to verify payment")
	}

	if txn.Succeeded() {
		ad.Status = models.AdApproved
		ad.PaymentStatus = models.PaymentPaid
		ad.AmountPaid = txn.Amount
	} else {
		ad.PaymentStatus = models.PaymentFailed
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// GeneratePaymentReference builds an idempotent reference from the current
// timestamp and a random suffix, e.g. "ADV_1714070400123_9f2b61c4".
func GeneratePaymentReference() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ADV_%d_%s", time.Now().UnixMilli(), suffix)
}
