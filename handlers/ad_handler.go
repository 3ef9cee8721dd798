package handlers

import (
	"strings"
	"time"

	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	adService services.AdService
	Helper    *helper.HTTPHelper
}

func NewAdHandler(adService services.AdService, h *helper.HTTPHelper) *AdHandler {
	return &AdHandler{adService: adService, Helper: h}
}

func (h *AdHandler) Submit(c *gin.Context) {
	var req models.AdSubmissionRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	ad, err := h.adService.Submit(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, ad)
}

// SubmitSimple takes the same payload as Submit but answers with a trimmed
// confirmation shape for the public form.
func (h *AdHandler) SubmitSimple(c *gin.Context) {
	var req models.AdSubmissionRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	ad, err := h.adService.Submit(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"submission": models.SubmittedAd{
			ID:        ad.ID,
			Status:    ad.Status,
			AdTitle:   ad.AdTitle,
			Email:     ad.Email,
			CreatedAt: ad.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}

func (h *AdHandler) GetPublicAd(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	ad, err := h.adService.GetPublic(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, ad)
}

func (h *AdHandler) MySubmissions(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" || !strings.Contains(email, "@") {
		h.Helper.SendAPIError(c, models.ValidationFailed(map[string][]string{
			"email": {"a valid email query parameter is required"},
		}))
		return
	}

	ads, err := h.adService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"submissions": ads})
}

func (h *AdHandler) InitializePayment(c *gin.Context) {
	var req models.PaymentInitRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	response, err := h.adService.InitializePayment(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, response)
}

func (h *AdHandler) VerifyPayment(c *gin.Context) {
	reference := strings.TrimSpace(c.Query("reference"))
	if reference == "" {
		h.Helper.SendAPIError(c, models.ValidationFailed(map[string][]string{
			"reference": {"reference query parameter is required"},
		}))
		return
	}

	ad, err := h.adService.VerifyPayment(c.Request.Context(), reference)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"status":         ad.Status,
		"payment_status": ad.PaymentStatus,
		"reference":      ad.PaymentReference,
	})
}

// Admin views below: full rows, any status.

func (h *AdHandler) AdminList(c *gin.Context) {
	params := bindListParams(c)
	status := models.AdStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		h.Helper.SendAPIError(c, models.ValidationFailed(map[string][]string{
			"status": {"unknown status filter"},
		}))
		return
	}

	ads, total, err := h.adService.GetList(c.Request.Context(), params, status)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"ads":        ads,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *AdHandler) AdminGet(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	ad, err := h.adService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, ad)
}

func (h *AdHandler) AdminUpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	var req models.UpdateAdStatusRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	ad, err := h.adService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, ad)
}
