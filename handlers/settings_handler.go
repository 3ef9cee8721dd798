package handlers

import (
	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService services.SettingsService
	Helper          *helper.HTTPHelper
}

func NewSettingsHandler(settingsService services.SettingsService, h *helper.HTTPHelper) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, Helper: h}
}

// Bootstrap seeds the singleton settings row. Safe to call any number of
// times; the row is created at most once.
func (h *SettingsHandler) Bootstrap(c *gin.Context) {
	settings, err := h.settingsService.Bootstrap(c.Request.Context())
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, settings)
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, settings)
}
