package handlers

import (
	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService services.UploadService
	Helper        *helper.HTTPHelper
}

func NewUploadHandler(uploadService services.UploadService, h *helper.HTTPHelper) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, Helper: h}
}

func (h *UploadHandler) Sign(c *gin.Context) {
	var req models.UploadSignRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	response, err := h.uploadService.Sign(req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, response)
}
