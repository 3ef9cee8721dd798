package handlers

import (
	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService services.ContactService
	Helper         *helper.HTTPHelper
}

func NewContactHandler(contactService services.ContactService, h *helper.HTTPHelper) *ContactHandler {
	return &ContactHandler{contactService: contactService, Helper: h}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	message, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, message)
}

func (h *ContactHandler) AdminList(c *gin.Context) {
	params := bindListParams(c)

	messages, total, err := h.contactService.GetList(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"messages":   messages,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ContactHandler) AdminMarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	message, err := h.contactService.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, message)
}

func (h *ContactHandler) AdminDelete(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "message deleted"})
}
