package handlers

import (
	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storyService services.StoryService
	Helper       *helper.HTTPHelper
}

func NewStoryHandler(storyService services.StoryService, h *helper.HTTPHelper) *StoryHandler {
	return &StoryHandler{storyService: storyService, Helper: h}
}

func (h *StoryHandler) Submit(c *gin.Context) {
	var req models.StoryRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	story, err := h.storyService.Submit(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, story)
}

func (h *StoryHandler) AdminList(c *gin.Context) {
	params := bindListParams(c)
	status := models.StoryStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		h.Helper.SendAPIError(c, models.ValidationFailed(map[string][]string{
			"status": {"unknown status filter"},
		}))
		return
	}

	stories, total, err := h.storyService.GetList(c.Request.Context(), params, status)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"stories":    stories,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *StoryHandler) AdminUpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	var req models.UpdateStoryStatusRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	story, err := h.storyService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, story)
}

func (h *StoryHandler) AdminDelete(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	if err := h.storyService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "story deleted"})
}
