package handlers

import (
	"campus-news-api/helper"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService services.SearchService
	Helper        *helper.HTTPHelper
}

func NewSearchHandler(searchService services.SearchService, h *helper.HTTPHelper) *SearchHandler {
	return &SearchHandler{searchService: searchService, Helper: h}
}

func (h *SearchHandler) Suggestions(c *gin.Context) {
	suggestions, err := h.searchService.Suggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"suggestions": suggestions})
}
