package handlers

import (
	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendAPIError(c, models.Unauthenticated("authentication required",
			gin.H{"reason": "token_missing"}))
		return
	}

	var req models.CreateCommentRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	comment, err := h.commentService.CreateOnArticle(c.Request.Context(), c.Param("slug"), userID.(uint), req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, comment)
}

func (h *CommentHandler) ListByArticle(c *gin.Context) {
	comments, err := h.commentService.ListByArticleSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"comments": comments})
}

func (h *CommentHandler) AdminList(c *gin.Context) {
	params := bindListParams(c)

	comments, total, err := h.commentService.GetList(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"comments":   comments,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *CommentHandler) AdminDelete(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "comment deleted"})
}
