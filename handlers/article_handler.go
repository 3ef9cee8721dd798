package handlers

import (
	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) GetPublishedArticles(c *gin.Context) {
	params := bindListParams(c)

	articles, total, err := h.articleService.GetPublishedList(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ArticleHandler) GetPublishedArticle(c *gin.Context) {
	article, err := h.articleService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	user := c.MustGet("current_user").(*models.User)

	var req models.CreateArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req, user.ID)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

func (h *ArticleHandler) UpdateArticleStatus(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	var req models.UpdateArticleStatusRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	article, err := h.articleService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "article deleted"})
}
