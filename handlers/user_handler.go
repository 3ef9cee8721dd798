package handlers

import (
	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/repositories"

	"github.com/gin-gonic/gin"
)

// UserHandler is the admin-only user management surface. It talks to the
// repository directly; the operations are plain row updates with no business
// rules beyond role validity.
type UserHandler struct {
	userRepo repositories.UserRepository
	Helper   *helper.HTTPHelper
}

func NewUserHandler(userRepo repositories.UserRepository, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userRepo: userRepo, Helper: h}
}

func (h *UserHandler) AdminList(c *gin.Context) {
	params := bindListParams(c)

	users, total, err := h.userRepo.GetList(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"users":      users,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *UserHandler) AdminUpdate(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Website != nil {
		user.Website = *req.Website
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := h.userRepo.Update(c.Request.Context(), user); err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, user)
}

func (h *UserHandler) AdminDelete(c *gin.Context) {
	id, ok := parseIDParam(c, h.Helper)
	if !ok {
		return
	}

	if err := h.userRepo.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendAPIError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{"message": "user deleted"})
}
