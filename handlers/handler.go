package handlers

import (
	"strconv"

	"campus-news-api/helper"
	"campus-news-api/models"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id path segment. On failure it writes the
// BAD_REQUEST envelope itself.
func parseIDParam(c *gin.Context, h *helper.HTTPHelper) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.SendAPIError(c, models.BadRequest("invalid id"))
		return 0, false
	}
	return uint(id), true
}

func bindListParams(c *gin.Context) models.ListParams {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		params = models.ListParams{}
	}

	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 10
	}
	if params.Limit > 100 {
		params.Limit = 100
	}

	return params
}
