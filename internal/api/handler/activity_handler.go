package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongbtq/career-tracker/internal/api/dto"
)

const defaultActivityLimit = 10

// ListActivity handles GET /api/v1/activity
// Returns recent application changes, newest first
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	var req dto.ActivityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	if req.Limit == 0 {
		req.Limit = defaultActivityLimit
	}

	c.JSON(http.StatusOK, dto.ActivityResponse{Events: h.feed.Recent(req.Limit)})
}
