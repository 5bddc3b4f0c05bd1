package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResumes handles GET /api/v1/resumes
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resumes": h.resumes.List()})
}

// SetDefaultResume handles POST /api/v1/resumes/:id/default
func (h *ResumeHandler) SetDefaultResume(c *gin.Context) {
	id := c.Param("id")
	if err := h.resumes.SetDefault(id); err != nil {
		writeError(c, h.logger, "Failed to set default resume", err)
		return
	}

	h.logger.Info("Default resume changed", slog.String("resume_id", id))
	c.JSON(http.StatusOK, gin.H{"resumes": h.resumes.List()})
}

// DeleteResume handles DELETE /api/v1/resumes/:id
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	id := c.Param("id")
	if err := h.resumes.Delete(id); err != nil {
		writeError(c, h.logger, "Failed to delete resume", err)
		return
	}

	h.logger.Info("Resume deleted", slog.String("resume_id", id))
	c.Status(http.StatusNoContent)
}
