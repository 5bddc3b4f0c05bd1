package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongbtq/career-tracker/internal/api/dto"
	"github.com/cuongbtq/career-tracker/internal/domain"
	"github.com/cuongbtq/career-tracker/internal/events"
	"github.com/cuongbtq/career-tracker/internal/report"
	"github.com/cuongbtq/career-tracker/internal/store"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CreateApplication handles POST /api/v1/applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	app, err := h.store.Create(domain.Draft{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Status:      domain.Status(req.Status),
		Salary:      req.Salary,
		DateApplied: req.DateApplied,
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(c, h.logger, "Failed to create application", err)
		return
	}

	h.logger.Info("Application created",
		slog.String("application_id", app.ID),
		slog.String("company", app.Company),
	)
	h.publish(c.Request.Context(), events.TypeCreated, app)

	h.respondCard(c, http.StatusCreated, app)
}

// GetApplication handles GET /api/v1/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.store.Get(c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "Failed to get application", err)
		return
	}

	h.respondCard(c, http.StatusOK, app)
}

// ListApplications handles GET /api/v1/applications
// Lists applications newest first with optional status filter and cursor pagination
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var req dto.ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	if req.PageSize <= 0 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}

	var status domain.Status
	if req.Status != "" {
		s, err := domain.ParseStatus(req.Status)
		if err != nil {
			writeError(c, h.logger, "Invalid status filter", err)
			return
		}
		status = s
	}

	cursor, err := DecodeApplicationCursor(req.Cursor)
	if err != nil {
		writeError(c, h.logger, "Invalid cursor", err)
		return
	}

	apps, err := h.store.List(store.ApplicationFilter{
		Status:   status,
		PageSize: req.PageSize,
		Cursor:   cursor,
	})
	if err != nil {
		writeError(c, h.logger, "Failed to list applications", err)
		return
	}

	hasMore := len(apps) > req.PageSize
	if hasMore {
		apps = apps[:req.PageSize]
	}

	cards, err := report.BuildCards(apps)
	if err != nil {
		writeError(c, h.logger, "Failed to render applications", err)
		return
	}

	var nextCursor string
	if hasMore {
		nextCursor = EncodeApplicationCursor(&store.ApplicationCursor{ID: apps[len(apps)-1].ID})
	}

	c.JSON(http.StatusOK, dto.ListApplicationsResponse{
		Applications: cards,
		NextCursor:   nextCursor,
	})
}

// UpdateApplication handles PUT /api/v1/applications/:id
// Replaces every field of the application
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req dto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	app := domain.Application{
		ID:          c.Param("id"),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Status:      domain.Status(req.Status),
		Salary:      req.Salary,
		DateApplied: req.DateApplied,
		Description: req.Description,
		Notes:       req.Notes,
	}

	if err := h.store.Update(app); err != nil {
		writeError(c, h.logger, "Failed to update application", err)
		return
	}

	h.logger.Info("Application updated", slog.String("application_id", app.ID))
	h.publish(c.Request.Context(), events.TypeUpdated, app)

	h.respondCard(c, http.StatusOK, app)
}

// UpdateStatus handles PATCH /api/v1/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeError(c, h.logger, "Invalid status", err)
		return
	}

	app, err := h.store.UpdateStatus(c.Param("id"), status)
	if err != nil {
		writeError(c, h.logger, "Failed to update application status", err)
		return
	}

	h.logger.Info("Application status changed",
		slog.String("application_id", app.ID),
		slog.String("status", app.Status.String()),
	)
	h.publish(c.Request.Context(), events.TypeStatusChanged, app)

	h.respondCard(c, http.StatusOK, app)
}

// DeleteApplication handles DELETE /api/v1/applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id := c.Param("id")

	app, err := h.store.Get(id)
	if err != nil {
		writeError(c, h.logger, "Failed to delete application", err)
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeError(c, h.logger, "Failed to delete application", err)
		return
	}

	h.logger.Info("Application deleted", slog.String("application_id", id))
	h.publish(c.Request.Context(), events.TypeDeleted, app)

	c.Status(http.StatusNoContent)
}

func (h *ApplicationHandler) respondCard(c *gin.Context, status int, app domain.Application) {
	card, err := report.BuildCard(app)
	if err != nil {
		writeError(c, h.logger, "Failed to render application", err)
		return
	}
	c.JSON(status, card)
}
