package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongbtq/career-tracker/internal/domain"
	"github.com/cuongbtq/career-tracker/internal/events"
	"github.com/cuongbtq/career-tracker/internal/resume"
	"github.com/cuongbtq/career-tracker/internal/session"
	"github.com/cuongbtq/career-tracker/internal/store"
)

// Options tunes the size of derived views
type Options struct {
	TopLocations  int
	RecentLimit   int
	TimelineLimit int
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger   *slog.Logger
	Store    *store.Store
	Resumes  *resume.Library
	Sessions *session.Manager
	Feed     *events.Feed
	Notifier events.Notifier
	Options  Options
}

// ApplicationHandler handles application HTTP requests
type ApplicationHandler struct {
	logger   *slog.Logger
	store    *store.Store
	notifier events.Notifier
}

// NewApplicationHandler creates a new ApplicationHandler instance
func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = events.Nop{}
	}
	return &ApplicationHandler{
		logger:   deps.Logger,
		store:    deps.Store,
		notifier: notifier,
	}
}

// StatsHandler serves aggregates and the dashboard views
type StatsHandler struct {
	logger  *slog.Logger
	store   *store.Store
	options Options
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(deps *Dependencies) *StatsHandler {
	return &StatsHandler{
		logger:  deps.Logger,
		store:   deps.Store,
		options: deps.Options,
	}
}

// AuthHandler handles the simulated session
type AuthHandler struct {
	logger   *slog.Logger
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(deps *Dependencies) *AuthHandler {
	return &AuthHandler{
		logger:   deps.Logger,
		sessions: deps.Sessions,
	}
}

// ResumeHandler handles resume HTTP requests
type ResumeHandler struct {
	logger  *slog.Logger
	resumes *resume.Library
}

// NewResumeHandler creates a new ResumeHandler instance
func NewResumeHandler(deps *Dependencies) *ResumeHandler {
	return &ResumeHandler{
		logger:  deps.Logger,
		resumes: deps.Resumes,
	}
}

// ActivityHandler serves the recent activity feed
type ActivityHandler struct {
	logger *slog.Logger
	feed   *events.Feed
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(deps *Dependencies) *ActivityHandler {
	return &ActivityHandler{
		logger: deps.Logger,
		feed:   deps.Feed,
	}
}

// statusOf maps an error onto an HTTP status code
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, store.ErrCursorNotFound):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, resume.ErrResumeNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNotAuthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and responds with {"error": ...}. Client errors echo the
// cause, server errors only the summary message.
func writeError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	status := statusOf(err)

	if status == http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// publish hands the change to the notifier. Failures never undo the mutation.
func (h *ApplicationHandler) publish(ctx context.Context, t events.Type, app domain.Application) {
	if err := h.notifier.Notify(ctx, events.New(t, app)); err != nil {
		h.logger.Warn("Failed to publish application event",
			slog.String("type", string(t)),
			slog.String("application_id", app.ID),
			slog.String("error", err.Error()),
		)
	}
}
