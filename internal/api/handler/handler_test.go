package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongbtq/career-tracker/internal/domain"
	"github.com/cuongbtq/career-tracker/internal/resume"
	"github.com/cuongbtq/career-tracker/internal/session"
	"github.com/cuongbtq/career-tracker/internal/store"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("title", "is required"), http.StatusBadRequest},
		{"invalid date", &domain.InvalidDateError{Value: "x", Err: errors.New("bad")}, http.StatusBadRequest},
		{"invalid status", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, "hired"), http.StatusBadRequest},
		{"stale cursor", store.ErrCursorNotFound, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("failed to delete: %w", domain.ErrApplicationNotFound), http.StatusNotFound},
		{"resume not found", resume.ErrResumeNotFound, http.StatusNotFound},
		{"no session", session.ErrNotAuthenticated, http.StatusUnauthorized},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "client error echoes cause",
			err:      domain.NewValidationError("company", "is required"),
			wantCode: http.StatusBadRequest,
			wantBody: "company: is required",
		},
		{
			name:     "server error hides cause",
			err:      errors.New("disk on fire"),
			wantCode: http.StatusInternalServerError,
			wantBody: "Failed to do thing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeError(c, logger, "Failed to do thing", tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body["error"])
		})
	}
}
