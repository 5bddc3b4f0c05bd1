package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongbtq/career-tracker/internal/api/dto"
	"github.com/cuongbtq/career-tracker/internal/api/handler"
	"github.com/cuongbtq/career-tracker/internal/events"
	"github.com/cuongbtq/career-tracker/internal/report"
	"github.com/cuongbtq/career-tracker/internal/resume"
	"github.com/cuongbtq/career-tracker/internal/session"
	"github.com/cuongbtq/career-tracker/internal/store"
)

var fixedNow = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

type testServer struct {
	engine *gin.Engine
	feed   *events.Feed
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := store.NewStore(logger, func() time.Time { return fixedNow })
	require.NoError(t, s.Seed(store.MockApplications()))

	feed := events.NewFeed(10)
	deps := &handler.Dependencies{
		Logger:   logger,
		Store:    s,
		Resumes:  resume.NewLibrary(resume.MockResumes()),
		Sessions: session.NewManager(0, "John Doe", nil),
		Feed:     feed,
		Notifier: events.Multi{feed},
	}

	return &testServer{
		engine: SetupRouter(deps, Config{ServiceName: "tracker-api"}),
		feed:   feed,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "tracker-api", body["service"])
	assert.EqualValues(t, 5, body["applications"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_Propagated(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/applications", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/v1/applications", nil)

	w := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "career_tracker_http_requests_total")
	assert.Contains(t, w.Body.String(), `route="/api/v1/applications"`)
}

func TestListApplications(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/applications", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListApplicationsResponse](t, w)
	require.Len(t, resp.Applications, 5)
	assert.Equal(t, "1", resp.Applications[0].ID)
	assert.Equal(t, "Interview", resp.Applications[0].StatusLabel)
	assert.Equal(t, "Jan 15, 2024", resp.Applications[0].FormattedDate)
	assert.Empty(t, resp.NextCursor)
}

func TestListApplications_Pagination(t *testing.T) {
	s := newTestServer(t)

	var ids []string
	path := "/api/v1/applications?page_size=2"
	for pages := 0; pages < 5; pages++ {
		w := s.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.ListApplicationsResponse](t, w)
		assert.LessOrEqual(t, len(resp.Applications), 2)
		for _, c := range resp.Applications {
			ids = append(ids, c.ID)
		}
		if resp.NextCursor == "" {
			break
		}
		path = "/api/v1/applications?page_size=2&cursor=" + resp.NextCursor
	}

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
}

func TestListApplications_Filters(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantCount int
	}{
		{name: "interview only", query: "?status=interview", wantCode: http.StatusOK, wantCount: 2},
		{name: "withdrawn is empty", query: "?status=withdrawn", wantCode: http.StatusOK, wantCount: 0},
		{name: "unknown status", query: "?status=hired", wantCode: http.StatusBadRequest},
		{name: "garbage cursor", query: "?cursor=%25%25", wantCode: http.StatusBadRequest},
		{name: "non numeric page size", query: "?page_size=ten", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/api/v1/applications"+tt.query, nil)
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				resp := decode[dto.ListApplicationsResponse](t, w)
				assert.Len(t, resp.Applications, tt.wantCount)
				assert.NotNil(t, resp.Applications)
			}
		})
	}
}

func TestCreateApplication(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/applications", dto.ApplicationRequest{
		Title:       "Backend Engineer",
		Company:     "Gopher Co",
		Location:    "Berlin, DE",
		DateApplied: "2024-01-30",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	card := decode[report.Card](t, w)
	assert.Equal(t, "1706745600000", card.ID)
	assert.Equal(t, "applied", string(card.Status))
	assert.Equal(t, "Applied", card.StatusLabel)
	assert.Equal(t, "Jan 30, 2024", card.FormattedDate)

	list := decode[dto.ListApplicationsResponse](t, s.do(t, http.MethodGet, "/api/v1/applications", nil))
	require.Len(t, list.Applications, 6)
	assert.Equal(t, card.ID, list.Applications[0].ID, "new applications are listed first")

	recent := s.feed.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, events.TypeCreated, recent[0].Type)
	assert.Equal(t, card.ID, recent[0].ApplicationID)
}

func TestCreateApplication_Invalid(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		req     dto.ApplicationRequest
		wantErr string
	}{
		{
			name:    "missing title",
			req:     dto.ApplicationRequest{Company: "Acme"},
			wantErr: "title: is required",
		},
		{
			name:    "blank company",
			req:     dto.ApplicationRequest{Title: "Dev", Company: "   "},
			wantErr: "company: is required",
		},
		{
			name:    "bad date",
			req:     dto.ApplicationRequest{Title: "Dev", Company: "Acme", DateApplied: "2024-13-01"},
			wantErr: "invalid date",
		},
		{
			name:    "unknown status",
			req:     dto.ApplicationRequest{Title: "Dev", Company: "Acme", Status: "hired"},
			wantErr: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/v1/applications", tt.req)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode[map[string]string](t, w)["error"], tt.wantErr)
		})
	}

	assert.Empty(t, s.feed.Recent(0))
	list := decode[dto.ListApplicationsResponse](t, s.do(t, http.MethodGet, "/api/v1/applications", nil))
	assert.Len(t, list.Applications, 5)
}

func TestGetApplication(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/applications/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Offer Received", decode[report.Card](t, w).StatusLabel)

	w = s.do(t, http.MethodGet, "/api/v1/applications/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateApplication(t *testing.T) {
	s := newTestServer(t)

	req := dto.ApplicationRequest{
		Title:       "Senior Frontend Developer",
		Company:     "TechCorp Inc.",
		Location:    "Remote",
		Status:      "offer",
		DateApplied: "2024-01-15",
		Notes:       "Negotiating",
	}

	w := s.do(t, http.MethodPut, "/api/v1/applications/1", req)
	require.Equal(t, http.StatusOK, w.Code)
	card := decode[report.Card](t, w)
	assert.Equal(t, "Senior Frontend Developer", card.Title)
	assert.Equal(t, "Negotiating", card.Notes)

	got := decode[report.Card](t, s.do(t, http.MethodGet, "/api/v1/applications/1", nil))
	assert.Equal(t, "Remote", got.Location)

	w = s.do(t, http.MethodPut, "/api/v1/applications/missing", req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req.Title = ""
	w = s.do(t, http.MethodPut, "/api/v1/applications/1", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	recent := s.feed.Recent(0)
	require.Len(t, recent, 1, "failed updates publish nothing")
	assert.Equal(t, events.TypeUpdated, recent[0].Type)
}

func TestUpdateStatus(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPatch, "/api/v1/applications/2/status", dto.UpdateStatusRequest{Status: "offer"})
	require.Equal(t, http.StatusOK, w.Code)
	card := decode[report.Card](t, w)
	assert.Equal(t, "Offer Received", card.StatusLabel)
	assert.Equal(t, "StartupXYZ", card.Company, "only the status changes")

	overview := decode[report.Overview](t, s.do(t, http.MethodGet, "/api/v1/stats/overview", nil))
	assert.Equal(t, 2, overview.Offers)

	tests := []struct {
		name     string
		path     string
		body     any
		wantCode int
	}{
		{"unknown status", "/api/v1/applications/2/status", dto.UpdateStatusRequest{Status: "ghosted"}, http.StatusBadRequest},
		{"missing status", "/api/v1/applications/2/status", map[string]string{}, http.StatusBadRequest},
		{"unknown application", "/api/v1/applications/99/status", dto.UpdateStatusRequest{Status: "rejected"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, s.do(t, http.MethodPatch, tt.path, tt.body).Code)
		})
	}
}

func TestDeleteApplication(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodDelete, "/api/v1/applications/4", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/applications/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	list := decode[dto.ListApplicationsResponse](t, s.do(t, http.MethodGet, "/api/v1/applications", nil))
	assert.Len(t, list.Applications, 4)

	recent := s.feed.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, events.TypeDeleted, recent[0].Type)
	assert.Equal(t, "Enterprise Solutions", recent[0].Company)
}

func TestStats(t *testing.T) {
	s := newTestServer(t)

	overview := decode[report.Overview](t, s.do(t, http.MethodGet, "/api/v1/stats/overview", nil))
	assert.Equal(t, report.Overview{Total: 5, Interviews: 2, Offers: 1, ResponseRate: 60}, overview)

	agg := decode[map[string]any](t, s.do(t, http.MethodGet, "/api/v1/stats/aggregates", nil))
	assert.EqualValues(t, 5, agg["total"])
	assert.InDelta(t, 4.5, agg["averageDaysBetween"], 1e-9)

	analytics := decode[report.Analytics](t, s.do(t, http.MethodGet, "/api/v1/stats/analytics", nil))
	assert.Equal(t, 3, analytics.Pipeline.Total)
	assert.Len(t, analytics.Distribution, 4)
	assert.Len(t, analytics.Recent, report.DefaultRecentLimit)

	detailed := decode[report.Detailed](t, s.do(t, http.MethodGet, "/api/v1/stats/reports", nil))
	assert.Equal(t, 5, detailed.AverageDaysBetween)
	assert.InDelta(t, 80.0, detailed.ResponseRate, 1e-9)
	assert.Equal(t, "San Francisco", detailed.TopLocations[0].Key)
}

func TestActivity(t *testing.T) {
	s := newTestServer(t)

	for _, status := range []string{"offer", "rejected", "withdrawn"} {
		w := s.do(t, http.MethodPatch, "/api/v1/applications/1/status", dto.UpdateStatusRequest{Status: status})
		require.Equal(t, http.StatusOK, w.Code)
	}

	resp := decode[dto.ActivityResponse](t, s.do(t, http.MethodGet, "/api/v1/activity?limit=2", nil))
	require.Len(t, resp.Events, 2)
	assert.Equal(t, "withdrawn", string(resp.Events[0].Status))
	assert.Equal(t, "rejected", string(resp.Events[1].Status))

	w := s.do(t, http.MethodGet, "/api/v1/activity?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumes(t *testing.T) {
	s := newTestServer(t)

	type listResponse struct {
		Resumes []resume.Resume `json:"resumes"`
	}

	list := decode[listResponse](t, s.do(t, http.MethodGet, "/api/v1/resumes", nil))
	require.Len(t, list.Resumes, 3)
	assert.True(t, list.Resumes[0].IsDefault)

	w := s.do(t, http.MethodPost, "/api/v1/resumes/2/default", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decode[listResponse](t, w)
	assert.False(t, list.Resumes[0].IsDefault)
	assert.True(t, list.Resumes[1].IsDefault)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/v1/resumes/9/default", nil).Code)
	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/v1/resumes/3", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/v1/resumes/3", nil).Code)
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/v1/auth/me", nil).Code)

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "", Password: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "me@example.com", Password: "anything"})
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[session.User](t, w)
	assert.Equal(t, session.User{Name: "John Doe", Email: "me@example.com"}, user)

	me := decode[session.User](t, s.do(t, http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, user, me)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodPost, "/api/v1/auth/logout", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/v1/auth/me", nil).Code)

	w = s.do(t, http.MethodPost, "/api/v1/auth/signup", dto.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Ada", decode[session.User](t, w).Name)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, strings.Contains(w.Body.String(), "panic"))
}
