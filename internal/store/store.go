package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/cuongbtq/career-tracker/internal/domain"
)

// ErrCursorNotFound is returned when a pagination cursor points at a removed application
var ErrCursorNotFound = errors.New("cursor does not match any application")

// Store is the ordered in-memory collection of applications. Newest first.
type Store struct {
	mu     sync.RWMutex
	apps   []domain.Application
	ids    map[string]struct{}
	lastID int64
	now    func() time.Time
	logger *slog.Logger
}

// ApplicationFilter narrows List results
type ApplicationFilter struct {
	Status   domain.Status
	PageSize int
	Cursor   *ApplicationCursor
}

// ApplicationCursor marks the last application of the previous page
type ApplicationCursor struct {
	ID string
}

// NewStore creates an empty store. A nil clock falls back to time.Now.
func NewStore(logger *slog.Logger, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		ids:    make(map[string]struct{}),
		now:    clock,
		logger: logger,
	}
}

// Seed appends pre-built applications keeping their identifiers and order
func (s *Store) Seed(apps []domain.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range apps {
		if err := app.Validate(); err != nil {
			return fmt.Errorf("failed to seed application %q: %w", app.ID, err)
		}
		if _, exists := s.ids[app.ID]; exists {
			return fmt.Errorf("failed to seed application: duplicate id %q", app.ID)
		}
		s.ids[app.ID] = struct{}{}
		s.apps = append(s.apps, app)
	}

	s.logger.Info("Applications seeded", slog.Int("count", len(apps)))
	return nil
}

// Create assigns a fresh identifier to the draft and inserts it at the front
func (s *Store) Create(draft domain.Draft) (domain.Application, error) {
	now := s.now()
	draft.Normalize(now)
	if err := draft.Validate(); err != nil {
		return domain.Application{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	app := draft.WithID(s.nextID(now))
	s.ids[app.ID] = struct{}{}
	s.apps = append([]domain.Application{app}, s.apps...)

	s.logger.Debug("Application created",
		slog.String("id", app.ID),
		slog.String("company", app.Company),
	)

	return app, nil
}

// Get returns the application with the given identifier
func (s *Store) Get(id string) (domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Application{}, domain.ErrApplicationNotFound
	}
	return s.apps[i], nil
}

// Update replaces the stored application with the same identifier.
// The collection is left untouched when the identifier is unknown.
func (s *Store) Update(app domain.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(app.ID)
	if i < 0 {
		return fmt.Errorf("failed to update application %q: %w", app.ID, domain.ErrApplicationNotFound)
	}
	s.apps[i] = app
	return nil
}

// UpdateStatus replaces only the status. Any status may follow any other.
func (s *Store) UpdateStatus(id string, status domain.Status) (domain.Application, error) {
	if !status.Valid() {
		return domain.Application{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Application{}, fmt.Errorf("failed to update status of %q: %w", id, domain.ErrApplicationNotFound)
	}
	s.apps[i].Status = status
	return s.apps[i], nil
}

// Delete removes the application with the given identifier
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("failed to delete application %q: %w", id, domain.ErrApplicationNotFound)
	}

	s.apps = append(s.apps[:i:i], s.apps[i+1:]...)
	delete(s.ids, id)
	return nil
}

// Snapshot returns a copy of the whole collection
func (s *Store) Snapshot() []domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Application, len(s.apps))
	copy(out, s.apps)
	return out
}

// Len returns the number of stored applications
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.apps)
}

// List returns up to PageSize+1 applications after the cursor so callers can
// tell whether another page exists
func (s *Store) List(filter ApplicationFilter) ([]domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if filter.Cursor != nil {
		i := s.indexOf(filter.Cursor.ID)
		if i < 0 {
			return nil, ErrCursorNotFound
		}
		start = i + 1
	}

	out := make([]domain.Application, 0, filter.PageSize+1)
	for _, app := range s.apps[start:] {
		if filter.Status != "" && app.Status != filter.Status {
			continue
		}
		out = append(out, app)
		if filter.PageSize > 0 && len(out) > filter.PageSize {
			break
		}
	}
	return out, nil
}

// nextID derives an identifier from the creation time, bumped past any
// identifier already handed out
func (s *Store) nextID(now time.Time) string {
	candidate := now.UnixMilli()
	if candidate <= s.lastID {
		candidate = s.lastID + 1
	}
	for {
		id := strconv.FormatInt(candidate, 10)
		if _, exists := s.ids[id]; !exists {
			s.lastID = candidate
			return id
		}
		candidate++
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.apps {
		if s.apps[i].ID == id {
			return i
		}
	}
	return -1
}
