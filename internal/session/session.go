// Package session simulates sign-in for the single local user. Credentials are
// never checked: after a fixed delay every login or signup succeeds.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cuongbtq/career-tracker/internal/domain"
)

// ErrNotAuthenticated is returned by Current when nobody is signed in
var ErrNotAuthenticated = errors.New("not authenticated")

// User is the signed-in person
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Manager holds the current session
type Manager struct {
	mu            sync.RWMutex
	delay         time.Duration
	displayName   string
	user          User
	authenticated bool
}

// NewManager creates a session manager. When startUser is non-nil the manager
// starts signed in as that user.
func NewManager(delay time.Duration, displayName string, startUser *User) *Manager {
	m := &Manager{
		delay:       delay,
		displayName: displayName,
	}
	if startUser != nil {
		m.user = *startUser
		m.authenticated = true
	}
	return m
}

// Login waits for the configured delay and signs in under the display name
func (m *Manager) Login(ctx context.Context, email, password string) (User, error) {
	if strings.TrimSpace(email) == "" {
		return User{}, domain.NewValidationError("email", "is required")
	}
	if password == "" {
		return User{}, domain.NewValidationError("password", "is required")
	}

	if err := m.wait(ctx); err != nil {
		return User{}, err
	}

	return m.signIn(User{Name: m.displayName, Email: email}), nil
}

// Signup waits for the configured delay and signs in as the new user
func (m *Manager) Signup(ctx context.Context, name, email, password string) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(email) == "" {
		return User{}, domain.NewValidationError("email", "is required")
	}
	if password == "" {
		return User{}, domain.NewValidationError("password", "is required")
	}

	if err := m.wait(ctx); err != nil {
		return User{}, err
	}

	return m.signIn(User{Name: name, Email: email}), nil
}

// Logout clears the session
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = User{}
	m.authenticated = false
}

// Current returns the signed-in user
func (m *Manager) Current() (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.authenticated {
		return User{}, ErrNotAuthenticated
	}
	return m.user, nil
}

func (m *Manager) signIn(u User) User {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = u
	m.authenticated = true
	return u
}

func (m *Manager) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
