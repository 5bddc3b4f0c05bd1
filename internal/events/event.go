// Package events carries application change notifications to the activity
// feed and, when enabled, to the message broker.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cuongbtq/career-tracker/internal/domain"
)

// Type names a kind of application change
type Type string

// Event types
const (
	TypeCreated       Type = "application.created"
	TypeUpdated       Type = "application.updated"
	TypeStatusChanged Type = "application.status_changed"
	TypeDeleted       Type = "application.deleted"
)

// Event describes one change to the application collection
type Event struct {
	ID            string        `json:"id"`
	Type          Type          `json:"type"`
	ApplicationID string        `json:"applicationId"`
	Title         string        `json:"title"`
	Company       string        `json:"company"`
	Status        domain.Status `json:"status"`
	OccurredAt    time.Time     `json:"occurredAt"`
}

// New builds an event for app
func New(t Type, app domain.Application) Event {
	return Event{
		ID:            uuid.NewString(),
		Type:          t,
		ApplicationID: app.ID,
		Title:         app.Title,
		Company:       app.Company,
		Status:        app.Status,
		OccurredAt:    time.Now().UTC(),
	}
}

// Notifier receives application change events
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Multi fans an event out to every notifier and joins their errors
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards events
type Nop struct{}

func (Nop) Notify(context.Context, Event) error { return nil }
