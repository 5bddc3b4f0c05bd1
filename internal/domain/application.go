package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format of DateApplied
const DateLayout = "2006-01-02"

// Application represents one tracked job application
type Application struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Status      Status `json:"status"`
	Salary      string `json:"salary,omitempty"`
	DateApplied string `json:"dateApplied"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Draft is an application that has not been assigned an identifier yet
type Draft struct {
	Title       string
	Company     string
	Location    string
	Status      Status
	Salary      string
	DateApplied string
	Description string
	Notes       string
}

// Normalize fills defaults the entry form would pre-populate
func (d *Draft) Normalize(now time.Time) {
	d.Title = strings.TrimSpace(d.Title)
	d.Company = strings.TrimSpace(d.Company)
	if d.Status == "" {
		d.Status = StatusApplied
	}
	if strings.TrimSpace(d.DateApplied) == "" {
		d.DateApplied = now.Format(DateLayout)
	}
}

// Validate checks required fields, status and date
func (d Draft) Validate() error {
	return validateFields(d.Title, d.Company, d.Status, d.DateApplied)
}

// WithID turns the draft into an application
func (d Draft) WithID(id string) Application {
	return Application{
		ID:          id,
		Title:       d.Title,
		Company:     d.Company,
		Location:    d.Location,
		Status:      d.Status,
		Salary:      d.Salary,
		DateApplied: d.DateApplied,
		Description: d.Description,
		Notes:       d.Notes,
	}
}

// Validate checks a full record before it replaces a stored one
func (a Application) Validate() error {
	if a.ID == "" {
		return NewValidationError("id", "is required")
	}
	return validateFields(a.Title, a.Company, a.Status, a.DateApplied)
}

// AppliedOn parses DateApplied
func (a Application) AppliedOn() (time.Time, error) {
	return ParseDate(a.DateApplied)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: value, Err: err}
	}
	return t, nil
}

func validateFields(title, company string, status Status, date string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "is required")
	}
	if strings.TrimSpace(company) == "" {
		return NewValidationError("company", "is required")
	}
	if !status.Valid() {
		return NewValidationError("status", "must be one of applied, interview, offer, rejected, withdrawn")
	}
	if _, err := ParseDate(date); err != nil {
		return err
	}
	return nil
}
