package domain

import "fmt"

// Status is the pipeline stage of an application
type Status string

// Application status constants
const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// Statuses lists every status in pipeline order
var Statuses = []Status{
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusWithdrawn,
}

var statusLabels = map[Status]string{
	StatusApplied:   "Applied",
	StatusInterview: "Interview",
	StatusOffer:     "Offer Received",
	StatusRejected:  "Rejected",
	StatusWithdrawn: "Withdrawn",
}

var statusColors = map[Status]string{
	StatusApplied:   "#3b82f6",
	StatusInterview: "#eab308",
	StatusOffer:     "#10b981",
	StatusRejected:  "#ef4444",
	StatusWithdrawn: "#6b7280",
}

// ParseStatus converts a raw string into a Status
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human readable name shown on cards
func (s Status) Label() string {
	return statusLabels[s]
}

// Color returns the chart colour of the status
func (s Status) Color() string {
	return statusColors[s]
}

func (s Status) String() string {
	return string(s)
}
