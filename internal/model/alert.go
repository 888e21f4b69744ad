package model

import (
	"time"

	"github.com/google/uuid"
)

// Severity of a transient alert
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alert is a short-lived notification shown above the movie list.
// ID lets a delayed expiry tell its own alert apart from a newer one.
type Alert struct {
	ID        uuid.UUID
	Severity  Severity
	Message   string
	CreatedAt time.Time
}

// NewAlert stamps a fresh alert
func NewAlert(severity Severity, message string) *Alert {
	return &Alert{
		ID:        uuid.New(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
