package toast

import (
	"strings"
	"time"
)

// Severity is the category of a toast. It selects the icon and styling.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// ParseSeverity maps s onto the closed severity set.
// Empty or unrecognized values become SeverityInfo.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeveritySuccess:
		return SeveritySuccess
	case SeverityError:
		return SeverityError
	default:
		return SeverityInfo
	}
}

// Normalize returns the severity, or SeverityInfo if it is not one of the
// known values.
func (s Severity) Normalize() Severity {
	return ParseSeverity(string(s))
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityError:
		return true
	}
	return false
}

// Input is what callers pass to Add. The id is assigned by the store.
type Input struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity,omitempty"`
}

// Message is an active toast. Messages are values; once created they are
// only ever removed, never changed.
type Message struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasDescription reports whether the secondary line should be shown.
func (m Message) HasDescription() bool {
	return m.Description != ""
}
