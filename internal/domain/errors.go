package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced event or attendee does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateRegistration is returned when the email is already registered for the event.
	ErrDuplicateRegistration = errors.New("email already registered for this event")
)

// ValidationError reports rejected input, keyed by field name.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records msg against field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// HasErrors reports whether any field was rejected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e when it holds errors and nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// CapacityExceededError is returned when an event is full at commit time.
type CapacityExceededError struct {
	EventID     string
	EventName   string
	MaxCapacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Event '%s' has reached maximum capacity of %d attendees", e.EventName, e.MaxCapacity)
}
