package domain

import (
	"context"
	"time"
)

// Event represents a scheduled occurrence with a bounded attendee capacity.
// swagger:model Event
type Event struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Location         string    `json:"location"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	MaxCapacity      int       `json:"max_capacity"`
	CurrentAttendees int       `json:"current_attendees"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with zero attendees. ID is typically set by the repository on create.
func NewEvent(name, location string, startTime, endTime time.Time, maxCapacity int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Location:    location,
		StartTime:   startTime.UTC(),
		EndTime:     endTime.UTC(),
		MaxCapacity: maxCapacity,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// HasCapacity reports whether the last read attendee count is below the maximum.
// It is a point-in-time answer and must not be used to admit a registration.
func (e *Event) HasCapacity() bool {
	return e.CurrentAttendees < e.MaxCapacity
}

// RemainingCapacity returns the number of free seats, never below zero.
func (e *Event) RemainingCapacity() int {
	if n := e.MaxCapacity - e.CurrentAttendees; n > 0 {
		return n
	}
	return 0
}

// IsUpcoming reports whether the event starts strictly after now.
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.StartTime.After(now)
}

// EventWithAttendees bundles an event with its attendees, newest registration first.
type EventWithAttendees struct {
	Event     *Event      `json:"event"`
	Attendees []*Attendee `json:"attendees"`
}

// CreateEventInput carries the fields accepted when creating an event.
type CreateEventInput struct {
	Name        string    `json:"name" validate:"required,min=3,max=255"`
	Location    string    `json:"location" validate:"required,min=3,max=255"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	MaxCapacity int       `json:"max_capacity" validate:"required,min=1"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// GetWithAttendees returns the event and its attendees in one projection.
	GetWithAttendees(ctx context.Context, id string) (*EventWithAttendees, error)
	// ListUpcoming returns events with start_time after now, ordered by start_time ascending.
	ListUpcoming(ctx context.Context, now time.Time) ([]*Event, error)
	// ListAll returns every event ordered by start_time descending.
	ListAll(ctx context.Context) ([]*Event, error)
}

// EventService defines the business logic of the event registry.
type EventService interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	GetEventWithAttendees(ctx context.Context, id string) (*EventWithAttendees, error)
	ListUpcomingEvents(ctx context.Context) ([]*Event, error)
	ListAllEvents(ctx context.Context) ([]*Event, error)
	HasCapacity(ctx context.Context, id string) (bool, error)
}
