package domain

import (
	"context"
	"time"
)

// Attendee represents a person registered for a specific event.
// swagger:model Attendee
type Attendee struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Event        *Event    `json:"event,omitempty"`
}

// NewAttendee creates a new Attendee registered at the given time. ID is set by the repository on create.
func NewAttendee(eventID, name, email string, registeredAt time.Time) *Attendee {
	return &Attendee{
		EventID:      eventID,
		Name:         name,
		Email:        email,
		RegisteredAt: registeredAt,
		CreatedAt:    registeredAt,
		UpdatedAt:    registeredAt,
	}
}

// RegisterInput carries the fields accepted when registering an attendee.
// EventID is only read by the global registration endpoint; the event-scoped
// endpoint takes it from the path.
type RegisterInput struct {
	EventID string `json:"event_id,omitempty"`
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
}

// AttendeePage is one window of an attendee listing.
type AttendeePage struct {
	Attendees []*Attendee
	Meta      PageMeta
}

// AttendeeRepository defines read storage operations for attendees.
type AttendeeRepository interface {
	GetByID(ctx context.Context, id string) (*Attendee, error)
	// ListByEventID returns a window of the event's attendees ordered by registered_at descending.
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Attendee, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
	List(ctx context.Context, params PaginationParams) ([]*Attendee, error)
	Count(ctx context.Context) (int, error)
}

// RegistrationStore performs the attendee writes that change an event's attendee count.
// Each call is one unit of work: the count is recomputed from the attendee rows
// inside the same transaction that changes them.
type RegistrationStore interface {
	// Register locks the event, checks capacity and duplicates, inserts the attendee
	// and recounts. attendee.ID, attendee.Event and the event's count are filled on success.
	Register(ctx context.Context, attendee *Attendee) error
	// Remove deletes the attendee and recounts its event.
	Remove(ctx context.Context, attendeeID string) error
}

// AttendeeService defines the business logic of the registration engine.
type AttendeeService interface {
	Register(ctx context.Context, eventID string, input RegisterInput) (*Attendee, error)
	// RegisterByEventID registers using input.EventID as the target event.
	RegisterByEventID(ctx context.Context, input RegisterInput) (*Attendee, error)
	ListForEvent(ctx context.Context, eventID string, params PaginationParams) (*AttendeePage, error)
	ListAll(ctx context.Context, params PaginationParams) (*AttendeePage, error)
	Get(ctx context.Context, id string) (*Attendee, error)
	Remove(ctx context.Context, id string) error
}
