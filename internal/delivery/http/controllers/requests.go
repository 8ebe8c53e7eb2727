package controllers

import (
	"encoding/json"

	"eventregistration/internal/domain"
	"eventregistration/internal/validation"
)

// Request bodies are decoded field by field so a value of the wrong type is
// reported as a field error (422) rather than a malformed body (400).

type createEventBody struct {
	Name        json.RawMessage `json:"name"`
	Location    json.RawMessage `json:"location"`
	StartTime   json.RawMessage `json:"start_time"`
	EndTime     json.RawMessage `json:"end_time"`
	MaxCapacity json.RawMessage `json:"max_capacity"`
}

func (b createEventBody) input() (domain.CreateEventInput, error) {
	verr := domain.NewValidationError()
	in := domain.CreateEventInput{
		Name:        validation.String(b.Name, "name", verr),
		Location:    validation.String(b.Location, "location", verr),
		StartTime:   validation.Time(b.StartTime, "start_time", verr),
		EndTime:     validation.Time(b.EndTime, "end_time", verr),
		MaxCapacity: validation.Int(b.MaxCapacity, "max_capacity", verr),
	}
	return in, verr.OrNil()
}

type registerBody struct {
	Name  json.RawMessage `json:"name"`
	Email json.RawMessage `json:"email"`
}

func (b registerBody) decode(verr *domain.ValidationError) domain.RegisterInput {
	return domain.RegisterInput{
		Name:  validation.String(b.Name, "name", verr),
		Email: validation.String(b.Email, "email", verr),
	}
}

func (b registerBody) input() (domain.RegisterInput, error) {
	verr := domain.NewValidationError()
	in := b.decode(verr)
	return in, verr.OrNil()
}

// globalRegisterBody is the POST /attendees body, which names its event.
type globalRegisterBody struct {
	registerBody
	EventID json.RawMessage `json:"event_id"`
}

func (b globalRegisterBody) input() (domain.RegisterInput, error) {
	verr := domain.NewValidationError()
	in := b.decode(verr)
	in.EventID = validation.String(b.EventID, "event_id", verr)
	return in, verr.OrNil()
}
