// Package validation checks incoming event and registration input before any
// domain logic runs. Failures are reported as *domain.ValidationError keyed by
// the JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"eventregistration/internal/domain"
)

// DefaultMaxCapacity is the capacity ceiling used when none is configured.
const DefaultMaxCapacity = 10000

// Validator validates domain input structs.
type Validator struct {
	validate    *validator.Validate
	maxCapacity int
}

// New returns a Validator enforcing maxCapacity as the event capacity ceiling.
// A non-positive maxCapacity falls back to DefaultMaxCapacity.
func New(maxCapacity int) *Validator {
	if maxCapacity <= 0 {
		maxCapacity = DefaultMaxCapacity
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, maxCapacity: maxCapacity}
}

// MaxCapacity returns the configured capacity ceiling.
func (v *Validator) MaxCapacity() int {
	return v.maxCapacity
}

// CreateEvent normalizes and validates input against the clock reading now.
func (v *Validator) CreateEvent(input *domain.CreateEventInput, now time.Time) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)

	verr := domain.NewValidationError()
	v.collect(input, verr)

	if !input.StartTime.IsZero() && !input.StartTime.After(now) {
		verr.Add("start_time", "start_time must be in the future")
	}
	if !input.StartTime.IsZero() && !input.EndTime.IsZero() && !input.EndTime.After(input.StartTime) {
		verr.Add("end_time", "end_time must be after start_time")
	}
	if input.MaxCapacity > v.maxCapacity {
		verr.Add("max_capacity", fmt.Sprintf("max_capacity cannot exceed %d", v.maxCapacity))
	}
	return verr.OrNil()
}

// Register normalizes and validates a registration request.
func (v *Validator) Register(input *domain.RegisterInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.EventID = strings.TrimSpace(input.EventID)

	verr := domain.NewValidationError()
	v.collect(input, verr)
	return verr.OrNil()
}

// RegisterWithEventID validates a registration that names its event in the body.
func (v *Validator) RegisterWithEventID(input *domain.RegisterInput) error {
	verr := domain.NewValidationError()
	if err := v.Register(input); err != nil && !errors.As(err, &verr) {
		return err
	}
	switch {
	case input.EventID == "":
		verr.Add("event_id", "event_id is required")
	case v.validate.Var(input.EventID, "uuid") != nil:
		verr.Add("event_id", "event_id must be a valid UUID")
	}
	return verr.OrNil()
}

func (v *Validator) collect(input any, verr *domain.ValidationError) {
	err := v.validate.Struct(input)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("_", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(fe))
	}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
