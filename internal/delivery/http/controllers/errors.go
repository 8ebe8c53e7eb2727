package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

const (
	msgValidationFailed = "Validation failed"
	msgEventNotFound    = "Event not found"
	msgAttendeeNotFound = "Attendee not found"
	msgDuplicate        = "This email is already registered for this event"
)

// validID reports whether id is a UUID. Ids that cannot exist are answered as not found.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// writeError maps a service error onto the response envelope. fallbackCode is used
// for errors that carry no domain meaning; they are logged and their text is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMsg, fallbackCode string) {
	var verr *domain.ValidationError
	var capErr *domain.CapacityExceededError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidationFailed, msgValidationFailed, verr.Fields)
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg, nil)
	case errors.As(err, &capErr):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeCapacityExceeded, capErr.Error(), nil)
	case errors.Is(err, domain.ErrDuplicateRegistration):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDuplicateRegistration, msgDuplicate, nil)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		msg := "Internal server error"
		if fallbackCode == helpers.ErrCodeRegistrationFailed {
			msg = "Registration failed, please try again"
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, fallbackCode, msg, nil)
	}
}
