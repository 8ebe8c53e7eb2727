package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

// EventResponse is an event as rendered by the API, with derived capacity fields.
// swagger:model EventResponse
type EventResponse struct {
	*domain.Event
	RemainingCapacity int  `json:"remaining_capacity"`
	HasCapacity       bool `json:"has_capacity"`
	IsUpcoming        bool `json:"is_upcoming"`
}

// EventWithAttendeesResponse is an event with its attendees embedded.
type EventWithAttendeesResponse struct {
	EventResponse
	Attendees []*domain.Attendee `json:"attendees"`
}

func newEventResponse(e *domain.Event, now time.Time) EventResponse {
	return EventResponse{
		Event:             e,
		RemainingCapacity: e.RemainingCapacity(),
		HasCapacity:       e.HasCapacity(),
		IsUpcoming:        e.IsUpcoming(now),
	}
}

// EventSuccessResponse is the success envelope for a single event.
type EventSuccessResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    EventResponse `json:"data"`
}

// EventListSuccessResponse is the success envelope for an event listing.
type EventListSuccessResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    []EventResponse `json:"data"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Now     func() time.Time
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event with a fixed capacity. start_time must be in the future and end_time after start_time.
// @Tags events
// @Accept json
// @Produce json
// @Param event body domain.CreateEventInput true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error_code: BAD_REQUEST"
// @Failure 422 {object} helpers.APIResponse "error_code: VALIDATION_FAILED"
// @Failure 500 {object} helpers.APIResponse "error_code: INTERNAL_ERROR"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var body createEventBody
	if !helpers.DecodeJSON(w, r, &body) {
		return
	}
	input, err := body.input()
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeInternalError)
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), input)
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeInternalError)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, "Event created successfully", newEventResponse(event, c.Now()))
}

// ListEvents godoc
// @Summary List events
// @Description Lists upcoming events (start_time after now) ordered by start_time ascending. With scope=all, lists every event ordered by start_time descending.
// @Tags events
// @Produce json
// @Param scope query string false "upcoming (default) or all"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error_code: INTERNAL_ERROR"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	var (
		events []*domain.Event
		err    error
	)
	if r.URL.Query().Get("scope") == "all" {
		events, err = c.Service.ListAllEvents(r.Context())
	} else {
		events, err = c.Service.ListUpcomingEvents(r.Context())
	}
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeInternalError)
		return
	}
	now := c.Now()
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, newEventResponse(e, now))
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "Events retrieved successfully", out)
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns one event. With include=attendees, the event's attendees are embedded, newest registration first.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param include query string false "attendees"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error_code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error_code: INTERNAL_ERROR"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !validID(eventID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msgEventNotFound, nil)
		return
	}

	if r.URL.Query().Get("include") == "attendees" {
		out, err := c.Service.GetEventWithAttendees(r.Context(), eventID)
		if err != nil {
			writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeInternalError)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, "Event retrieved successfully", EventWithAttendeesResponse{
			EventResponse: newEventResponse(out.Event, c.Now()),
			Attendees:     out.Attendees,
		})
		return
	}

	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeInternalError)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "Event retrieved successfully", newEventResponse(event, c.Now()))
}
