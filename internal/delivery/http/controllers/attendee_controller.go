package controllers

import (
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/domain"
)

// RegisterRequest is the request body for POST /events/{eventID}/register.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AttendeeSuccessResponse is the success envelope for a single attendee.
type AttendeeSuccessResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    *domain.Attendee `json:"data"`
}

// AttendeePageResponse is the success envelope for a paginated attendee listing.
type AttendeePageResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       []*domain.Attendee `json:"data"`
	Pagination domain.PageMeta    `json:"pagination"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register an attendee for an event
// @Description Registers name and email for the event. Capacity and duplicate email (case-insensitive) are enforced under concurrency.
// @Tags attendees
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param attendee body controllers.RegisterRequest true "Attendee data"
// @Success 201 {object} controllers.AttendeeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error_code: BAD_REQUEST"
// @Failure 404 {object} helpers.APIResponse "error_code: NOT_FOUND"
// @Failure 409 {object} helpers.APIResponse "error_code: CAPACITY_EXCEEDED or DUPLICATE_REGISTRATION"
// @Failure 422 {object} helpers.APIResponse "error_code: VALIDATION_FAILED"
// @Failure 500 {object} helpers.APIResponse "error_code: REGISTRATION_FAILED"
// @Router /events/{eventID}/register [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !validID(eventID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msgEventNotFound, nil)
		return
	}
	var body registerBody
	if !helpers.DecodeJSON(w, r, &body) {
		return
	}
	input, err := body.input()
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeRegistrationFailed)
		return
	}
	attendee, err := c.Service.Register(r.Context(), eventID, input)
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeRegistrationFailed)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, "Successfully registered for event", attendee)
}

// Create godoc
// @Summary Register an attendee, naming the event in the body
// @Description Same semantics as POST /events/{eventID}/register with event_id taken from the body.
// @Tags attendees
// @Accept json
// @Produce json
// @Param attendee body domain.RegisterInput true "Attendee data with event_id"
// @Success 201 {object} controllers.AttendeeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error_code: BAD_REQUEST"
// @Failure 404 {object} helpers.APIResponse "error_code: NOT_FOUND"
// @Failure 409 {object} helpers.APIResponse "error_code: CAPACITY_EXCEEDED or DUPLICATE_REGISTRATION"
// @Failure 422 {object} helpers.APIResponse "error_code: VALIDATION_FAILED"
// @Failure 500 {object} helpers.APIResponse "error_code: REGISTRATION_FAILED"
// @Router /attendees [post]
func (c *AttendeeController) Create(w http.ResponseWriter, r *http.Request) {
	var body globalRegisterBody
	if !helpers.DecodeJSON(w, r, &body) {
		return
	}
	input, err := body.input()
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeRegistrationFailed)
		return
	}
	attendee, err := c.Service.RegisterByEventID(r.Context(), input)
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeRegistrationFailed)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, "Successfully registered for event", attendee)
}

// ListForEvent godoc
// @Summary List an event's attendees
// @Description Paginated, newest registration first. per_page defaults to 15 and is capped at 100.
// @Tags attendees
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 15, max 100)"
// @Success 200 {object} controllers.AttendeePageResponse
// @Failure 404 {object} helpers.APIResponse "error_code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error_code: INTERNAL_ERROR"
// @Router /events/{eventID}/attendees [get]
func (c *AttendeeController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !validID(eventID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msgEventNotFound, nil)
		return
	}
	page, err := c.Service.ListForEvent(r.Context(), eventID, helpers.ParsePagination(r))
	if err != nil {
		writeError(w, r, c.Logger, err, msgEventNotFound, helpers.ErrCodeInternalError)
		return
	}
	helpers.WriteJSONPaginated(w, "Attendees retrieved successfully", page.Attendees, page.Meta)
}

// List godoc
// @Summary List all attendees
// @Description Paginated across every event, newest registration first, each with its event.
// @Tags attendees
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 15, max 100)"
// @Success 200 {object} controllers.AttendeePageResponse
// @Failure 500 {object} helpers.APIResponse "error_code: INTERNAL_ERROR"
// @Router /attendees [get]
func (c *AttendeeController) List(w http.ResponseWriter, r *http.Request) {
	page, err := c.Service.ListAll(r.Context(), helpers.ParsePagination(r))
	if err != nil {
		writeError(w, r, c.Logger, err, msgAttendeeNotFound, helpers.ErrCodeInternalError)
		return
	}
	helpers.WriteJSONPaginated(w, "Attendees retrieved successfully", page.Attendees, page.Meta)
}

// Get godoc
// @Summary Get an attendee
// @Tags attendees
// @Produce json
// @Param attendeeID path string true "Attendee ID (UUID)"
// @Success 200 {object} controllers.AttendeeSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error_code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error_code: INTERNAL_ERROR"
// @Router /attendees/{attendeeID} [get]
func (c *AttendeeController) Get(w http.ResponseWriter, r *http.Request) {
	attendeeID := r.PathValue("attendeeID")
	if !validID(attendeeID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msgAttendeeNotFound, nil)
		return
	}
	attendee, err := c.Service.Get(r.Context(), attendeeID)
	if err != nil {
		writeError(w, r, c.Logger, err, msgAttendeeNotFound, helpers.ErrCodeInternalError)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "Attendee retrieved successfully", attendee)
}

// Remove godoc
// @Summary Remove an attendee
// @Description Deletes the registration and frees its seat.
// @Tags attendees
// @Produce json
// @Param attendeeID path string true "Attendee ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error_code: NOT_FOUND"
// @Failure 500 {object} helpers.APIResponse "error_code: INTERNAL_ERROR"
// @Router /attendees/{attendeeID} [delete]
func (c *AttendeeController) Remove(w http.ResponseWriter, r *http.Request) {
	attendeeID := r.PathValue("attendeeID")
	if !validID(attendeeID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, msgAttendeeNotFound, nil)
		return
	}
	if err := c.Service.Remove(r.Context(), attendeeID); err != nil {
		writeError(w, r, c.Logger, err, msgAttendeeNotFound, helpers.ErrCodeInternalError)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "Attendee removed successfully", nil)
}
