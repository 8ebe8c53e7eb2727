package helpers

import (
	"encoding/json"
	"net/http"

	"eventregistration/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeValidationFailed      = "VALIDATION_FAILED"
	ErrCodeBadRequest            = "BAD_REQUEST"
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeCapacityExceeded      = "CAPACITY_EXCEEDED"
	ErrCodeDuplicateRegistration = "DUPLICATE_REGISTRATION"
	ErrCodeRegistrationFailed    = "REGISTRATION_FAILED"
	ErrCodeRateLimited           = "RATE_LIMITED"
	ErrCodeInternalError         = "INTERNAL_ERROR"
)

// APIResponse is the standardized envelope for all API responses.
// On success: Success is true and Data is set. On error: Success is false and
// ErrorCode is set; Errors carries per-field messages for validation failures.
// swagger:model APIResponse
type APIResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       any                 `json:"data,omitempty"`
	ErrorCode  string              `json:"error_code,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Pagination *domain.PageMeta    `json:"pagination,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONSuccess encodes a successful APIResponse carrying data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJSON(w, statusCode, APIResponse{Success: true, Message: message, Data: data})
}

// WriteJSONPaginated encodes a successful APIResponse carrying one page of data.
func WriteJSONPaginated(w http.ResponseWriter, message string, data any, meta domain.PageMeta) {
	WriteJSON(w, http.StatusOK, APIResponse{Success: true, Message: message, Data: data, Pagination: &meta})
}

// WriteJSONError encodes a failed APIResponse. fields may be nil.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string, fields map[string][]string) {
	WriteJSON(w, statusCode, APIResponse{
		Success:   false,
		Message:   message,
		ErrorCode: code,
		Errors:    fields,
	})
}
