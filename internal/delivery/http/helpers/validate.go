package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies accepted by DecodeJSON.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dest (with DisallowUnknownFields).
// On failure it writes a 400 BAD_REQUEST response and returns false.
// Callers should return immediately when DecodeJSON returns false.
// Field rules are checked later by the service so every offending field is reported together.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, decodeMessage(err), nil)
		return false
	}
	if dec.More() {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "Request body must contain a single JSON object", nil)
		return false
	}
	return true
}

func decodeMessage(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return "Request body must not be empty"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "Request body contains malformed JSON"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Field %q has the wrong type", typeErr.Field)
	case errors.As(err, &maxErr):
		return "Request body is too large"
	default:
		return "Invalid request body: " + err.Error()
	}
}
