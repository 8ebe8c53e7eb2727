package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventregistration/internal/domain"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.PaginationParams
	}{
		{"defaults", "", domain.PaginationParams{Page: 1, PageSize: 15}},
		{"explicit", "page=3&per_page=5", domain.PaginationParams{Page: 3, PageSize: 5}},
		{"page_size alias", "page_size=7", domain.PaginationParams{Page: 1, PageSize: 7}},
		{"per_page wins over alias", "per_page=4&page_size=7", domain.PaginationParams{Page: 1, PageSize: 4}},
		{"capped", "per_page=1000", domain.PaginationParams{Page: 1, PageSize: 100}},
		{"garbage falls back", "page=x&per_page=-3", domain.PaginationParams{Page: 1, PageSize: 15}},
		{"zero page", "page=0", domain.PaginationParams{Page: 1, PageSize: 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/attendees?"+tt.query, nil)
			assert.Equal(t, tt.want, ParsePagination(r))
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONError(rec, http.StatusUnprocessableEntity, ErrCodeValidationFailed, "Validation failed",
		map[string][]string{"name": {"name is required"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Equal(t, "VALIDATION_FAILED", got.ErrorCode)
	assert.Equal(t, []string{"name is required"}, got.Errors["name"])
	assert.NotContains(t, rec.Body.String(), `"data"`)
	assert.NotContains(t, rec.Body.String(), `"pagination"`)
}

func TestWriteJSONPaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	meta := domain.NewPageMeta(domain.PaginationParams{Page: 1, PageSize: 5}, 7, 5)
	WriteJSONPaginated(rec, "ok", []int{1, 2, 3, 4, 5}, meta)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	p := got["pagination"].(map[string]any)
	assert.Equal(t, float64(2), p["last_page"])
	assert.Equal(t, float64(5), p["to"])
	assert.NotContains(t, got, "error_code")
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	tests := []struct {
		name    string
		payload string
		ok      bool
		wantMsg string
	}{
		{"valid", `{"name":"a","age":3}`, true, ""},
		{"empty", ``, false, "Request body must not be empty"},
		{"malformed", `{"name":`, false, "Request body contains malformed JSON"},
		{"wrong type", `{"age":"three"}`, false, `Field "age" has the wrong type`},
		{"unknown field", `{"nickname":"x"}`, false, ""},
		{"two objects", `{"name":"a"}{"name":"b"}`, false, "Request body must contain a single JSON object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			var dest body
			ok := DecodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload)), &dest)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, "a", dest.Name)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var got APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, ErrCodeBadRequest, got.ErrorCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.Message)
			}
		})
	}
}
