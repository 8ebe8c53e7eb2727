package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"eventregistration/internal/domain"
)

// Layouts accepted by Time, tried in order. Layouts without an offset are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// absent reports whether a body field was omitted or null. Absent fields decode
// to the zero value so the required rules report them.
func absent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// String decodes a JSON string field, recording a field error for any other JSON type.
func String(raw json.RawMessage, field string, verr *domain.ValidationError) string {
	if absent(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		verr.Add(field, field+" must be a string")
		return ""
	}
	return s
}

// Int decodes an integer field. Integer-valued numbers and numeric strings are
// accepted; fractions, other strings and other JSON types are field errors.
func Int(raw json.RawMessage, field string, verr *domain.ValidationError) int {
	if absent(raw) {
		return 0
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		verr.Add(field, field+" must be an integer")
		return 0
	}

	var text string
	switch t := v.(type) {
	case json.Number:
		text = t.String()
	case string:
		text = strings.TrimSpace(t)
	default:
		verr.Add(field, field+" must be an integer")
		return 0
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
		verr.Add(field, field+" must be an integer")
		return 0
	}
	return int(n)
}

// Time decodes an ISO-8601 date-time string. Values with an offset keep it;
// values without one are read as UTC. The result is always in UTC.
func Time(raw json.RawMessage, field string, verr *domain.ValidationError) time.Time {
	if absent(raw) {
		return time.Time{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		verr.Add(field, field+" must be a valid date")
		return time.Time{}
	}
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	verr.Add(field, field+" must be a valid date")
	return time.Time{}
}
