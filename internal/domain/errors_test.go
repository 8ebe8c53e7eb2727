package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	var nilErr *ValidationError
	assert.NoError(t, nilErr.OrNil())

	verr := NewValidationError()
	assert.False(t, verr.HasErrors())
	assert.NoError(t, verr.OrNil())

	verr.Add("name", "name is required")
	verr.Add("email", "email must be a valid email address")
	verr.Add("email", "email must be at most 255 characters")
	require.Error(t, verr.OrNil())
	assert.Equal(t,
		"validation failed: email: email must be a valid email address, email must be at most 255 characters; name: name is required",
		verr.Error())

	var target *ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", verr.OrNil()), &target))
	assert.Len(t, target.Fields["email"], 2)
}

func TestCapacityExceededError(t *testing.T) {
	err := error(&CapacityExceededError{EventID: "ev-1", EventName: "GopherCon", MaxCapacity: 2})
	assert.Equal(t, "Event 'GopherCon' has reached maximum capacity of 2 attendees", err.Error())

	var capErr *CapacityExceededError
	assert.True(t, errors.As(fmt.Errorf("register: %w", err), &capErr))
	assert.Equal(t, "ev-1", capErr.EventID)
}
