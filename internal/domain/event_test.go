package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, loc)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	e := NewEvent("GopherCon", "Berlin", start, start.Add(8*time.Hour), 50, now, now)

	assert.Empty(t, e.ID)
	assert.Zero(t, e.CurrentAttendees)
	assert.Equal(t, time.UTC, e.StartTime.Location())
	assert.Equal(t, 9, e.StartTime.Hour())
	assert.True(t, e.StartTime.Equal(start))
}

func TestEvent_Capacity(t *testing.T) {
	tests := []struct {
		name          string
		max, current  int
		wantHas       bool
		wantRemaining int
	}{
		{name: "empty", max: 10, current: 0, wantHas: true, wantRemaining: 10},
		{name: "one left", max: 10, current: 9, wantHas: true, wantRemaining: 1},
		{name: "full", max: 10, current: 10, wantHas: false, wantRemaining: 0},
		{name: "over capacity never negative", max: 10, current: 12, wantHas: false, wantRemaining: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{MaxCapacity: tt.max, CurrentAttendees: tt.current}
			assert.Equal(t, tt.wantHas, e.HasCapacity())
			assert.Equal(t, tt.wantRemaining, e.RemainingCapacity())
		})
	}
}

func TestEvent_IsUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := &Event{StartTime: now}
	assert.False(t, e.IsUpcoming(now))
	assert.True(t, e.IsUpcoming(now.Add(-time.Second)))
	assert.False(t, e.IsUpcoming(now.Add(time.Second)))
}

func TestNewAttendee(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := NewAttendee("ev-1", "Jane", "Jane@Example.com", at)
	assert.Equal(t, "Jane@Example.com", a.Email)
	assert.Equal(t, at, a.RegisteredAt)
	assert.Equal(t, at, a.CreatedAt)
	assert.Equal(t, at, a.UpdatedAt)
	assert.Nil(t, a.Event)
}
