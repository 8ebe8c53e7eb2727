package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventregistration/internal/domain"
	"eventregistration/internal/metrics"
	"eventregistration/internal/validation"
)

type eventService struct {
	eventRepo      domain.EventRepository
	validator      *validation.Validator
	now            func() time.Time
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, validator *validation.Validator, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		validator:      validator,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now().UTC()
	if err := s.validator.CreateEvent(&input, now); err != nil {
		return nil, err
	}

	event := domain.NewEvent(input.Name, input.Location, input.StartTime, input.EndTime, input.MaxCapacity, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	metrics.EventsCreatedTotal.Inc()
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventWithAttendees(ctx context.Context, id string) (*domain.EventWithAttendees, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	out, err := s.eventRepo.GetWithAttendees(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event with attendees: %w", err)
	}
	if out.Attendees == nil {
		out.Attendees = []*domain.Attendee{}
	}
	return out, nil
}

func (s *eventService) ListUpcomingEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListUpcoming(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ListAllEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// HasCapacity reports whether the event had free seats at its last committed state.
func (s *eventService) HasCapacity(ctx context.Context, id string) (bool, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return false, err
	}
	return event.HasCapacity(), nil
}
