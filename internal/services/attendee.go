package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"eventregistration/internal/domain"
	"eventregistration/internal/metrics"
	"eventregistration/internal/validation"
)

// defaultEmailTimeout bounds the confirmation email sent after a registration
// commits. The email is sent before the response, so this is also the most a
// slow mail provider can add to a successful registration.
const defaultEmailTimeout = 3 * time.Second

type attendeeService struct {
	eventRepo      domain.EventRepository
	attendeeRepo   domain.AttendeeRepository
	store          domain.RegistrationStore
	emailService   domain.EmailService
	validator      *validation.Validator
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
	emailTimeout   time.Duration
}

// NewAttendeeService creates an AttendeeService. emailService may be nil, in which
// case no confirmation is sent.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	attendeeRepo domain.AttendeeRepository,
	store domain.RegistrationStore,
	emailService domain.EmailService,
	validator *validation.Validator,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AttendeeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &attendeeService{
		eventRepo:      eventRepo,
		attendeeRepo:   attendeeRepo,
		store:          store,
		emailService:   emailService,
		validator:      validator,
		logger:         logger,
		now:            time.Now,
		contextTimeout: timeout,
		emailTimeout:   defaultEmailTimeout,
	}
}

func (s *attendeeService) Register(ctx context.Context, eventID string, input domain.RegisterInput) (*domain.Attendee, error) {
	if err := s.validator.Register(&input); err != nil {
		metrics.RecordRegistration(metrics.OutcomeInvalid)
		return nil, err
	}
	return s.register(ctx, eventID, input)
}

func (s *attendeeService) RegisterByEventID(ctx context.Context, input domain.RegisterInput) (*domain.Attendee, error) {
	if err := s.validator.RegisterWithEventID(&input); err != nil {
		metrics.RecordRegistration(metrics.OutcomeInvalid)
		return nil, err
	}
	return s.register(ctx, input.EventID, input)
}

func (s *attendeeService) register(ctx context.Context, eventID string, input domain.RegisterInput) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	attendee := domain.NewAttendee(eventID, input.Name, input.Email, s.now().UTC())
	if err := s.store.Register(ctx, attendee); err != nil {
		metrics.RecordRegistration(registrationOutcome(err))
		var capErr *domain.CapacityExceededError
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrDuplicateRegistration),
			errors.As(err, &capErr):
			return nil, err
		}
		return nil, fmt.Errorf("register attendee: %w", err)
	}
	metrics.RecordRegistration(metrics.OutcomeRegistered)

	s.sendConfirmation(ctx, attendee)
	return attendee, nil
}

// sendConfirmation emails the attendee. Failures are logged; the registration stands.
func (s *attendeeService) sendConfirmation(ctx context.Context, a *domain.Attendee) {
	if s.emailService == nil || a.Event == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.emailTimeout)
	defer cancel()

	data := &domain.RegistrationConfirmationEmailData{
		Email:         a.Email,
		Name:          a.Name,
		EventName:     a.Event.Name,
		EventLocation: a.Event.Location,
		StartTime:     a.Event.StartTime,
		EndTime:       a.Event.EndTime,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "registration confirmation not sent",
			"attendee_id", a.ID, "event_id", a.EventID, "err", err)
	}
}

func registrationOutcome(err error) string {
	var capErr *domain.CapacityExceededError
	switch {
	case errors.As(err, &capErr):
		return metrics.OutcomeCapacityExceeded
	case errors.Is(err, domain.ErrDuplicateRegistration):
		return metrics.OutcomeDuplicate
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeFailed
	}
}

func (s *attendeeService) ListForEvent(ctx context.Context, eventID string, params domain.PaginationParams) (*domain.AttendeePage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	params = params.Normalize()
	return s.page(ctx, params,
		func(ctx context.Context) ([]*domain.Attendee, error) {
			return s.attendeeRepo.ListByEventID(ctx, eventID, params)
		},
		func(ctx context.Context) (int, error) {
			return s.attendeeRepo.CountByEventID(ctx, eventID)
		},
	)
}

func (s *attendeeService) ListAll(ctx context.Context, params domain.PaginationParams) (*domain.AttendeePage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	params = params.Normalize()
	return s.page(ctx, params,
		func(ctx context.Context) ([]*domain.Attendee, error) {
			return s.attendeeRepo.List(ctx, params)
		},
		s.attendeeRepo.Count,
	)
}

// page runs the window query and the total count concurrently.
func (s *attendeeService) page(
	ctx context.Context,
	params domain.PaginationParams,
	list func(context.Context) ([]*domain.Attendee, error),
	count func(context.Context) (int, error),
) (*domain.AttendeePage, error) {
	var (
		attendees []*domain.Attendee
		total     int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if attendees, err = list(gctx); err != nil {
			return fmt.Errorf("list attendees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = count(gctx); err != nil {
			return fmt.Errorf("count attendees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if attendees == nil {
		attendees = []*domain.Attendee{}
	}
	return &domain.AttendeePage{
		Attendees: attendees,
		Meta:      domain.NewPageMeta(params, total, len(attendees)),
	}, nil
}

func (s *attendeeService) Get(ctx context.Context, id string) (*domain.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.attendeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	return a, nil
}

func (s *attendeeService) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.store.Remove(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove attendee: %w", err)
	}
	metrics.AttendeeRemovalsTotal.Inc()
	return nil
}
