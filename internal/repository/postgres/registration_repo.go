package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventregistration/internal/domain"
	"eventregistration/internal/metrics"
)

// DefaultMaxRetries is how many times a registration transaction is re-run after a
// serialization failure, deadlock or lock timeout.
const DefaultMaxRetries = 3

// registrationStore serialises attendee writes per event with a row lock on the
// event, and keeps events.current_attendees equal to the attendee row count.
type registrationStore struct {
	DB         *sql.DB
	maxRetries int
	now        func() time.Time
}

// NewRegistrationStore returns a domain.RegistrationStore backed by Postgres.
// A negative maxRetries is treated as zero.
func NewRegistrationStore(db *sql.DB, maxRetries int) domain.RegistrationStore {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &registrationStore{
		DB:         db,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

func (s *registrationStore) Register(ctx context.Context, a *domain.Attendee) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		event, err := lockEvent(ctx, tx, a.EventID)
		if err != nil {
			return err
		}

		// Read after the lock is held so rows committed by the previous holder are visible.
		var registered int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendees WHERE event_id = $1`, a.EventID).Scan(&registered); err != nil {
			return fmt.Errorf("count attendees: %w", err)
		}
		if registered >= event.MaxCapacity {
			return &domain.CapacityExceededError{
				EventID:     event.ID,
				EventName:   event.Name,
				MaxCapacity: event.MaxCapacity,
			}
		}

		var exists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM attendees WHERE event_id = $1 AND lower(email) = lower($2))`,
			a.EventID, a.Email,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			return domain.ErrDuplicateRegistration
		}

		id := uuid.NewString()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO attendees (id, event_id, name, email, registered_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, id, a.EventID, a.Name, a.Email, a.RegisteredAt, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateRegistration
			}
			return fmt.Errorf("insert attendee: %w", err)
		}

		if err := recount(ctx, tx, event, a.RegisteredAt); err != nil {
			return err
		}
		a.ID = id
		a.Event = event
		return nil
	})
}

func (s *registrationStore) Remove(ctx context.Context, attendeeID string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var eventID string
		err := tx.QueryRowContext(ctx, `SELECT event_id FROM attendees WHERE id = $1`, attendeeID).Scan(&eventID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("get attendee: %w", err)
		}

		// Same lock order as Register: event row first, then attendee rows.
		event, err := lockEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM attendees WHERE id = $1`, attendeeID)
		if err != nil {
			return fmt.Errorf("delete attendee: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return domain.ErrNotFound
		}
		return recount(ctx, tx, event, s.now())
	})
}

// inTx runs fn in a transaction, re-running the whole transaction when Postgres
// reports a transient conflict.
func (s *registrationStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			metrics.RegistrationRetriesTotal.Inc()
		}
		err = s.runTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return fmt.Errorf("transaction failed after %d attempts: %w", s.maxRetries+1, err)
}

func (s *registrationStore) runTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// lockEvent reads the event row and holds a row-level lock on it until the
// transaction ends. Concurrent writers for the same event queue here.
func lockEvent(ctx context.Context, tx *sql.Tx, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	event, err := scanEvent(tx.QueryRowContext(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}
	return event, nil
}

// recount sets current_attendees to the number of attendee rows and copies the
// stored values back onto event.
func recount(ctx context.Context, tx *sql.Tx, event *domain.Event, now time.Time) error {
	err := tx.QueryRowContext(ctx, `
		UPDATE events
		SET current_attendees = (SELECT COUNT(*) FROM attendees WHERE event_id = $1), updated_at = $2
		WHERE id = $1
		RETURNING current_attendees, updated_at
	`, event.ID, now).Scan(&event.CurrentAttendees, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("recount attendees: %w", err)
	}
	return nil
}
