package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"eventregistration/internal/domain"
)

const eventColumns = `id, name, location, start_time, end_time, max_capacity, current_attendees, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Name, &e.Location, &e.StartTime, &e.EndTime,
		&e.MaxCapacity, &e.CurrentAttendees, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, name, location, start_time, end_time, max_capacity, current_attendees, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, query, id, e.Name, e.Location, e.StartTime, e.EndTime,
		e.MaxCapacity, e.CurrentAttendees, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetWithAttendees(ctx context.Context, id string) (*domain.EventWithAttendees, error) {
	query := `
		SELECT e.id, e.name, e.location, e.start_time, e.end_time, e.max_capacity, e.current_attendees, e.created_at, e.updated_at,
		       a.id, a.name, a.email, a.registered_at, a.created_at, a.updated_at
		FROM events e
		LEFT JOIN attendees a ON a.event_id = e.id
		WHERE e.id = $1
		ORDER BY a.registered_at DESC, a.id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result *domain.EventWithAttendees
	for rows.Next() {
		e := &domain.Event{}
		var (
			attID, attName, attEmail         sql.NullString
			registeredAt, createdAt, updated sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Location, &e.StartTime, &e.EndTime,
			&e.MaxCapacity, &e.CurrentAttendees, &e.CreatedAt, &e.UpdatedAt,
			&attID, &attName, &attEmail, &registeredAt, &createdAt, &updated); err != nil {
			return nil, err
		}
		if result == nil {
			result = &domain.EventWithAttendees{Event: e, Attendees: []*domain.Attendee{}}
		}
		if !attID.Valid {
			continue
		}
		result.Attendees = append(result.Attendees, &domain.Attendee{
			ID:           attID.String,
			EventID:      e.ID,
			Name:         attName.String,
			Email:        attEmail.String,
			RegisteredAt: registeredAt.Time,
			CreatedAt:    createdAt.Time,
			UpdatedAt:    updated.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, domain.ErrNotFound
	}
	return result, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_time > $1
		ORDER BY start_time ASC, id ASC
	`
	return r.list(ctx, query, now)
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY start_time DESC, id ASC
	`
	return r.list(ctx, query)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
