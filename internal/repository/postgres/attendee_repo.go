package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventregistration/internal/domain"
)

// attendeeWithEventSelect projects an attendee together with its event in one row.
const attendeeWithEventSelect = `
		SELECT a.id, a.event_id, a.name, a.email, a.registered_at, a.created_at, a.updated_at,
		       e.id, e.name, e.location, e.start_time, e.end_time, e.max_capacity, e.current_attendees, e.created_at, e.updated_at
		FROM attendees a
		JOIN events e ON e.id = a.event_id
`

func scanAttendeeWithEvent(row rowScanner) (*domain.Attendee, error) {
	a := &domain.Attendee{}
	e := &domain.Event{}
	err := row.Scan(&a.ID, &a.EventID, &a.Name, &a.Email, &a.RegisteredAt, &a.CreatedAt, &a.UpdatedAt,
		&e.ID, &e.Name, &e.Location, &e.StartTime, &e.EndTime, &e.MaxCapacity, &e.CurrentAttendees, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Event = e
	return a, nil
}

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{
		DB: db,
	}
}

func (r *attendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	query := attendeeWithEventSelect + ` WHERE a.id = $1`
	a, err := scanAttendeeWithEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Attendee, error) {
	query := attendeeWithEventSelect + `
		WHERE a.event_id = $1
		ORDER BY a.registered_at DESC, a.id DESC
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, eventID, params.PageSize, params.Offset())
}

func (r *attendeeRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendees WHERE event_id = $1`, eventID).Scan(&n)
	return n, err
}

func (r *attendeeRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Attendee, error) {
	query := attendeeWithEventSelect + `
		ORDER BY a.registered_at DESC, a.id DESC
		LIMIT $1 OFFSET $2
	`
	return r.list(ctx, query, params.PageSize, params.Offset())
}

func (r *attendeeRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendees`).Scan(&n)
	return n, err
}

func (r *attendeeRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Attendee, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a, err := scanAttendeeWithEvent(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attendees, nil
}
