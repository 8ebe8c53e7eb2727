package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventregistration/internal/domain"
)

var attendeeWithEventColumnNames = append([]string{"id", "event_id", "name", "email", "registered_at", "created_at", "updated_at"}, eventColumnNames...)

func attendeeRow(rows *sqlmock.Rows, a *domain.Attendee, e *domain.Event) *sqlmock.Rows {
	return rows.AddRow(a.ID, a.EventID, a.Name, a.Email, a.RegisteredAt, a.CreatedAt, a.UpdatedAt,
		e.ID, e.Name, e.Location, e.StartTime, e.EndTime, e.MaxCapacity, e.CurrentAttendees, e.CreatedAt, e.UpdatedAt)
}

func TestAttendeeRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ev := sampleEvent("ev-1")
	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	att := &domain.Attendee{ID: "att-1", EventID: "ev-1", Name: "John", Email: "john@example.com", RegisteredAt: ts, CreatedAt: ts, UpdatedAt: ts}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM attendees a\s+JOIN events e ON e.id = a.event_id\s+WHERE a.id = \$1`).
					WithArgs("att-1").
					WillReturnRows(attendeeRow(sqlmock.NewRows(attendeeWithEventColumnNames), att, ev))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE a.id = \$1`).
					WithArgs("att-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE a.id = \$1`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewAttendeeRepository(db).GetByID(ctx, "att-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "att-1", got.ID)
			require.NotNil(t, got.Event)
			require.Equal(t, ev, got.Event)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttendeeRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	ev := sampleEvent("ev-1")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(attendeeWithEventColumnNames)
	for i, id := range []string{"att-7", "att-6"} {
		ts := time.Date(2026, 2, 1, 10, 7-i, 0, 0, time.UTC)
		attendeeRow(rows, &domain.Attendee{ID: id, EventID: "ev-1", Name: "N", Email: id + "@example.com", RegisteredAt: ts, CreatedAt: ts, UpdatedAt: ts}, ev)
	}
	mock.ExpectQuery(`WHERE a.event_id = \$1\s+ORDER BY a.registered_at DESC, a.id DESC\s+LIMIT \$2 OFFSET \$3`).
		WithArgs("ev-1", 5, 5).
		WillReturnRows(rows)

	got, err := NewAttendeeRepository(db).ListByEventID(ctx, "ev-1", domain.PaginationParams{Page: 2, PageSize: 5})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "att-7", got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendeeRepository_ListByEventID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE a.event_id = \$1`).
		WithArgs("ev-1", 15, 0).
		WillReturnRows(sqlmock.NewRows(attendeeWithEventColumnNames))

	got, err := NewAttendeeRepository(db).ListByEventID(context.Background(), "ev-1", domain.PaginationParams{Page: 1, PageSize: 15})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestAttendeeRepository_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM attendees WHERE event_id = \$1`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(20))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM attendees`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	repo := NewAttendeeRepository(db)
	n, err := repo.CountByEventID(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Equal(t, 20, n)

	n, err = repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendeeRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	rows := attendeeRow(sqlmock.NewRows(attendeeWithEventColumnNames),
		&domain.Attendee{ID: "att-1", EventID: "ev-1", Name: "John", Email: "john@example.com", RegisteredAt: ts, CreatedAt: ts, UpdatedAt: ts},
		sampleEvent("ev-1"))
	mock.ExpectQuery(`ORDER BY a.registered_at DESC, a.id DESC\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	got, err := NewAttendeeRepository(db).List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Conf 2026", got[0].Event.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
