//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"

	"eventregistration/internal/domain"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("events_test"),
		tcpostgres.WithUsername("events"),
		tcpostgres.WithPassword("events"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, MigrateUp(dsn))

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(20)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createEvent(t *testing.T, db *sql.DB, capacity int) *domain.Event {
	t.Helper()
	now := time.Now().UTC()
	e := domain.NewEvent("Concurrency Summit", "Berlin", now.Add(48*time.Hour), now.Add(50*time.Hour), capacity, now, now)
	require.NoError(t, NewEventRepository(db).Create(context.Background(), e))
	return e
}

func TestIntegration_ConcurrentRegistrationsNeverOverbook(t *testing.T) {
	db := setupDB(t)
	event := createEvent(t, db, 5)
	store := NewRegistrationStore(db, DefaultMaxRetries)

	var succeeded, rejected atomic.Int32
	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			a := domain.NewAttendee(event.ID, fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@example.com", i), time.Now().UTC())
			err := store.Register(context.Background(), a)
			var capErr *domain.CapacityExceededError
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.As(err, &capErr):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, int32(5), succeeded.Load())
	require.Equal(t, int32(5), rejected.Load())

	got, err := NewEventRepository(db).GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	require.Equal(t, 5, got.CurrentAttendees)

	n, err := NewAttendeeRepository(db).CountByEventID(context.Background(), event.ID)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestIntegration_ConcurrentDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	event := createEvent(t, db, 50)
	store := NewRegistrationStore(db, DefaultMaxRetries)

	emails := []string{"Dup@Example.com", "dup@example.com", "DUP@EXAMPLE.COM", "dup@example.com"}
	var succeeded, duplicates atomic.Int32
	var g errgroup.Group
	for _, email := range emails {
		g.Go(func() error {
			err := store.Register(context.Background(), domain.NewAttendee(event.ID, "Dup", email, time.Now().UTC()))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrDuplicateRegistration):
				duplicates.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, int32(1), succeeded.Load())
	require.Equal(t, int32(3), duplicates.Load())
}

func TestIntegration_RemoveFreesCapacity(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	event := createEvent(t, db, 2)
	store := NewRegistrationStore(db, DefaultMaxRetries)

	first := domain.NewAttendee(event.ID, "First", "first@example.com", time.Now().UTC())
	require.NoError(t, store.Register(ctx, first))
	require.NoError(t, store.Register(ctx, domain.NewAttendee(event.ID, "Second", "second@example.com", time.Now().UTC())))

	var capErr *domain.CapacityExceededError
	err := store.Register(ctx, domain.NewAttendee(event.ID, "Third", "third@example.com", time.Now().UTC()))
	require.True(t, errors.As(err, &capErr))

	require.NoError(t, store.Remove(ctx, first.ID))
	require.ErrorIs(t, store.Remove(ctx, first.ID), domain.ErrNotFound)

	got, err := NewEventRepository(db).GetByID(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.CurrentAttendees)

	require.NoError(t, store.Register(ctx, domain.NewAttendee(event.ID, "Third", "third@example.com", time.Now().UTC())))
	got, err = NewEventRepository(db).GetByID(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.CurrentAttendees)
}

func TestIntegration_DeleteEventCascades(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	event := createEvent(t, db, 10)
	store := NewRegistrationStore(db, DefaultMaxRetries)
	require.NoError(t, store.Register(ctx, domain.NewAttendee(event.ID, "A", "a@example.com", time.Now().UTC())))

	_, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, event.ID)
	require.NoError(t, err)

	n, err := NewAttendeeRepository(db).CountByEventID(ctx, event.ID)
	require.NoError(t, err)
	require.Zero(t, n)
}
