//go:build unit

package commands_test

import (
	"context"
	"testing"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/history"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingFixture(t *testing.T) (*memStore, commands.BookingCommands) {
	t.Helper()
	store := newMemStore()
	store.seedRates(4000, testClock.Now())
	uow := newFakeUoW(store)
	return store, commands.NewBookingUseCase(uow, booking.NewFactory(testClock), testClock)
}

func input(t *testing.T, typ room.Type, assignment, checkIn, checkOut string) commands.ReservationInput {
	t.Helper()
	a, err := room.ParseAssignment(assignment)
	require.NoError(t, err)

	in, err := booking.ParseDate(checkIn)
	require.NoError(t, err)
	out, err := booking.ParseDate(checkOut)
	require.NoError(t, err)
	stay, err := booking.NewStayWindow(in, out)
	require.NoError(t, err)

	return commands.ReservationInput{
		Guest:      booking.GuestDetails{BookerName: "Hana Sato", CatName: "Mochi"},
		RoomType:   typ,
		Assignment: a,
		Stay:       stay,
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("persists the reservation with one created entry", func(t *testing.T) {
		store, uc := newBookingFixture(t)

		created, err := uc.CreateReservation(context.Background(), input(t, room.TypeDelux, "Delx1", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)

		require.Len(t, store.reservations, 1)
		assert.Equal(t, int64(12000), created.TotalPrice().Cents())
		assert.Equal(t, booking.StatusConfirmed, created.Status())

		require.Len(t, store.history, 1)
		entry := store.history[0]
		assert.Equal(t, history.ActionCreated, entry.Action())
		assert.Equal(t, created.ID(), entry.ReservationID())
		require.NotNil(t, entry.Details().Snapshot)
		assert.Equal(t, "Delx1", entry.Details().Snapshot.RoomNumber)
		assert.Nil(t, entry.Details().Before)
	})

	t.Run("no vacancy writes nothing", func(t *testing.T) {
		store, uc := newBookingFixture(t)

		_, err := uc.CreateReservation(context.Background(), input(t, room.TypeSuite, "Suite1", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)
		_, err = uc.CreateReservation(context.Background(), input(t, room.TypeSuite, "Suite2", "2026-03-16", "2026-03-19"))
		require.NoError(t, err)

		_, err = uc.CreateReservation(context.Background(), input(t, room.TypeSuite, "Suite1", "2026-03-17", "2026-03-18"))
		assert.ErrorIs(t, err, booking.ErrNoVacancy)

		assert.Len(t, store.reservations, 2)
		assert.Len(t, store.history, 2)
	})

	t.Run("free units but taken room is a conflict", func(t *testing.T) {
		store, uc := newBookingFixture(t)

		_, err := uc.CreateReservation(context.Background(), input(t, room.TypeStandard, "Std1", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)

		// Three standard units remain, but Std1 itself is occupied
		_, err = uc.CreateReservation(context.Background(), input(t, room.TypeStandard, "Std1", "2026-03-16", "2026-03-17"))
		assert.ErrorIs(t, err, booking.ErrRoomConflict)

		// A connecting pair containing Std1 is blocked the same way
		_, err = uc.CreateReservation(context.Background(), input(t, room.TypeConnecting, "Std1+Std2", "2026-03-16", "2026-03-17"))
		assert.ErrorIs(t, err, booking.ErrRoomConflict)

		assert.Len(t, store.reservations, 1)
		assert.Len(t, store.history, 1)
	})

	t.Run("back-to-back stays in the same room are allowed", func(t *testing.T) {
		store, uc := newBookingFixture(t)

		_, err := uc.CreateReservation(context.Background(), input(t, room.TypeStandard, "Std1", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)
		_, err = uc.CreateReservation(context.Background(), input(t, room.TypeStandard, "Std1", "2026-03-18", "2026-03-20"))
		require.NoError(t, err)

		assert.Len(t, store.reservations, 2)
	})

	t.Run("missing rate is rejected", func(t *testing.T) {
		store := newMemStore()
		uow := newFakeUoW(store)
		uc := commands.NewBookingUseCase(uow, booking.NewFactory(testClock), testClock)

		_, err := uc.CreateReservation(context.Background(), input(t, room.TypeDelux, "Delx1", "2026-03-15", "2026-03-18"))
		assert.ErrorIs(t, err, commands.ErrRateNotFound)
		assert.Empty(t, store.reservations)
	})
}

func TestUpdateReservation(t *testing.T) {
	t.Run("shifting within its own footprint succeeds", func(t *testing.T) {
		store, uc := newBookingFixture(t)

		created, err := uc.CreateReservation(context.Background(), input(t, room.TypeSuite, "Suite1", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)
		_, err = uc.CreateReservation(context.Background(), input(t, room.TypeSuite, "Suite2", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)

		// Both suites are taken; the edit only passes because the
		// reservation's own units are excluded from the count
		updated, err := uc.UpdateReservation(context.Background(), created.ID(), input(t, room.TypeSuite, "Suite1", "2026-03-15", "2026-03-20"))
		require.NoError(t, err)

		assert.Equal(t, created.ID(), updated.ID())
		assert.Equal(t, created.CreatedAt(), updated.CreatedAt())
		assert.Equal(t, int64(20000), updated.TotalPrice().Cents())
		assert.Equal(t, "2026-03-20", updated.Stay().CheckOut().String())

		require.Len(t, store.history, 3)
		entry := store.history[2]
		assert.Equal(t, history.ActionUpdated, entry.Action())
		require.NotNil(t, entry.Details().Before)
		require.NotNil(t, entry.Details().After)
		assert.Equal(t, "2026-03-18", entry.Details().Before.CheckOut)
		assert.Equal(t, "2026-03-20", entry.Details().After.CheckOut)
	})

	t.Run("moving onto another reservation's room fails atomically", func(t *testing.T) {
		store, uc := newBookingFixture(t)

		created, err := uc.CreateReservation(context.Background(), input(t, room.TypeDelux, "Delx1", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)
		_, err = uc.CreateReservation(context.Background(), input(t, room.TypeDelux, "Delx2", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)

		_, err = uc.UpdateReservation(context.Background(), created.ID(), input(t, room.TypeDelux, "Delx2", "2026-03-15", "2026-03-18"))
		assert.ErrorIs(t, err, booking.ErrRoomConflict)

		// Unchanged: still in Delx1, no extra history
		assert.Equal(t, "Delx1", store.reservations[created.ID()].Assignment().String())
		assert.Len(t, store.history, 2)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, uc := newBookingFixture(t)

		_, err := uc.UpdateReservation(context.Background(), uuid.New(), input(t, room.TypeDelux, "Delx1", "2026-03-15", "2026-03-18"))
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestDeleteReservation(t *testing.T) {
	t.Run("removes the reservation and keeps its final snapshot", func(t *testing.T) {
		store, uc := newBookingFixture(t)

		created, err := uc.CreateReservation(context.Background(), input(t, room.TypeSuite, "Suite1", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)

		require.NoError(t, uc.DeleteReservation(context.Background(), created.ID()))

		assert.Empty(t, store.reservations)
		require.Len(t, store.history, 2)

		entry := store.history[1]
		assert.Equal(t, history.ActionDeleted, entry.Action())
		require.NotNil(t, entry.Details().Snapshot)
		assert.Equal(t, created.ID(), entry.Details().Snapshot.ID)
		assert.Equal(t, "Suite1", entry.Details().Snapshot.RoomNumber)
	})

	t.Run("deleting frees the room for new bookings", func(t *testing.T) {
		_, uc := newBookingFixture(t)

		created, err := uc.CreateReservation(context.Background(), input(t, room.TypeSuite, "Suite1", "2026-03-15", "2026-03-18"))
		require.NoError(t, err)
		require.NoError(t, uc.DeleteReservation(context.Background(), created.ID()))

		_, err = uc.CreateReservation(context.Background(), input(t, room.TypeSuite, "Suite1", "2026-03-15", "2026-03-18"))
		assert.NoError(t, err)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, uc := newBookingFixture(t)
		assert.ErrorIs(t, uc.DeleteReservation(context.Background(), uuid.New()), commands.ErrReservationNotFound)
	})
}
