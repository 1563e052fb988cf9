//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/pkg/clock"
	"neko-hotel/internal/usecase/queries"
	"neko-hotel/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readOnlyUoW serves a fixed reservation set; the calendar queries only
// ever read.
type readOnlyUoW struct {
	reservations []*booking.Reservation
}

func (u *readOnlyUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.Reads())
}

func (u *readOnlyUoW) Reads() shared.Tx {
	return &readOnlyTx{uow: u}
}

type readOnlyTx struct {
	uow *readOnlyUoW
}

func (t *readOnlyTx) Reservations() shared.ReservationRepository { return &fixedReservations{t.uow} }
func (t *readOnlyTx) History() shared.HistoryRepository          { return nil }
func (t *readOnlyTx) Customers() shared.CustomerRepository       { return nil }
func (t *readOnlyTx) Cats() shared.CatRepository                 { return nil }
func (t *readOnlyTx) Rates() shared.RateRepository               { return nil }

type fixedReservations struct {
	uow *readOnlyUoW
}

func (r *fixedReservations) ListAll(_ context.Context) ([]*booking.Reservation, error) {
	return r.uow.reservations, nil
}

func (r *fixedReservations) FindByID(_ context.Context, id uuid.UUID) (*booking.Reservation, error) {
	for _, res := range r.uow.reservations {
		if res.ID() == id {
			return res, nil
		}
	}
	return nil, nil
}

func (r *fixedReservations) Insert(_ context.Context, _ *booking.Reservation) error { return nil }
func (r *fixedReservations) Update(_ context.Context, _ *booking.Reservation) error { return nil }
func (r *fixedReservations) Delete(_ context.Context, _ uuid.UUID) error            { return nil }

var testFactory = booking.NewFactory(clock.NewMockClock(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)))

func reservation(t *testing.T, typ room.Type, assignment, checkIn, checkOut string) *booking.Reservation {
	t.Helper()
	a, err := room.ParseAssignment(assignment)
	require.NoError(t, err)
	in, err := booking.ParseDate(checkIn)
	require.NoError(t, err)
	out, err := booking.ParseDate(checkOut)
	require.NoError(t, err)
	stay, err := booking.NewStayWindow(in, out)
	require.NoError(t, err)

	res, err := testFactory.CreateReservation(
		booking.GuestDetails{BookerName: "Hana Sato", CatName: "Mochi"},
		typ, a, stay, booking.NewMoney(4000),
	)
	require.NoError(t, err)
	return res
}

func TestCalendarMonth(t *testing.T) {
	q := queries.NewCalendarQueries(&readOnlyUoW{reservations: []*booking.Reservation{
		reservation(t, room.TypeConnecting, "Std1+Std2", "2026-03-10", "2026-03-12"),
		reservation(t, room.TypeConnecting, "Std3+Std4", "2026-03-10", "2026-03-11"),
		reservation(t, room.TypeDelux, "Delx1", "2026-03-10", "2026-03-11"),
		reservation(t, room.TypeDelux, "Delx2", "2026-03-10", "2026-03-11"),
		reservation(t, room.TypeSuite, "Suite1", "2026-03-10", "2026-03-11"),
		reservation(t, room.TypeSuite, "Suite2", "2026-03-10", "2026-03-11"),
	}})

	view, err := q.Month(context.Background(), 2026, time.March)
	require.NoError(t, err)

	assert.Equal(t, 2026, view.Year)
	assert.Equal(t, 3, view.Month)
	require.Len(t, view.Days, 31)

	byDate := map[string]queries.CalendarDayView{}
	for _, d := range view.Days {
		byDate[d.Date] = d
	}

	assert.Equal(t, "full", byDate["2026-03-10"].State)
	assert.Equal(t, 8, byDate["2026-03-10"].Booked)
	assert.Equal(t, "partial", byDate["2026-03-11"].State)
	assert.Equal(t, 2, byDate["2026-03-11"].Booked)
	assert.Equal(t, "available", byDate["2026-03-12"].State)
	assert.Equal(t, 0, byDate["2026-03-12"].Booked)
	assert.Equal(t, 8, byDate["2026-03-12"].Total)
}

func TestDayDetail(t *testing.T) {
	staying := reservation(t, room.TypeSuite, "Suite1", "2026-03-10", "2026-03-13")
	elsewhere := reservation(t, room.TypeSuite, "Suite2", "2026-03-20", "2026-03-22")

	q := queries.NewCalendarQueries(&readOnlyUoW{reservations: []*booking.Reservation{staying, elsewhere}})

	d, err := booking.ParseDate("2026-03-11")
	require.NoError(t, err)

	view, err := q.DayDetail(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, 1, view.Availability.Suite.Booked)
	assert.Equal(t, 1, view.Availability.Suite.Available)
	require.Len(t, view.Reservations, 1)
	assert.Equal(t, staying.ID(), view.Reservations[0].ID)
}

func TestRoomOptions(t *testing.T) {
	taken := reservation(t, room.TypeStandard, "Std2", "2026-03-10", "2026-03-13")
	q := queries.NewCalendarQueries(&readOnlyUoW{reservations: []*booking.Reservation{taken}})

	in, err := booking.ParseDate("2026-03-11")
	require.NoError(t, err)
	out, err := booking.ParseDate("2026-03-12")
	require.NoError(t, err)
	window, err := booking.NewStayWindow(in, out)
	require.NoError(t, err)

	t.Run("occupied room is not offered", func(t *testing.T) {
		options, err := q.RoomOptions(context.Background(), room.TypeStandard, window, uuid.Nil)
		require.NoError(t, err)
		require.Len(t, options, 3)
		assert.Equal(t, "Std1", options[0].RoomNumber)
		assert.Equal(t, "Std3", options[1].RoomNumber)
		assert.Equal(t, "Std4", options[2].RoomNumber)
	})

	t.Run("pair sharing the occupied room is not offered", func(t *testing.T) {
		options, err := q.RoomOptions(context.Background(), room.TypeConnecting, window, uuid.Nil)
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, "Std3+Std4", options[0].RoomNumber)
	})

	t.Run("edit mode offers the reservation's own room", func(t *testing.T) {
		options, err := q.RoomOptions(context.Background(), room.TypeStandard, window, taken.ID())
		require.NoError(t, err)
		assert.Len(t, options, 4)
	})
}
