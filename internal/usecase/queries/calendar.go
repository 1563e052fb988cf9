package queries

import (
	"context"
	"time"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/usecase/shared"

	"github.com/google/uuid"
)

type CalendarQueries interface {
	Month(ctx context.Context, year int, month time.Month) (*CalendarMonthView, error)
	DayDetail(ctx context.Context, date booking.Date) (*DayDetailView, error)
	RoomOptions(ctx context.Context, t room.Type, stay booking.StayWindow, excludeID uuid.UUID) ([]RoomOptionView, error)
}

type calendarQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCalendarQueries(uow shared.UnitOfWork) CalendarQueries {
	return &calendarQueriesImpl{uow: uow}
}

// Month renders the occupancy overview: one state per day, computed
// from the live reservation set. Days outside the month are not padded
// in; the client lays out the grid.
func (q *calendarQueriesImpl) Month(ctx context.Context, year int, month time.Month) (*CalendarMonthView, error) {
	all, err := q.uow.Reads().Reservations().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	first := booking.NewDate(year, month, 1)
	view := &CalendarMonthView{
		Year:  year,
		Month: int(month),
	}

	for d := first; d.Time().Month() == month; d = d.Next() {
		avail := booking.AvailabilityOn(d, all)
		view.Days = append(view.Days, CalendarDayView{
			Date:    d.String(),
			Weekday: d.Weekday().String(),
			State:   string(avail.State()),
			Booked:  avail.TotalBooked(),
			Total:   room.TotalUnits(),
		})
	}

	return view, nil
}

// DayDetail is the drill-down for one night: the per-category unit
// breakdown plus every reservation occupying it.
func (q *calendarQueriesImpl) DayDetail(ctx context.Context, date booking.Date) (*DayDetailView, error) {
	all, err := q.uow.Reads().Reservations().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	avail := booking.AvailabilityOn(date, all)
	view := &DayDetailView{
		Availability: toAvailabilityView(avail),
		Reservations: []ReservationView{},
	}

	for _, res := range all {
		if res.Stay().Contains(date) {
			view.Reservations = append(view.Reservations, toReservationView(res))
		}
	}

	return view, nil
}

// RoomOptions lists the concrete rooms of a type still free for the
// window, for the booking form's room picker. excludeID carries the
// reservation being edited so its own room stays offered; uuid.Nil for
// a new booking.
func (q *calendarQueriesImpl) RoomOptions(ctx context.Context, t room.Type, stay booking.StayWindow, excludeID uuid.UUID) ([]RoomOptionView, error) {
	all, err := q.uow.Reads().Reservations().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	free := booking.FreeAssignments(t, stay, all, excludeID)
	views := make([]RoomOptionView, 0, len(free))
	for _, a := range free {
		views = append(views, RoomOptionView{
			RoomNumber: a.String(),
			RoomType:   t.String(),
		})
	}
	return views, nil
}

func toAvailabilityView(a booking.DayAvailability) DayAvailabilityView {
	return DayAvailabilityView{
		Date:     a.Date.String(),
		Standard: toCountView(a.Standard),
		Delux:    toCountView(a.Delux),
		Suite:    toCountView(a.Suite),
	}
}

func toCountView(c booking.CategoryCount) CategoryCountView {
	return CategoryCountView{
		Total:     c.Total,
		Booked:    c.Booked,
		Available: c.Available,
	}
}
