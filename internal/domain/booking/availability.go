package booking

import (
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoVacancy = errs.New("no rooms available for dates/type")

// CategoryCount is the unit accounting for one category on one night.
type CategoryCount struct {
	Total     int
	Booked    int
	Available int
}

// DayAvailability is the booked/available breakdown for a single night.
type DayAvailability struct {
	Date     Date
	Standard CategoryCount
	Delux    CategoryCount
	Suite    CategoryCount
}

// DayState summarizes a whole day for the calendar view.
type DayState string

const (
	DayAvailable DayState = "available"
	DayPartial   DayState = "partial"
	DayFull      DayState = "full"
)

// AvailabilityOn computes per-category occupancy for one night from the
// supplied reservation set. Pure function, no floor at zero: a negative
// Available means unit accounting was violated upstream.
func AvailabilityOn(date Date, reservations []*Reservation) DayAvailability {
	return availabilityExcluding(date, reservations, uuid.Nil)
}

// availabilityExcluding is the single shared counting path for both the
// create and edit flows. A non-nil excludeID removes that reservation's
// own unit consumption, so an in-place edit never conflicts with itself.
func availabilityExcluding(date Date, reservations []*Reservation, excludeID uuid.UUID) DayAvailability {
	booked := map[room.Category]int{}

	for _, res := range reservations {
		if excludeID != uuid.Nil && res.ID() == excludeID {
			continue
		}
		if !res.Stay().Contains(date) {
			continue
		}
		booked[res.RoomType().Category()] += res.RoomType().Units()
	}

	return DayAvailability{
		Date:     date,
		Standard: countFor(room.CategoryStandard, booked),
		Delux:    countFor(room.CategoryDelux, booked),
		Suite:    countFor(room.CategorySuite, booked),
	}
}

func countFor(c room.Category, booked map[room.Category]int) CategoryCount {
	total := c.Total()
	return CategoryCount{
		Total:     total,
		Booked:    booked[c],
		Available: total - booked[c],
	}
}

func (a DayAvailability) ByCategory(c room.Category) CategoryCount {
	switch c {
	case room.CategoryStandard:
		return a.Standard
	case room.CategoryDelux:
		return a.Delux
	case room.CategorySuite:
		return a.Suite
	default:
		return CategoryCount{}
	}
}

func (a DayAvailability) TotalBooked() int {
	return a.Standard.Booked + a.Delux.Booked + a.Suite.Booked
}

func (a DayAvailability) State() DayState {
	booked := a.TotalBooked()
	switch {
	case booked == 0:
		return DayAvailable
	case booked >= room.TotalUnits():
		return DayFull
	default:
		return DayPartial
	}
}

// NoVacancyError carries the first night that failed the aggregate
// availability check. The whole range is still rejected as a unit.
type NoVacancyError struct {
	Date     Date
	RoomType room.Type
}

func (e *NoVacancyError) Error() string {
	return "no " + e.RoomType.String() + " vacancy on " + e.Date.String()
}

func (e *NoVacancyError) Unwrap() error {
	return ErrNoVacancy
}

// CheckStay walks the candidate's stay night by night and verifies the
// requested room type has enough free units on each one. The caller must
// have validated date ordering already. When the candidate carries an
// existing ID the counting excludes that reservation (edit-mode
// self-exclusion). Returns nil when every night passes; otherwise a
// *NoVacancyError naming the first failing night.
func CheckStay(candidate *Reservation, reservations []*Reservation) error {
	needed := candidate.RoomType().Units()
	category := candidate.RoomType().Category()

	for d := candidate.Stay().CheckIn(); d.Before(candidate.Stay().CheckOut()); d = d.Next() {
		avail := availabilityExcluding(d, reservations, candidate.ID())
		if avail.ByCategory(category).Available < needed {
			return &NoVacancyError{Date: d, RoomType: candidate.RoomType()}
		}
	}

	return nil
}
