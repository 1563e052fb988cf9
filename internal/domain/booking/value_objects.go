package booking

import (
	"time"

	"neko-hotel/internal/pkg/errs"
)

var (
	ErrInvalidDate      = errs.New("invalid date")
	ErrInvalidDateRange = errs.New("invalid date range")
)

const dateLayout = "2006-01-02"

// Date is a calendar day with no time component. All stay arithmetic
// works at day granularity.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.Mark(err, ErrInvalidDate)
	}
	return DateOf(t), nil
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Next() Date            { return Date{t: d.t.AddDate(0, 0, 1)} }
func (d Date) Before(o Date) bool    { return d.t.Before(o.t) }
func (d Date) After(o Date) bool     { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool     { return d.t.Equal(o.t) }
func (d Date) Time() time.Time       { return d.t }
func (d Date) String() string        { return d.t.Format(dateLayout) }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// StayWindow is a guest's stay: check-in through checkout morning.
// Invariant: checkOut is strictly after checkIn.
type StayWindow struct {
	checkIn  Date
	checkOut Date
}

func NewStayWindow(checkIn, checkOut Date) (StayWindow, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return StayWindow{}, ErrInvalidDateRange
	}
	return StayWindow{checkIn: checkIn, checkOut: checkOut}, nil
}

func (w StayWindow) CheckIn() Date  { return w.checkIn }
func (w StayWindow) CheckOut() Date { return w.checkOut }

func (w StayWindow) Nights() int {
	return int(w.checkOut.t.Sub(w.checkIn.t).Hours() / 24)
}

// Contains reports whether the room is occupied on the given night.
// The checkout day is excluded: the guest leaves in the morning and the
// room is free that night.
func (w StayWindow) Contains(d Date) bool {
	return !d.Before(w.checkIn) && d.Before(w.checkOut)
}

// Overlaps is the range-overlap test used for room-number conflicts.
// Both ends are exclusive, so same-day turnover of the same room (one
// guest out in the morning, the next in that afternoon) is allowed.
func (w StayWindow) Overlaps(o StayWindow) bool {
	return w.checkIn.Before(o.checkOut) && o.checkIn.Before(w.checkOut)
}

func (w StayWindow) Equal(o StayWindow) bool {
	return w.checkIn.Equal(o.checkIn) && w.checkOut.Equal(o.checkOut)
}

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) MulNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}
