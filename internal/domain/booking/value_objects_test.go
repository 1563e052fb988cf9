//go:build unit

package booking_test

import (
	"testing"
	"time"

	"neko-hotel/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func stay(t *testing.T, in, out string) booking.StayWindow {
	t.Helper()
	w, err := booking.NewStayWindow(date(t, in), date(t, out))
	require.NoError(t, err)
	return w
}

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())
	assert.Equal(t, time.Sunday, d.Weekday())

	_, err = booking.ParseDate("15/03/2026")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)

	_, err = booking.ParseDate("2026-13-01")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}

func TestDateOfTruncates(t *testing.T) {
	late := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)
	assert.True(t, booking.DateOf(late).Equal(booking.NewDate(2026, 3, 15)))
}

func TestStayWindow(t *testing.T) {
	t.Run("rejects inverted and zero-night ranges", func(t *testing.T) {
		_, err := booking.NewStayWindow(date(t, "2026-03-15"), date(t, "2026-03-15"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

		_, err = booking.NewStayWindow(date(t, "2026-03-15"), date(t, "2026-03-10"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("nights", func(t *testing.T) {
		assert.Equal(t, 1, stay(t, "2026-03-15", "2026-03-16").Nights())
		assert.Equal(t, 5, stay(t, "2026-03-15", "2026-03-20").Nights())
	})

	t.Run("contains excludes the checkout day", func(t *testing.T) {
		w := stay(t, "2026-03-15", "2026-03-18")

		assert.False(t, w.Contains(date(t, "2026-03-14")))
		assert.True(t, w.Contains(date(t, "2026-03-15")))
		assert.True(t, w.Contains(date(t, "2026-03-17")))
		assert.False(t, w.Contains(date(t, "2026-03-18")))
	})

	t.Run("overlap allows same-day turnover", func(t *testing.T) {
		w := stay(t, "2026-03-15", "2026-03-18")

		// Checkout morning meets check-in afternoon: no overlap
		assert.False(t, w.Overlaps(stay(t, "2026-03-18", "2026-03-20")))
		assert.False(t, w.Overlaps(stay(t, "2026-03-10", "2026-03-15")))

		assert.True(t, w.Overlaps(stay(t, "2026-03-17", "2026-03-20")))
		assert.True(t, w.Overlaps(stay(t, "2026-03-10", "2026-03-16")))
		assert.True(t, w.Overlaps(stay(t, "2026-03-16", "2026-03-17")))
		assert.True(t, w.Overlaps(stay(t, "2026-03-10", "2026-03-25")))
	})
}

func TestMoney(t *testing.T) {
	nightly := booking.NewMoney(4500)
	assert.Equal(t, int64(13500), nightly.MulNights(3).Cents())
	assert.Equal(t, int64(0), booking.NewMoney(0).MulNights(7).Cents())
}
