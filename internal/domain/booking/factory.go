package booking

import (
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory builds reservation entities, assigning identity, timestamps
// and the derived total price (nights × nightly rate). The rate is a
// billing convenience, never an input to availability.
type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

// CreateReservation builds a brand-new reservation.
func (f *Factory) CreateReservation(
	guest GuestDetails,
	roomType room.Type,
	assignment room.Assignment,
	stay StayWindow,
	nightlyRate Money,
) (*Reservation, error) {
	now := f.clock.Now()
	return newReservation(
		uuid.New(),
		guest,
		roomType,
		assignment,
		stay,
		nightlyRate.MulNights(stay.Nights()),
		now,
		now,
	)
}

// AmendReservation builds the replacement entity for an edit: all
// editable fields come from the request, identity and creation time are
// preserved, the modified timestamp and total price are re-stamped.
func (f *Factory) AmendReservation(
	existing *Reservation,
	guest GuestDetails,
	roomType room.Type,
	assignment room.Assignment,
	stay StayWindow,
	nightlyRate Money,
) (*Reservation, error) {
	amended, err := newReservation(
		existing.ID(),
		guest,
		roomType,
		assignment,
		stay,
		nightlyRate.MulNights(stay.Nights()),
		existing.CreatedAt(),
		f.clock.Now(),
	)
	if err != nil {
		return nil, err
	}
	amended.status = existing.Status()
	return amended, nil
}
