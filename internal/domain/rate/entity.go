package rate

import (
	"time"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/pkg/errs"
)

var ErrNegativeRate = errs.New("nightly rate cannot be negative")

// RoomRate is the nightly price for one room type. Used only for the
// derived total on a reservation, never for availability decisions.
type RoomRate struct {
	roomType  room.Type
	nightly   booking.Money
	updatedAt time.Time
}

func NewRoomRate(t room.Type, nightly booking.Money, now time.Time) (*RoomRate, error) {
	if !t.IsValid() {
		return nil, room.ErrUnknownType
	}
	if nightly.Cents() < 0 {
		return nil, ErrNegativeRate
	}
	return &RoomRate{roomType: t, nightly: nightly, updatedAt: now}, nil
}

func ReconstructRoomRate(t room.Type, nightly booking.Money, updatedAt time.Time) *RoomRate {
	return &RoomRate{roomType: t, nightly: nightly, updatedAt: updatedAt}
}

func (r *RoomRate) RoomType() room.Type    { return r.roomType }
func (r *RoomRate) Nightly() booking.Money { return r.nightly }
func (r *RoomRate) UpdatedAt() time.Time   { return r.updatedAt }
