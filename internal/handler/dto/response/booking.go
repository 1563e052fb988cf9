package response

import (
	"time"

	"neko-hotel/internal/domain/booking"

	"github.com/google/uuid"
)

// ReservationResponse mirrors the read-side view; commands return the
// freshly written entity, so this mapping goes straight from the domain.
type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookerName    string     `json:"booker_name"`
	BookerContact string     `json:"booker_contact"`
	CatName       string     `json:"cat_name"`
	CatDetails    string     `json:"cat_details,omitempty"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	CatID         *uuid.UUID `json:"cat_id,omitempty"`
	RoomType      string     `json:"room_type"`
	RoomNumber    string     `json:"room_number"`
	CheckIn       string     `json:"check_in"`
	CheckOut      string     `json:"check_out"`
	Nights        int        `json:"nights"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	TotalCents    int64      `json:"total_price_cents"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromReservation(res *booking.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            res.ID(),
		BookerName:    res.BookerName(),
		BookerContact: res.BookerContact(),
		CatName:       res.CatName(),
		CatDetails:    res.CatDetails(),
		CustomerID:    res.CustomerID(),
		CatID:         res.CatID(),
		RoomType:      res.RoomType().String(),
		RoomNumber:    res.Assignment().String(),
		CheckIn:       res.Stay().CheckIn().String(),
		CheckOut:      res.Stay().CheckOut().String(),
		Nights:        res.Stay().Nights(),
		Notes:         res.Notes(),
		Status:        res.Status().String(),
		TotalCents:    res.TotalPrice().Cents(),
		CreatedAt:     res.CreatedAt(),
		UpdatedAt:     res.UpdatedAt(),
	}
}
