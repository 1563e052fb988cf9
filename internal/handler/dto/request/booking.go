package request

import (
	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/usecase/commands"

	"github.com/google/uuid"
)

// ReservationRequest is the staff booking form: the room is chosen
// explicitly. The same shape serves create and update.
type ReservationRequest struct {
	BookerName    string     `json:"booker_name" binding:"required"`
	BookerContact string     `json:"booker_contact"`
	CatName       string     `json:"cat_name" binding:"required"`
	CatDetails    string     `json:"cat_details"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	CatID         *uuid.UUID `json:"cat_id,omitempty"`
	RoomType      string     `json:"room_type" binding:"required"`
	RoomNumber    string     `json:"room_number" binding:"required"`
	CheckIn       string     `json:"check_in" binding:"required"`
	CheckOut      string     `json:"check_out" binding:"required"`
	Notes         string     `json:"notes"`
}

// ToInput parses the wire fields into domain values. Anything that
// fails here never reaches a command.
func (r ReservationRequest) ToInput() (commands.ReservationInput, error) {
	roomType, err := room.ParseType(r.RoomType)
	if err != nil {
		return commands.ReservationInput{}, err
	}

	assignment, err := room.ParseAssignment(r.RoomNumber)
	if err != nil {
		return commands.ReservationInput{}, err
	}

	stay, err := parseStay(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.ReservationInput{}, err
	}

	return commands.ReservationInput{
		Guest: booking.GuestDetails{
			BookerName:    r.BookerName,
			BookerContact: r.BookerContact,
			CatName:       r.CatName,
			CatDetails:    r.CatDetails,
			CustomerID:    r.CustomerID,
			CatID:         r.CatID,
			Notes:         r.Notes,
		},
		RoomType:   roomType,
		Assignment: assignment,
		Stay:       stay,
	}, nil
}

func parseStay(checkIn, checkOut string) (booking.StayWindow, error) {
	in, err := booking.ParseDate(checkIn)
	if err != nil {
		return booking.StayWindow{}, err
	}
	out, err := booking.ParseDate(checkOut)
	if err != nil {
		return booking.StayWindow{}, err
	}
	return booking.NewStayWindow(in, out)
}
