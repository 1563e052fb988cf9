package request

import (
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/usecase/commands"
)

// OnlineBookingRequest is the public booking form. No room number: the
// first free room of the requested type is assigned server-side.
type OnlineBookingRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	CatName    string `json:"cat_name" binding:"required"`
	CatBreed   string `json:"cat_breed"`
	CatDetails string `json:"cat_details"`
	RoomType   string `json:"room_type" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
	Notes      string `json:"notes"`
}

func (r OnlineBookingRequest) ToInput() (commands.OnlineBookingInput, error) {
	roomType, err := room.ParseType(r.RoomType)
	if err != nil {
		return commands.OnlineBookingInput{}, err
	}

	stay, err := parseStay(r.CheckIn, r.CheckOut)
	if err != nil {
		return commands.OnlineBookingInput{}, err
	}

	return commands.OnlineBookingInput{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		CatName:    r.CatName,
		CatBreed:   r.CatBreed,
		CatDetails: r.CatDetails,
		RoomType:   roomType,
		Stay:       stay,
		Notes:      r.Notes,
	}, nil
}
