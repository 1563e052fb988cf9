package response

import (
	"time"

	"neko-hotel/internal/domain/rate"
)

type RateResponse struct {
	RoomType     string    `json:"room_type"`
	NightlyCents int64     `json:"nightly_cents"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRate(r *rate.RoomRate) *RateResponse {
	return &RateResponse{
		RoomType:     r.RoomType().String(),
		NightlyCents: r.Nightly().Cents(),
		UpdatedAt:    r.UpdatedAt(),
	}
}
