package queries

import (
	"time"

	"neko-hotel/internal/domain/history"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
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

type CategoryCountView struct {
	Total     int `json:"total"`
	Booked    int `json:"booked"`
	Available int `json:"available"`
}

type DayAvailabilityView struct {
	Date     string            `json:"date"`
	Standard CategoryCountView `json:"standard"`
	Delux    CategoryCountView `json:"delux"`
	Suite    CategoryCountView `json:"suite"`
}

// DayDetailView is the per-day drill-down: the unit breakdown plus the
// reservations occupying that night.
type DayDetailView struct {
	Availability DayAvailabilityView `json:"availability"`
	Reservations []ReservationView   `json:"reservations"`
}

type CalendarDayView struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	State   string `json:"state"`
	Booked  int    `json:"booked"`
	Total   int    `json:"total"`
}

type CalendarMonthView struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  []CalendarDayView `json:"days"`
}

type RoomOptionView struct {
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
}

type HistoryEntryView struct {
	ID            uuid.UUID       `json:"id"`
	Action        string          `json:"action"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	Timestamp     time.Time       `json:"timestamp"`
	Details       history.Details `json:"details"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Cats      []CatView `json:"cats,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CatView struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
	Breed   string    `json:"breed,omitempty"`
	Notes   string    `json:"notes,omitempty"`
}

type RateView struct {
	RoomType     string    `json:"room_type"`
	NightlyCents int64     `json:"nightly_cents"`
	UpdatedAt    time.Time `json:"updated_at"`
}
