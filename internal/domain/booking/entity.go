package booking

import (
	"strings"
	"time"

	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyBookerName  = errs.New("booker name is required")
	ErrEmptyCatName     = errs.New("cat name is required")
	ErrInvalidRoomType  = errs.New("invalid room type")
	ErrRoomTypeMismatch = errs.New("room assignment does not match room type")
)

// Reservation is one booking. The reservation list held by the store is
// the single source of truth for occupancy; availability and conflict
// checks are pure functions over a supplied collection of these.
type Reservation struct {
	id            uuid.UUID
	bookerName    string
	bookerContact string
	catName       string
	catDetails    string
	customerID    *uuid.UUID
	catID         *uuid.UUID
	roomType      room.Type
	assignment    room.Assignment
	stay          StayWindow
	notes         string
	status        Status
	totalPrice    Money
	createdAt     time.Time
	updatedAt     time.Time
}

// GuestDetails groups the free-form booker and cat fields of a request.
type GuestDetails struct {
	BookerName    string
	BookerContact string
	CatName       string
	CatDetails    string
	CustomerID    *uuid.UUID
	CatID         *uuid.UUID
	Notes         string
}

func newReservation(
	id uuid.UUID,
	guest GuestDetails,
	roomType room.Type,
	assignment room.Assignment,
	stay StayWindow,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	guest.BookerName = strings.TrimSpace(guest.BookerName)
	guest.CatName = strings.TrimSpace(guest.CatName)

	if guest.BookerName == "" {
		return nil, ErrEmptyBookerName
	}
	if guest.CatName == "" {
		return nil, ErrEmptyCatName
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if !assignment.MatchesType(roomType) {
		return nil, ErrRoomTypeMismatch
	}

	return &Reservation{
		id:            id,
		bookerName:    guest.BookerName,
		bookerContact: strings.TrimSpace(guest.BookerContact),
		catName:       guest.CatName,
		catDetails:    strings.TrimSpace(guest.CatDetails),
		customerID:    guest.CustomerID,
		catID:         guest.CatID,
		roomType:      roomType,
		assignment:    assignment,
		stay:          stay,
		notes:         strings.TrimSpace(guest.Notes),
		status:        StatusConfirmed,
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// ReconstructReservation rebuilds an entity from persisted state without
// re-running creation-time validation.
func ReconstructReservation(
	id uuid.UUID,
	guest GuestDetails,
	roomType room.Type,
	assignment room.Assignment,
	stay StayWindow,
	status Status,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		bookerName:    guest.BookerName,
		bookerContact: guest.BookerContact,
		catName:       guest.CatName,
		catDetails:    guest.CatDetails,
		customerID:    guest.CustomerID,
		catID:         guest.CatID,
		roomType:      roomType,
		assignment:    assignment,
		stay:          stay,
		notes:         guest.Notes,
		status:        status,
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) BookerName() string          { return r.bookerName }
func (r *Reservation) BookerContact() string       { return r.bookerContact }
func (r *Reservation) CatName() string             { return r.catName }
func (r *Reservation) CatDetails() string          { return r.catDetails }
func (r *Reservation) CustomerID() *uuid.UUID      { return r.customerID }
func (r *Reservation) CatID() *uuid.UUID           { return r.catID }
func (r *Reservation) RoomType() room.Type         { return r.roomType }
func (r *Reservation) Assignment() room.Assignment { return r.assignment }
func (r *Reservation) Stay() StayWindow            { return r.stay }
func (r *Reservation) Notes() string               { return r.notes }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) TotalPrice() Money           { return r.totalPrice }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
