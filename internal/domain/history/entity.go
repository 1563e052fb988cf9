package history

import (
	"time"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidAction = errs.New("invalid history action")

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionCreated, ActionUpdated, ActionDeleted:
		return true
	default:
		return false
	}
}

// Snapshot is the serializable image of a reservation at a point in
// time. History keeps snapshots rather than references because a deleted
// reservation survives only here.
type Snapshot struct {
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
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	TotalPrice    int64      `json:"total_price_cents"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func SnapshotOf(r *booking.Reservation) Snapshot {
	return Snapshot{
		ID:            r.ID(),
		BookerName:    r.BookerName(),
		BookerContact: r.BookerContact(),
		CatName:       r.CatName(),
		CatDetails:    r.CatDetails(),
		CustomerID:    r.CustomerID(),
		CatID:         r.CatID(),
		RoomType:      r.RoomType().String(),
		RoomNumber:    r.Assignment().String(),
		CheckIn:       r.Stay().CheckIn().String(),
		CheckOut:      r.Stay().CheckOut().String(),
		Notes:         r.Notes(),
		Status:        r.Status().String(),
		TotalPrice:    r.TotalPrice().Cents(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

// Details is the action-specific payload: created/deleted carry one
// snapshot, updated carries the pre- and post-mutation pair.
type Details struct {
	Snapshot *Snapshot `json:"snapshot,omitempty"`
	Before   *Snapshot `json:"before,omitempty"`
	After    *Snapshot `json:"after,omitempty"`
}

// Entry is an immutable audit record: produced exactly once per
// committed mutation, never edited or removed.
type Entry struct {
	id            uuid.UUID
	action        Action
	reservationID uuid.UUID
	timestamp     time.Time
	details       Details
}

func NewCreatedEntry(r *booking.Reservation, at time.Time) *Entry {
	snap := SnapshotOf(r)
	return &Entry{
		id:            uuid.New(),
		action:        ActionCreated,
		reservationID: r.ID(),
		timestamp:     at,
		details:       Details{Snapshot: &snap},
	}
}

func NewUpdatedEntry(before, after *booking.Reservation, at time.Time) *Entry {
	pre := SnapshotOf(before)
	post := SnapshotOf(after)
	return &Entry{
		id:            uuid.New(),
		action:        ActionUpdated,
		reservationID: after.ID(),
		timestamp:     at,
		details:       Details{Before: &pre, After: &post},
	}
}

func NewDeletedEntry(r *booking.Reservation, at time.Time) *Entry {
	snap := SnapshotOf(r)
	return &Entry{
		id:            uuid.New(),
		action:        ActionDeleted,
		reservationID: r.ID(),
		timestamp:     at,
		details:       Details{Snapshot: &snap},
	}
}

// ReconstructEntry rebuilds an entry from persisted state.
func ReconstructEntry(
	id uuid.UUID,
	action Action,
	reservationID uuid.UUID,
	timestamp time.Time,
	details Details,
) (*Entry, error) {
	if !action.IsValid() {
		return nil, ErrInvalidAction
	}
	return &Entry{
		id:            id,
		action:        action,
		reservationID: reservationID,
		timestamp:     timestamp,
		details:       details,
	}, nil
}

func (e *Entry) ID() uuid.UUID            { return e.id }
func (e *Entry) Action() Action           { return e.action }
func (e *Entry) ReservationID() uuid.UUID { return e.reservationID }
func (e *Entry) Timestamp() time.Time     { return e.timestamp }
func (e *Entry) Details() Details         { return e.details }
