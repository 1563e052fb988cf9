package shared

import (
	"context"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/customer"
	"neko-hotel/internal/domain/history"
	"neko-hotel/internal/domain/rate"
	"neko-hotel/internal/domain/room"

	"github.com/google/uuid"
)

// UnitOfWork binds the repositories to either a transaction or the bare
// pool. Commands run inside Within so a reservation mutation and its
// history entry commit or roll back together; queries use Reads.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Reads() Tx
}

type Tx interface {
	Reservations() ReservationRepository
	History() HistoryRepository
	Customers() CustomerRepository
	Cats() CatRepository
	Rates() RateRepository
}

type ReservationRepository interface {
	ListAll(ctx context.Context) ([]*booking.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	Insert(ctx context.Context, res *booking.Reservation) error
	Update(ctx context.Context, res *booking.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HistoryRepository is append-only: entries are never updated or
// deleted once written.
type HistoryRepository interface {
	Append(ctx context.Context, entry *history.Entry) error
	ListRecent(ctx context.Context, limit int) ([]*history.Entry, error)
}

type CustomerRepository interface {
	List(ctx context.Context) ([]*customer.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	FindByEmail(ctx context.Context, email string) (*customer.Customer, error)
	Insert(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CatRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*customer.Cat, error)
	Insert(ctx context.Context, cat *customer.Cat) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RateRepository interface {
	All(ctx context.Context) ([]*rate.RoomRate, error)
	FindByType(ctx context.Context, t room.Type) (*rate.RoomRate, error)
	Update(ctx context.Context, r *rate.RoomRate) error
}
