package commands

import (
	"context"
	"strings"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/customer"
	"neko-hotel/internal/domain/history"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/infra"
	"neko-hotel/internal/pkg/clock"
	"neko-hotel/internal/pkg/errs"
	"neko-hotel/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoRoomToAssign = errs.New("no room of the requested type is free for these dates")

const onlineBookingTag = "(Booked Online)"

// OnlineBookingInput is a self-service booking request from the public
// site. Unlike staff requests it names no room: the first free one of
// the requested type is assigned automatically.
type OnlineBookingInput struct {
	FullName   string
	Email      string
	Phone      string
	CatName    string
	CatBreed   string
	CatDetails string
	RoomType   room.Type
	Stay       booking.StayWindow
	Notes      string
}

type PublicBookingCommands interface {
	CreateOnlineBooking(ctx context.Context, input OnlineBookingInput) (*booking.Reservation, error)
}

type publicBookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
	clock   clock.Clock
}

func NewPublicBookingUseCase(uow shared.UnitOfWork, factory *booking.Factory, clock clock.Clock) PublicBookingCommands {
	return &publicBookingUseCaseImpl{
		uow:     uow,
		factory: factory,
		clock:   clock,
	}
}

// CreateOnlineBooking runs the public flow in one transaction: find or
// create the customer record by email, register the cat under it, then
// admit the reservation through the same availability and conflict
// checks the staff flow uses. Room choice is first-free in registry
// order, so connecting pairs are only consumed when a pair was asked
// for.
func (u *publicBookingUseCaseImpl) CreateOnlineBooking(ctx context.Context, input OnlineBookingInput) (*booking.Reservation, error) {
	var created *booking.Reservation

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := u.findOrCreateCustomer(ctx, tx, input)
		if err != nil {
			return err
		}

		cat, err := customer.NewCat(owner.ID(), input.CatName, input.CatBreed, input.CatDetails)
		if err != nil {
			return err
		}
		if err := tx.Cats().Insert(ctx, cat); err != nil {
			return err
		}

		nightly, err := u.nightlyRate(ctx, tx, input.RoomType)
		if err != nil {
			return err
		}

		existing, err := tx.Reservations().ListAll(ctx)
		if err != nil {
			return err
		}

		free := booking.FreeAssignments(input.RoomType, input.Stay, existing, uuid.Nil)
		if len(free) == 0 {
			return ErrNoRoomToAssign
		}

		ownerID := owner.ID()
		catID := cat.ID()
		guest := booking.GuestDetails{
			BookerName:    input.FullName,
			BookerContact: contactLine(input.Email, input.Phone),
			CatName:       input.CatName,
			CatDetails:    input.CatDetails,
			CustomerID:    &ownerID,
			CatID:         &catID,
			Notes:         tagOnlineNotes(input.Notes),
		}

		candidate, err := u.factory.CreateReservation(guest, input.RoomType, free[0], input.Stay, nightly)
		if err != nil {
			return err
		}

		if err := booking.CheckStay(candidate, existing); err != nil {
			return err
		}

		if err := tx.Reservations().Insert(ctx, candidate); err != nil {
			return err
		}
		if err := tx.History().Append(ctx, history.NewCreatedEntry(candidate, u.clock.Now())); err != nil {
			return err
		}

		created = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (u *publicBookingUseCaseImpl) findOrCreateCustomer(ctx context.Context, tx shared.Tx, input OnlineBookingInput) (*customer.Customer, error) {
	existing, err := tx.Customers().FindByEmail(ctx, input.Email)
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	fresh, err := customer.NewCustomer(input.FullName, input.Email, input.Phone, u.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := tx.Customers().Insert(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (u *publicBookingUseCaseImpl) nightlyRate(ctx context.Context, tx shared.Tx, t room.Type) (booking.Money, error) {
	rr, err := tx.Rates().FindByType(ctx, t)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Money{}, errs.Mark(err, ErrRateNotFound)
		}
		return booking.Money{}, err
	}
	return rr.Nightly(), nil
}

func tagOnlineNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return onlineBookingTag
	}
	return notes + " " + onlineBookingTag
}

func contactLine(email, phone string) string {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	switch {
	case email != "" && phone != "":
		return email + " / " + phone
	case email != "":
		return email
	default:
		return phone
	}
}
