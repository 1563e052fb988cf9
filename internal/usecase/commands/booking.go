package commands

import (
	"context"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/history"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/infra"
	"neko-hotel/internal/pkg/clock"
	"neko-hotel/internal/pkg/errs"
	"neko-hotel/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrRateNotFound        = errs.New("no rate configured for room type")
)

// ReservationInput carries a validated create/update request. Parsing
// and structural validation happen at the handler boundary; by the time
// a command sees these fields they are well-formed domain values.
type ReservationInput struct {
	Guest      booking.GuestDetails
	RoomType   room.Type
	Assignment room.Assignment
	Stay       booking.StayWindow
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, input ReservationInput) (*booking.Reservation, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, input ReservationInput) (*booking.Reservation, error)
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
	clock   clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, factory *booking.Factory, clock clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:     uow,
		factory: factory,
		clock:   clock,
	}
}

// CreateReservation runs the full admission sequence inside one
// transaction: build the candidate, check aggregate availability night
// by night, check the concrete room for overlap, then persist the
// reservation together with its history entry. Order matters: the
// cheapest check fails first, and nothing is written until every check
// has passed.
func (u *bookingUseCaseImpl) CreateReservation(ctx context.Context, input ReservationInput) (*booking.Reservation, error) {
	var created *booking.Reservation

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		nightly, err := u.nightlyRate(ctx, tx, input.RoomType)
		if err != nil {
			return err
		}

		candidate, err := u.factory.CreateReservation(input.Guest, input.RoomType, input.Assignment, input.Stay, nightly)
		if err != nil {
			return err
		}

		existing, err := tx.Reservations().ListAll(ctx)
		if err != nil {
			return err
		}

		if err := booking.CheckStay(candidate, existing); err != nil {
			return err
		}
		if !booking.AssignmentFree(input.Assignment, input.Stay, existing, uuid.Nil) {
			return booking.ErrRoomConflict
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

// UpdateReservation replaces every editable field of an existing
// reservation. The availability and conflict checks exclude the
// reservation itself, so shrinking or shifting a stay within its own
// footprint always succeeds.
func (u *bookingUseCaseImpl) UpdateReservation(ctx context.Context, id uuid.UUID, input ReservationInput) (*booking.Reservation, error) {
	var updated *booking.Reservation

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		before, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return err
		}

		nightly, err := u.nightlyRate(ctx, tx, input.RoomType)
		if err != nil {
			return err
		}

		amended, err := u.factory.AmendReservation(before, input.Guest, input.RoomType, input.Assignment, input.Stay, nightly)
		if err != nil {
			return err
		}

		existing, err := tx.Reservations().ListAll(ctx)
		if err != nil {
			return err
		}

		if err := booking.CheckStay(amended, existing); err != nil {
			return err
		}
		if !booking.AssignmentFree(input.Assignment, input.Stay, existing, id) {
			return booking.ErrRoomConflict
		}

		if err := tx.Reservations().Update(ctx, amended); err != nil {
			return err
		}
		if err := tx.History().Append(ctx, history.NewUpdatedEntry(before, amended, u.clock.Now())); err != nil {
			return err
		}

		updated = amended
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteReservation removes a reservation and records its final
// snapshot; after the commit the history entry is the only surviving
// image of the booking.
func (u *bookingUseCaseImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return err
		}

		if err := tx.Reservations().Delete(ctx, id); err != nil {
			return err
		}

		return tx.History().Append(ctx, history.NewDeletedEntry(res, u.clock.Now()))
	})
}

func (u *bookingUseCaseImpl) nightlyRate(ctx context.Context, tx shared.Tx, t room.Type) (booking.Money, error) {
	rr, err := tx.Rates().FindByType(ctx, t)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Money{}, errs.Mark(err, ErrRateNotFound)
		}
		return booking.Money{}, err
	}
	return rr.Nightly(), nil
}
