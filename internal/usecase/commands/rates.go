package commands

import (
	"context"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/rate"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/infra"
	"neko-hotel/internal/pkg/clock"
	"neko-hotel/internal/pkg/errs"
	"neko-hotel/internal/usecase/shared"
)

type RateCommands interface {
	UpdateRate(ctx context.Context, t room.Type, nightlyCents int64) (*rate.RoomRate, error)
}

type rateUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRateUseCase(uow shared.UnitOfWork, clock clock.Clock) RateCommands {
	return &rateUseCaseImpl{uow: uow, clock: clock}
}

// UpdateRate changes the nightly price for one room type. Existing
// reservations keep the totals computed at booking time.
func (u *rateUseCaseImpl) UpdateRate(ctx context.Context, t room.Type, nightlyCents int64) (*rate.RoomRate, error) {
	rr, err := rate.NewRoomRate(t, booking.NewMoney(nightlyCents), u.clock.Now())
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rates().Update(ctx, rr); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRateNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rr, nil
}
