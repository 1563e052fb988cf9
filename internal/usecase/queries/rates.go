package queries

import (
	"context"

	"neko-hotel/internal/usecase/shared"
)

type RateQueries interface {
	ListRates(ctx context.Context) ([]RateView, error)
}

type rateQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRateQueries(uow shared.UnitOfWork) RateQueries {
	return &rateQueriesImpl{uow: uow}
}

func (q *rateQueriesImpl) ListRates(ctx context.Context) ([]RateView, error) {
	rates, err := q.uow.Reads().Rates().All(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RateView, 0, len(rates))
	for _, r := range rates {
		views = append(views, RateView{
			RoomType:     r.RoomType().String(),
			NightlyCents: r.Nightly().Cents(),
			UpdatedAt:    r.UpdatedAt(),
		})
	}
	return views, nil
}
