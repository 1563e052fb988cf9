package queries

import (
	"context"

	"neko-hotel/internal/usecase/shared"
)

const defaultHistoryLimit = 50

type HistoryQueries interface {
	RecentEntries(ctx context.Context, limit int) ([]HistoryEntryView, error)
}

type historyQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewHistoryQueries(uow shared.UnitOfWork) HistoryQueries {
	return &historyQueriesImpl{uow: uow}
}

func (q *historyQueriesImpl) RecentEntries(ctx context.Context, limit int) ([]HistoryEntryView, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := q.uow.Reads().History().ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	views := make([]HistoryEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, HistoryEntryView{
			ID:            e.ID(),
			Action:        string(e.Action()),
			ReservationID: e.ReservationID(),
			Timestamp:     e.Timestamp(),
			Details:       e.Details(),
		})
	}
	return views, nil
}
