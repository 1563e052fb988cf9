package repository

import (
	"context"
	"encoding/json"
	"time"

	"neko-hotel/internal/domain/history"
	"neko-hotel/internal/infra"

	"github.com/google/uuid"
)

const historyTable = "history"

type HistoryRepository struct {
	db DBTX
}

func NewHistoryRepository(db DBTX) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *history.Entry) error {
	details, err := json.Marshal(entry.Details())
	if err != nil {
		return infra.WrapRepoErr("failed to encode history details", err)
	}

	query, args, err := qb.Insert(historyTable).
		Columns("id", "action", "reservation_id", "timestamp", "details").
		Values(entry.ID(), string(entry.Action()), entry.ReservationID(), entry.Timestamp(), details).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build history insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to append history entry", err)
	}

	return nil
}

func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]*history.Entry, error) {
	query, args, err := qb.Select("id", "action", "reservation_id", "timestamp", "details").
		From(historyTable).
		OrderBy("timestamp DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build history query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list history", err)
	}
	defer rows.Close()

	var result []*history.Entry
	for rows.Next() {
		var (
			id            uuid.UUID
			action        string
			reservationID uuid.UUID
			timestamp     time.Time
			raw           []byte
		)
		if err := rows.Scan(&id, &action, &reservationID, &timestamp, &raw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}

		var details history.Details
		if err := json.Unmarshal(raw, &details); err != nil {
			return nil, infra.WrapRepoErr("stored history entry has malformed details", err)
		}

		entry, err := history.ReconstructEntry(id, history.Action(action), reservationID, timestamp, details)
		if err != nil {
			return nil, infra.WrapRepoErr("stored history entry has invalid action", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read history rows", err)
	}

	return result, nil
}
