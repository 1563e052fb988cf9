package repository

import (
	"context"
	"errors"
	"time"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/rate"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/infra"

	"github.com/jackc/pgx/v5"
)

const ratesTable = "room_rates"

type RateRepository struct {
	db DBTX
}

func NewRateRepository(db DBTX) *RateRepository {
	return &RateRepository{db: db}
}

func (r *RateRepository) All(ctx context.Context) ([]*rate.RoomRate, error) {
	query, args, err := qb.Select("room_type", "nightly_cents", "updated_at").
		From(ratesTable).
		OrderBy("room_type ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build rate list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rates", err)
	}
	defer rows.Close()

	var result []*rate.RoomRate
	for rows.Next() {
		rr, err := scanRate(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rate rows", err)
	}

	return result, nil
}

func (r *RateRepository) FindByType(ctx context.Context, t room.Type) (*rate.RoomRate, error) {
	query, args, err := qb.Select("room_type", "nightly_cents", "updated_at").
		From(ratesTable).
		Where("room_type = ?", t.String()).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build rate query", err)
	}

	rr, err := scanRate(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rate not found", err, infra.KindNotFound)
		}
		return nil, err
	}

	return rr, nil
}

func (r *RateRepository) Update(ctx context.Context, rr *rate.RoomRate) error {
	query, args, err := qb.Update(ratesTable).
		Set("nightly_cents", rr.Nightly().Cents()).
		Set("updated_at", rr.UpdatedAt()).
		Where("room_type = ?", rr.RoomType().String()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build rate update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update rate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rate not found", nil, infra.KindNotFound)
	}

	return nil
}

func scanRate(row pgx.Row) (*rate.RoomRate, error) {
	var (
		roomType  string
		cents     int64
		updatedAt time.Time
	)
	if err := row.Scan(&roomType, &cents, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan rate row", err)
	}

	t, err := room.ParseType(roomType)
	if err != nil {
		return nil, infra.WrapRepoErr("stored rate has unknown room type", err)
	}

	return rate.ReconstructRoomRate(t, booking.NewMoney(cents), updatedAt), nil
}
