package repository

import (
	"context"
	"errors"
	"time"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationsTable = "reservations"

var reservationColumns = []string{
	"id", "booker_name", "booker_contact", "cat_name", "cat_details",
	"customer_id", "cat_id", "room_type", "room_number",
	"check_in", "check_out", "notes", "status", "total_price_cents",
	"created_at", "updated_at",
}

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]*booking.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*booking.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation query", err)
	}

	res, err := scanReservation(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, err
	}

	return res, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, res *booking.Reservation) error {
	query, args, err := qb.Insert(reservationsTable).
		Columns(reservationColumns...).
		Values(
			res.ID(), res.BookerName(), res.BookerContact(), res.CatName(), res.CatDetails(),
			res.CustomerID(), res.CatID(), res.RoomType().String(), res.Assignment().String(),
			res.Stay().CheckIn().Time(), res.Stay().CheckOut().Time(),
			res.Notes(), res.Status().String(), res.TotalPrice().Cents(),
			res.CreatedAt(), res.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}

	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *booking.Reservation) error {
	query, args, err := qb.Update(reservationsTable).
		Set("booker_name", res.BookerName()).
		Set("booker_contact", res.BookerContact()).
		Set("cat_name", res.CatName()).
		Set("cat_details", res.CatDetails()).
		Set("customer_id", res.CustomerID()).
		Set("cat_id", res.CatID()).
		Set("room_type", res.RoomType().String()).
		Set("room_number", res.Assignment().String()).
		Set("check_in", res.Stay().CheckIn().Time()).
		Set("check_out", res.Stay().CheckOut().Time()).
		Set("notes", res.Notes()).
		Set("status", res.Status().String()).
		Set("total_price_cents", res.TotalPrice().Cents()).
		Set("updated_at", res.UpdatedAt()).
		Where("id = ?", res.ID()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Delete(reservationsTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation delete", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
	var (
		id            uuid.UUID
		bookerName    string
		bookerContact string
		catName       string
		catDetails    string
		customerID    *uuid.UUID
		catID         *uuid.UUID
		roomType      string
		roomNumber    string
		checkIn       time.Time
		checkOut      time.Time
		notes         string
		status        string
		priceCents    int64
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := row.Scan(
		&id, &bookerName, &bookerContact, &catName, &catDetails,
		&customerID, &catID, &roomType, &roomNumber,
		&checkIn, &checkOut, &notes, &status, &priceCents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan reservation row", err)
	}

	rt, err := room.ParseType(roomType)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has unknown room type", err)
	}
	assignment, err := room.ParseAssignment(roomNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has malformed room number", err)
	}
	stay, err := booking.NewStayWindow(booking.DateOf(checkIn), booking.DateOf(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has malformed stay window", err)
	}

	return booking.ReconstructReservation(
		id,
		booking.GuestDetails{
			BookerName:    bookerName,
			BookerContact: bookerContact,
			CatName:       catName,
			CatDetails:    catDetails,
			CustomerID:    customerID,
			CatID:         catID,
			Notes:         notes,
		},
		rt,
		assignment,
		stay,
		booking.Status(status),
		booking.NewMoney(priceCents),
		createdAt,
		updatedAt,
	), nil
}
