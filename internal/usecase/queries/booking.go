package queries

import (
	"context"

	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/infra"
	"neko-hotel/internal/pkg/errs"
	"neko-hotel/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type BookingQueries interface {
	ListReservations(ctx context.Context) ([]ReservationView, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) ListReservations(ctx context.Context) ([]ReservationView, error) {
	all, err := q.uow.Reads().Reservations().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ReservationView, 0, len(all))
	for _, res := range all {
		views = append(views, toReservationView(res))
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	res, err := q.uow.Reads().Reservations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}

	view := toReservationView(res)
	return &view, nil
}

func toReservationView(res *booking.Reservation) ReservationView {
	return ReservationView{
		ID:            res.ID(),
		BookerName:    res.BookerName(),
		BookerContact: res.BookerContact(),
		CatName:       res.CatName(),
		CatDetails:    res.CatDetails(),
		CustomerID:    res.CustomerID(),
		CatID:         res.CatID(),
		RoomType:      res.RoomType().String(),
		RoomNumber:    res.Assignment().String(),
		CheckIn:       res.Stay().CheckIn().String(),
		CheckOut:      res.Stay().CheckOut().String(),
		Nights:        res.Stay().Nights(),
		Notes:         res.Notes(),
		Status:        res.Status().String(),
		TotalCents:    res.TotalPrice().Cents(),
		CreatedAt:     res.CreatedAt(),
		UpdatedAt:     res.UpdatedAt(),
	}
}
