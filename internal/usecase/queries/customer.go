package queries

import (
	"context"

	"neko-hotel/internal/domain/customer"
	"neko-hotel/internal/infra"
	"neko-hotel/internal/pkg/errs"
	"neko-hotel/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerQueries interface {
	ListCustomers(ctx context.Context) ([]CustomerView, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type customerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCustomerQueries(uow shared.UnitOfWork) CustomerQueries {
	return &customerQueriesImpl{uow: uow}
}

func (q *customerQueriesImpl) ListCustomers(ctx context.Context) ([]CustomerView, error) {
	customers, err := q.uow.Reads().Customers().List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, toCustomerView(c, nil))
	}
	return views, nil
}

// GetCustomer returns one customer with their cats attached.
func (q *customerQueriesImpl) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	reads := q.uow.Reads()

	c, err := reads.Customers().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCustomerNotFound)
		}
		return nil, err
	}

	cats, err := reads.Cats().ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	view := toCustomerView(c, cats)
	return &view, nil
}

func toCustomerView(c *customer.Customer, cats []*customer.Cat) CustomerView {
	view := CustomerView{
		ID:        c.ID(),
		FullName:  c.FullName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
	for _, cat := range cats {
		view.Cats = append(view.Cats, CatView{
			ID:      cat.ID(),
			OwnerID: cat.OwnerID(),
			Name:    cat.Name(),
			Breed:   cat.Breed(),
			Notes:   cat.Notes(),
		})
	}
	return view
}
