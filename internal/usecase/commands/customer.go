package commands

import (
	"context"

	"neko-hotel/internal/domain/customer"
	"neko-hotel/internal/infra"
	"neko-hotel/internal/pkg/clock"
	"neko-hotel/internal/pkg/errs"
	"neko-hotel/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrCatNotFound      = errs.New("cat not found")
	ErrDuplicateEmail   = errs.New("email already registered")
)

type CustomerInput struct {
	FullName string
	Email    string
	Phone    string
}

type CatInput struct {
	Name  string
	Breed string
	Notes string
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, input CustomerInput) (*customer.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, input CustomerInput) (*customer.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	AddCat(ctx context.Context, ownerID uuid.UUID, input CatInput) (*customer.Cat, error)
	RemoveCat(ctx context.Context, ownerID, catID uuid.UUID) error
}

type customerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerUseCase(uow shared.UnitOfWork, clock clock.Clock) CustomerCommands {
	return &customerUseCaseImpl{uow: uow, clock: clock}
}

func (u *customerUseCaseImpl) CreateCustomer(ctx context.Context, input CustomerInput) (*customer.Customer, error) {
	c, err := customer.NewCustomer(input.FullName, input.Email, input.Phone, u.clock.Now())
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Insert(ctx, c); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateEmail)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (u *customerUseCaseImpl) UpdateCustomer(ctx context.Context, id uuid.UUID, input CustomerInput) (*customer.Customer, error) {
	var updated *customer.Customer

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Customers().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCustomerNotFound)
			}
			return err
		}

		if err := c.Rename(input.FullName, input.Email, input.Phone, u.clock.Now()); err != nil {
			return err
		}

		if err := tx.Customers().Update(ctx, c); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateEmail)
			}
			return err
		}

		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (u *customerUseCaseImpl) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCustomerNotFound)
			}
			return err
		}
		return nil
	})
}

func (u *customerUseCaseImpl) AddCat(ctx context.Context, ownerID uuid.UUID, input CatInput) (*customer.Cat, error) {
	var added *customer.Cat

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Customers().FindByID(ctx, ownerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCustomerNotFound)
			}
			return err
		}

		cat, err := customer.NewCat(ownerID, input.Name, input.Breed, input.Notes)
		if err != nil {
			return err
		}
		if err := tx.Cats().Insert(ctx, cat); err != nil {
			return err
		}

		added = cat
		return nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

func (u *customerUseCaseImpl) RemoveCat(ctx context.Context, ownerID, catID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cats, err := tx.Cats().ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}

		for _, cat := range cats {
			if cat.ID() == catID {
				return tx.Cats().Delete(ctx, catID)
			}
		}
		return ErrCatNotFound
	})
}
