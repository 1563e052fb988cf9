package repository

import (
	"context"
	"errors"
	"time"

	"neko-hotel/internal/domain/customer"
	"neko-hotel/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	customersTable = "customers"
	catsTable      = "cats"
)

var customerColumns = []string{"id", "full_name", "email", "phone", "created_at", "updated_at"}

type CustomerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	query, args, err := qb.Select(customerColumns...).
		From(customersTable).
		OrderBy("full_name ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customer rows", err)
	}

	return result, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query, args, err := qb.Select(customerColumns...).
		From(customersTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer query", err)
	}

	c, err := scanCustomer(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, err
	}

	return c, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	query, args, err := qb.Select(customerColumns...).
		From(customersTable).
		Where("lower(email) = lower(?)", email).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build customer query", err)
	}

	c, err := scanCustomer(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, err
	}

	return c, nil
}

func (r *CustomerRepository) Insert(ctx context.Context, c *customer.Customer) error {
	query, args, err := qb.Insert(customersTable).
		Columns(customerColumns...).
		Values(c.ID(), c.FullName(), c.Email(), c.Phone(), c.CreatedAt(), c.UpdatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build customer insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("customer email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert customer", err)
	}

	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query, args, err := qb.Update(customersTable).
		Set("full_name", c.FullName()).
		Set("email", c.Email()).
		Set("phone", c.Phone()).
		Set("updated_at", c.UpdatedAt()).
		Where("id = ?", c.ID()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build customer update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("customer email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Delete(customersTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build customer delete", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}

	return nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var (
		id        uuid.UUID
		fullName  string
		email     string
		phone     string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &fullName, &email, &phone, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan customer row", err)
	}
	return customer.ReconstructCustomer(id, fullName, email, phone, createdAt, updatedAt), nil
}

type CatRepository struct {
	db DBTX
}

func NewCatRepository(db DBTX) *CatRepository {
	return &CatRepository{db: db}
}

func (r *CatRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*customer.Cat, error) {
	query, args, err := qb.Select("id", "owner_id", "name", "breed", "notes").
		From(catsTable).
		Where("owner_id = ?", ownerID).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build cat list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cats", err)
	}
	defer rows.Close()

	var result []*customer.Cat
	for rows.Next() {
		var (
			id    uuid.UUID
			owner uuid.UUID
			name  string
			breed string
			notes string
		)
		if err := rows.Scan(&id, &owner, &name, &breed, &notes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cat row", err)
		}
		result = append(result, customer.ReconstructCat(id, owner, name, breed, notes))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cat rows", err)
	}

	return result, nil
}

func (r *CatRepository) Insert(ctx context.Context, cat *customer.Cat) error {
	query, args, err := qb.Insert(catsTable).
		Columns("id", "owner_id", "name", "breed", "notes").
		Values(cat.ID(), cat.OwnerID(), cat.Name(), cat.Breed(), cat.Notes()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build cat insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("cat owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert cat", err)
	}

	return nil
}

func (r *CatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Delete(catsTable).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build cat delete", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cat", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cat not found", nil, infra.KindNotFound)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
