package customer

import (
	"strings"
	"time"

	"neko-hotel/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errs.New("customer name is required")
	ErrEmptyCatName = errs.New("cat name is required")
)

// Customer is a cat owner on file. Routine CRUD; reservations reference
// customers by ID but the booking core never enforces the link.
type Customer struct {
	id        uuid.UUID
	fullName  string
	email     string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(fullName, email, phone string, now time.Time) (*Customer, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyName
	}
	return &Customer{
		id:        uuid.New(),
		fullName:  fullName,
		email:     strings.TrimSpace(email),
		phone:     strings.TrimSpace(phone),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, fullName, email, phone string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		fullName:  fullName,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Rename replaces the editable fields, keeping identity.
func (c *Customer) Rename(fullName, email, phone string, now time.Time) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrEmptyName
	}
	c.fullName = fullName
	c.email = strings.TrimSpace(email)
	c.phone = strings.TrimSpace(phone)
	c.updatedAt = now
	return nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// Cat is a guest on file, owned by a customer.
type Cat struct {
	id      uuid.UUID
	ownerID uuid.UUID
	name    string
	breed   string
	notes   string
}

func NewCat(ownerID uuid.UUID, name, breed, notes string) (*Cat, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCatName
	}
	return &Cat{
		id:      uuid.New(),
		ownerID: ownerID,
		name:    name,
		breed:   strings.TrimSpace(breed),
		notes:   strings.TrimSpace(notes),
	}, nil
}

func ReconstructCat(id, ownerID uuid.UUID, name, breed, notes string) *Cat {
	return &Cat{id: id, ownerID: ownerID, name: name, breed: breed, notes: notes}
}

func (c *Cat) ID() uuid.UUID      { return c.id }
func (c *Cat) OwnerID() uuid.UUID { return c.ownerID }
func (c *Cat) Name() string       { return c.name }
func (c *Cat) Breed() string      { return c.breed }
func (c *Cat) Notes() string      { return c.notes }
