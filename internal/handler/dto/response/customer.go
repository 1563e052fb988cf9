package response

import (
	"time"

	"neko-hotel/internal/domain/customer"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CatResponse struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
	Breed   string    `json:"breed,omitempty"`
	Notes   string    `json:"notes,omitempty"`
}

func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID(),
		FullName:  c.FullName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func FromCat(c *customer.Cat) *CatResponse {
	return &CatResponse{
		ID:      c.ID(),
		OwnerID: c.OwnerID(),
		Name:    c.Name(),
		Breed:   c.Breed(),
		Notes:   c.Notes(),
	}
}
