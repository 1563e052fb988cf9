package request

import "neko-hotel/internal/usecase/commands"

type CustomerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
}

func (r CustomerRequest) ToInput() commands.CustomerInput {
	return commands.CustomerInput{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
	}
}

type CatRequest struct {
	Name  string `json:"name" binding:"required"`
	Breed string `json:"breed"`
	Notes string `json:"notes"`
}

func (r CatRequest) ToInput() commands.CatInput {
	return commands.CatInput{
		Name:  r.Name,
		Breed: r.Breed,
		Notes: r.Notes,
	}
}
