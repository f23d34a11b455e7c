package request

import (
	"parkstay/internal/usecase/commands"
)

type CreateUnitRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Zone        string   `json:"zone" binding:"omitempty,max=100"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Status      string   `json:"status" binding:"omitempty,oneof=active maintenance"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
}

type UpdateUnitRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Zone        *string  `json:"zone" binding:"omitempty,max=100"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof=active maintenance"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
}

func (r *CreateUnitRequest) ToParams() commands.SaveUnitParams {
	p := commands.SaveUnitParams{
		Name:        &r.Name,
		Zone:        &r.Zone,
		Capacity:    r.Capacity,
		Price:       r.Price,
		Description: &r.Description,
	}
	if r.Status != "" {
		p.Status = &r.Status
	}
	return p
}

func (r *UpdateUnitRequest) ToParams(id string) commands.SaveUnitParams {
	return commands.SaveUnitParams{
		ID:          &id,
		Name:        r.Name,
		Zone:        r.Zone,
		Capacity:    r.Capacity,
		Price:       r.Price,
		Status:      r.Status,
		Description: r.Description,
	}
}
