package request

import (
	"beautify-api/internal/usecase"
)

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   int    `json:"basePrice" binding:"required,min=1"`
	DurationMin int    `json:"durationMin" binding:"required,min=1"`
	Category    string `json:"category"`
}

func (r CreateServiceRequest) ToParams() usecase.CreateServiceParams {
	return usecase.CreateServiceParams{
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		DurationMin: r.DurationMin,
		Category:    r.Category,
	}
}

type UpdateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BasePrice   int    `json:"basePrice" binding:"required,min=1"`
	DurationMin int    `json:"durationMin" binding:"required,min=1"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
}

func (r UpdateServiceRequest) ToParams() usecase.UpdateServiceParams {
	return usecase.UpdateServiceParams{
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		DurationMin: r.DurationMin,
		Category:    r.Category,
		Active:      r.Active,
	}
}
