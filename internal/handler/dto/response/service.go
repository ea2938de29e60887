package response

import (
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	BasePrice      int       `json:"basePrice"`
	EffectivePrice int       `json:"effectivePrice"`
	DurationMin    int       `json:"durationMin"`
	Category       string    `json:"category"`
	Active         bool      `json:"active"`
}

func FromServiceRM(rm *readmodel.ServiceRM) *ServiceResponse {
	return &ServiceResponse{
		ID:             rm.ID,
		Name:           rm.Name,
		Description:    rm.Description,
		BasePrice:      rm.BasePrice,
		EffectivePrice: rm.EffectivePrice,
		DurationMin:    rm.DurationMin,
		Category:       rm.Category,
		Active:         rm.Active,
	}
}

func FromServiceRMs(rms []*readmodel.ServiceRM) []*ServiceResponse {
	responses := make([]*ServiceResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromServiceRM(rm))
	}
	return responses
}
