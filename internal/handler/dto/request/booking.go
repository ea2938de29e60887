package request

import (
	"strings"
	"time"

	"beautify-api/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID        uuid.UUID `json:"serviceId" binding:"required"`
	SlotAt           time.Time `json:"slotAt" binding:"required"`
	Name             string    `json:"name" binding:"required"`
	Phone            string    `json:"phone" binding:"required"`
	Email            string    `json:"email" binding:"required,email"`
	Notes            *string   `json:"notes,omitempty"`
	PaymentOption    string    `json:"paymentOption" binding:"required,oneof=deposit full"`
	PolicyAgreed     bool      `json:"policyAgreed"`
	IsHomeService    bool      `json:"isHomeService"`
	UseOwnMaterials  bool      `json:"useOwnMaterials"`
	MaterialQuantity int       `json:"materialQuantity" binding:"omitempty,min=0"`
	ExtraLength      bool      `json:"extraLength"`
	Package          *string   `json:"package,omitempty"`
	Size             *string   `json:"size,omitempty"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		ServiceID:        r.ServiceID,
		SlotAt:           r.SlotAt,
		Name:             strings.TrimSpace(r.Name),
		Phone:            strings.TrimSpace(r.Phone),
		Email:            strings.TrimSpace(r.Email),
		Notes:            trimPtr(r.Notes),
		PaymentOption:    r.PaymentOption,
		PolicyAgreed:     r.PolicyAgreed,
		IsHomeService:    r.IsHomeService,
		UseOwnMaterials:  r.UseOwnMaterials,
		MaterialQuantity: r.MaterialQuantity,
		ExtraLength:      r.ExtraLength,
		Package:          r.Package,
		Size:             r.Size,
	}
}

type QuoteRequest struct {
	ServiceID        uuid.UUID `json:"serviceId" binding:"required"`
	IsHomeService    bool      `json:"isHomeService"`
	UseOwnMaterials  bool      `json:"useOwnMaterials"`
	MaterialQuantity int       `json:"materialQuantity" binding:"omitempty,min=0"`
	ExtraLength      bool      `json:"extraLength"`
	Package          *string   `json:"package,omitempty"`
	Size             *string   `json:"size,omitempty"`
}

func (r QuoteRequest) ToParams() usecase.QuoteParams {
	return usecase.QuoteParams{
		ServiceID:        r.ServiceID,
		IsHomeService:    r.IsHomeService,
		UseOwnMaterials:  r.UseOwnMaterials,
		MaterialQuantity: r.MaterialQuantity,
		ExtraLength:      r.ExtraLength,
		Package:          r.Package,
		Size:             r.Size,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func trimPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
