package response

import (
	"time"

	"beautify-api/internal/domain/pricing"
	"beautify-api/internal/usecase"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ServiceID     uuid.UUID `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	SlotAt        time.Time `json:"slotAt"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Notes         *string   `json:"notes,omitempty"`
	PaymentOption string    `json:"paymentOption"`
	TotalKsh      int       `json:"totalKsh"`
	DepositKsh    int       `json:"depositKsh"`
	PaidKsh       int       `json:"paidKsh"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:            rm.ID,
		ServiceID:     rm.ServiceID,
		ServiceName:   rm.ServiceName,
		SlotAt:        rm.SlotAt,
		Name:          rm.Name,
		Phone:         rm.Phone,
		Email:         rm.Email,
		Notes:         rm.Notes,
		PaymentOption: rm.PaymentOption,
		TotalKsh:      rm.TotalKsh,
		DepositKsh:    rm.DepositKsh,
		PaidKsh:       rm.PaidKsh,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	responses := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromBookingRM(rm))
	}
	return responses
}

type CreateBookingResponse struct {
	BookingID    uuid.UUID         `json:"bookingId"`
	TotalKsh     int               `json:"totalKsh"`
	DepositKsh   int               `json:"depositKsh"`
	ChargeAmount int               `json:"chargeAmount"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
}

func FromCreateBookingResult(result *usecase.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:    result.BookingID,
		TotalKsh:     result.Total,
		DepositKsh:   result.Deposit,
		ChargeAmount: result.ChargeAmount,
		Breakdown:    result.Breakdown,
	}
}

type QuoteResponse struct {
	Breakdown  pricing.Breakdown `json:"breakdown"`
	TotalKsh   int               `json:"totalKsh"`
	DepositKsh int               `json:"depositKsh"`
}

func FromQuote(quote *usecase.Quote) *QuoteResponse {
	return &QuoteResponse{
		Breakdown:  quote.Breakdown,
		TotalKsh:   quote.Total,
		DepositKsh: quote.Deposit,
	}
}

type SlotsResponse struct {
	Date  string      `json:"date"`
	Slots []time.Time `json:"slots"`
}
