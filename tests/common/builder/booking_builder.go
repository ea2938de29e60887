//go:build unit || e2e

package builder

import (
	"time"

	dombooking "beautify-api/internal/domain/booking"
	reqdto "beautify-api/internal/handler/dto/request"
	"beautify-api/internal/usecase"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ServiceID     uuid.UUID
	ServiceName   string
	SlotAt        time.Time
	Name          string
	Phone         string
	Email         string
	Notes         string
	PaymentOption dombooking.PaymentOption
	TotalKsh      int
	DepositKsh    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ServiceID:     uuid.New(),
		ServiceName:   "Knotless Braids",
		SlotAt:        time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Name:          "Wanjiru Kamau",
		Phone:         "0712345678",
		Email:         "wanjiru@example.com",
		Notes:         "",
		PaymentOption: dombooking.OptionDeposit,
		TotalKsh:      3000,
		DepositKsh:    900,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildClient() (dombooking.Client, error) {
	return dombooking.NewClient(b.Name, b.Phone, b.Email)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	client, err := b.BuildClient()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ServiceID, b.SlotAt, client, b.Notes, b.PaymentOption, b.TotalKsh, b.DepositKsh)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:     b.ServiceID,
		SlotAt:        b.SlotAt,
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		PaymentOption: b.PaymentOption.String(),
		PolicyAgreed:  true,
	}
}

func (b *BookingBuilder) BuildCreateParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		ServiceID:     b.ServiceID,
		SlotAt:        b.SlotAt,
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		Notes:         b.Notes,
		PaymentOption: b.PaymentOption.String(),
		PolicyAgreed:  true,
	}
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:            uuid.New(),
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		SlotAt:        b.SlotAt,
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		PaymentOption: b.PaymentOption.String(),
		TotalKsh:      b.TotalKsh,
		DepositKsh:    b.DepositKsh,
		PaidKsh:       0,
		Status:        dombooking.StatusAwaitingPayment.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
