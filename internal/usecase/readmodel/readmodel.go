package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side): flat rows joined for presentation,
// produced by the repositories and returned to handlers unchanged.

type BookingRM struct {
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

type ServiceRM struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	BasePrice      int       `json:"basePrice"`
	EffectivePrice int       `json:"effectivePrice"`
	DurationMin    int       `json:"durationMin"`
	Category       string    `json:"category"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type RuleRM struct {
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TimeOffRM struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type PaymentRM struct {
	BookingID uuid.UUID `json:"bookingId"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	AmountKsh int       `json:"amountKsh"`
	Phone     string    `json:"phone"`
	Receipt   *string   `json:"receipt,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
