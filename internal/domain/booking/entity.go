package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrDepositExceedsTotal  = errors.New("deposit cannot exceed total")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidPaymentOption = errors.New("invalid payment option")
)

// Booking occupies exactly one slot instant while its status blocks the slot.
type Booking struct {
	id            uuid.UUID
	serviceID     uuid.UUID
	slotAt        time.Time
	client        Client
	notes         string
	paymentOption PaymentOption
	totalKsh      int
	depositKsh    int
	paidKsh       int
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(
	serviceID uuid.UUID,
	slotAt time.Time,
	client Client,
	notes string,
	option PaymentOption,
	totalKsh, depositKsh int,
) (*Booking, error) {
	if !option.IsValid() {
		return nil, ErrInvalidPaymentOption
	}
	if totalKsh < 0 || depositKsh < 0 {
		return nil, ErrNegativeAmount
	}
	if depositKsh > totalKsh {
		return nil, ErrDepositExceedsTotal
	}

	return &Booking{
		id:            uuid.New(),
		serviceID:     serviceID,
		slotAt:        slotAt,
		client:        client,
		notes:         notes,
		paymentOption: option,
		totalKsh:      totalKsh,
		depositKsh:    depositKsh,
		paidKsh:       0,
		status:        StatusAwaitingPayment,
	}, nil
}

func ReconstructBooking(
	id, serviceID uuid.UUID,
	slotAt time.Time,
	client Client,
	notes string,
	option PaymentOption,
	totalKsh, depositKsh, paidKsh int,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		serviceID:     serviceID,
		slotAt:        slotAt,
		client:        client,
		notes:         notes,
		paymentOption: option,
		totalKsh:      totalKsh,
		depositKsh:    depositKsh,
		paidKsh:       paidKsh,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ChargeAmount is what the client owes now: the deposit for the deposit
// option, the full total otherwise.
func (b *Booking) ChargeAmount() int {
	if b.paymentOption == OptionDeposit {
		return b.depositKsh
	}
	return b.totalKsh
}

func (b *Booking) Transition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// ConfirmPaid records a successful payment and confirms the booking.
func (b *Booking) ConfirmPaid(amountKsh int) error {
	if amountKsh < 0 {
		return ErrNegativeAmount
	}
	if err := b.Transition(StatusConfirmed); err != nil {
		return err
	}
	b.paidKsh = amountKsh
	return nil
}

func (b *Booking) IsCanceled() bool {
	return b.status == StatusCanceled
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ServiceID() uuid.UUID         { return b.serviceID }
func (b *Booking) SlotAt() time.Time            { return b.slotAt }
func (b *Booking) Client() Client               { return b.client }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) PaymentOption() PaymentOption { return b.paymentOption }
func (b *Booking) TotalKsh() int                { return b.totalKsh }
func (b *Booking) DepositKsh() int              { return b.depositKsh }
func (b *Booking) PaidKsh() int                 { return b.paidKsh }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
