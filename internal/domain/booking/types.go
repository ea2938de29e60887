package booking

type Status string

const (
	StatusAwaitingPayment Status = "AWAITING_PAYMENT"
	StatusPending         Status = "PENDING"
	StatusConfirmed       Status = "CONFIRMED"
	StatusCanceled        Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAwaitingPayment, StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCanceled
}

// BlocksSlot reports whether a booking in this status keeps its instant out
// of the available sequence. Canceled bookings free their slot.
func (s Status) BlocksSlot() bool {
	return s != StatusCanceled
}

// CanTransitionTo encodes the status machine:
// AWAITING_PAYMENT → CONFIRMED | CANCELED, PENDING → CONFIRMED | CANCELED.
// CONFIRMED and CANCELED are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case StatusAwaitingPayment, StatusPending:
		return next == StatusConfirmed || next == StatusCanceled
	default:
		return false
	}
}

type PaymentOption string

const (
	OptionDeposit PaymentOption = "deposit"
	OptionFull    PaymentOption = "full"
)

func (o PaymentOption) String() string {
	return string(o)
}

func (o PaymentOption) IsValid() bool {
	return o == OptionDeposit || o == OptionFull
}
