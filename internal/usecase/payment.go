package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"beautify-api/internal/domain/booking"
	"beautify-api/internal/infra"
	"beautify-api/internal/pkg/errs"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrBookingNotPayable    = errors.New("booking is not awaiting payment")
	ErrPaymentGatewayFailed = errors.New("payment gateway request failed")
)

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
)

type PaymentRepository interface {
	Upsert(ctx context.Context, p *readmodel.PaymentRM) error
	FindPendingByPhoneAmount(ctx context.Context, phone string, amountKsh int) (*readmodel.PaymentRM, error)
	MarkSuccess(ctx context.Context, bookingID uuid.UUID, receipt string) error
	MarkFailed(ctx context.Context, bookingID uuid.UUID) error
}

// STKPushRequest carries the fields Daraja needs for a customer-initiated
// prompt. Amount is whole KSh, phone in 2547XXXXXXXX form.
type STKPushRequest struct {
	Phone            string
	AmountKsh        int
	AccountReference string
	Description      string
}

type STKPushResult struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResponseCode      string
	CustomerMessage   string
}

type MpesaClient interface {
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (*STKPushResult, error)
}

type MpesaCallbackParams struct {
	ResultCode int
	ResultDesc string
	AmountKsh  int
	Receipt    string
	Phone      string
}

type PaymentUseCase interface {
	InitiateMpesa(ctx context.Context, bookingID uuid.UUID, phone string) (*STKPushResult, error)
	HandleMpesaCallback(ctx context.Context, params MpesaCallbackParams) error
}

type paymentUseCaseImpl struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	mpesa       MpesaClient
	notifier    Notifier
	ownerEmail  string
}

func NewPaymentUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	mpesa MpesaClient,
	notifier Notifier,
	ownerEmail string,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		mpesa:       mpesa,
		notifier:    notifier,
		ownerEmail:  ownerEmail,
	}
}

// InitiateMpesa derives the charge amount from the stored booking rather than
// trusting the client, then fires an STK push and records a PENDING payment.
func (p *paymentUseCaseImpl) InitiateMpesa(ctx context.Context, bookingID uuid.UUID, phone string) (*STKPushResult, error) {
	rm, err := p.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if booking.Status(rm.Status) != booking.StatusAwaitingPayment {
		return nil, ErrBookingNotPayable
	}

	amount := rm.TotalKsh
	if booking.PaymentOption(rm.PaymentOption) == booking.OptionDeposit {
		amount = rm.DepositKsh
	}

	normalized, err := normalizeMpesaPhone(phone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	result, err := p.mpesa.InitiateSTKPush(ctx, STKPushRequest{
		Phone:            normalized,
		AmountKsh:        amount,
		AccountReference: shortRef(bookingID),
		Description:      "Beautify by Angel booking",
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}

	if err := p.paymentRepo.Upsert(ctx, &readmodel.PaymentRM{
		BookingID: bookingID,
		Method:    "mpesa",
		Status:    PaymentStatusPending,
		AmountKsh: amount,
		Phone:     normalized,
	}); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return result, nil
}

// HandleMpesaCallback matches the async Daraja result back to the pending
// payment by phone and amount, the only identifiers the callback carries
// that we also stored at initiation.
func (p *paymentUseCaseImpl) HandleMpesaCallback(ctx context.Context, params MpesaCallbackParams) error {
	normalized, err := normalizeMpesaPhone(params.Phone)
	if err != nil {
		return errs.Mark(err, ErrInvalidBookingInput)
	}

	payment, err := p.paymentRepo.FindPendingByPhoneAmount(ctx, normalized, params.AmountKsh)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPaymentNotFound
		}
		return errs.Wrap(err, "failed to find pending payment")
	}

	if params.ResultCode != 0 {
		if err := p.paymentRepo.MarkFailed(ctx, payment.BookingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		p.notifyPaymentFailed(ctx, payment, params.ResultDesc)
		return nil
	}

	if err := p.paymentRepo.MarkSuccess(ctx, payment.BookingID, params.Receipt); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	confirmed, err := p.bookingRepo.Confirm(ctx, payment.BookingID, params.AmountKsh)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	p.notifyPaymentConfirmed(ctx, confirmed, params.Receipt)
	return nil
}

func (p *paymentUseCaseImpl) notifyPaymentConfirmed(ctx context.Context, rm *readmodel.BookingRM, receipt string) {
	when := rm.SlotAt.Format("Mon, 02 Jan 2006 15:04")
	if err := p.notifier.Send(ctx, rm.Email,
		fmt.Sprintf("Beautify by Angel: Booking Confirmed (%s)", rm.ServiceName),
		fmt.Sprintf("Hi %s, your payment of KSh %d was received (receipt %s). See you on %s!", rm.Name, rm.PaidKsh, receipt, when),
	); err != nil {
		slog.Warn("failed to send confirmation email", "booking_id", rm.ID, "error", err)
	}
	if err := p.notifier.Send(ctx, p.ownerEmail,
		fmt.Sprintf("Booking confirmed: %s", rm.ServiceName),
		fmt.Sprintf("%s (%s) paid KSh %d for %s on %s. Receipt %s.", rm.Name, rm.Phone, rm.PaidKsh, rm.ServiceName, when, receipt),
	); err != nil {
		slog.Warn("failed to send owner confirmation email", "booking_id", rm.ID, "error", err)
	}
	if err := p.notifier.SendSMS(ctx, rm.Phone,
		fmt.Sprintf("Beautify by Angel: Payment received, booking confirmed for %s on %s.", rm.ServiceName, when),
	); err != nil {
		slog.Warn("failed to send confirmation SMS", "booking_id", rm.ID, "error", err)
	}
}

func (p *paymentUseCaseImpl) notifyPaymentFailed(ctx context.Context, payment *readmodel.PaymentRM, reason string) {
	if err := p.notifier.Send(ctx, p.ownerEmail,
		"M-Pesa payment failed",
		fmt.Sprintf("Payment of KSh %d from %s for booking %s failed: %s", payment.AmountKsh, payment.Phone, payment.BookingID, reason),
	); err != nil {
		slog.Warn("failed to send payment failure email", "booking_id", payment.BookingID, "error", err)
	}
}

// normalizeMpesaPhone rewrites Kenyan numbers to the 254XXXXXXXXX form the
// Daraja API requires. Accepts 07XX/01XX, +254 and bare 254 inputs.
func normalizeMpesaPhone(phone string) (string, error) {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		c := phone[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, c)
		} else if c != '+' && c != ' ' && c != '-' {
			return "", booking.ErrInvalidPhone
		}
	}
	s := string(digits)
	switch {
	case len(s) == 12 && s[:3] == "254":
		return s, nil
	case len(s) == 10 && s[0] == '0':
		return "254" + s[1:], nil
	case len(s) == 9:
		return "254" + s, nil
	default:
		return "", booking.ErrInvalidPhone
	}
}

func shortRef(id uuid.UUID) string {
	return "BK-" + id.String()[:8]
}
