package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"beautify-api/internal/domain/booking"
	"beautify-api/internal/domain/pricing"
	"beautify-api/internal/infra"
	"beautify-api/internal/pkg/errs"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrServiceNotFound         = errors.New("service not found")
	ErrSlotTaken               = errors.New("slot already booked")
	ErrPolicyNotAccepted       = errors.New("booking policy must be accepted")
	ErrInvalidBookingInput     = errors.New("invalid booking input")
	ErrInvalidStatusValue      = errors.New("invalid booking status")
	ErrStatusTransition        = errors.New("status transition not allowed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	List(ctx context.Context) ([]*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error)
	Confirm(ctx context.Context, id uuid.UUID, paidKsh int) (*readmodel.BookingRM, error)
	ListOccupiedSlots(ctx context.Context, date time.Time) ([]time.Time, error)
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error)
	ListActive(ctx context.Context) ([]*readmodel.ServiceRM, error)
	Create(ctx context.Context, svc *readmodel.ServiceRM) (*readmodel.ServiceRM, error)
	Update(ctx context.Context, svc *readmodel.ServiceRM) (*readmodel.ServiceRM, error)
}

// Notifier is the external delivery collaborator. Failures are logged, never
// surfaced to the client: a booking stands whether or not the mail went out.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
	SendSMS(ctx context.Context, phone, message string) error
}

type CreateBookingParams struct {
	ServiceID        uuid.UUID
	SlotAt           time.Time
	Name             string
	Phone            string
	Email            string
	Notes            string
	PaymentOption    string
	PolicyAgreed     bool
	IsHomeService    bool
	UseOwnMaterials  bool
	MaterialQuantity int
	ExtraLength      bool
	Package          *string
	Size             *string
}

type CreateBookingResult struct {
	BookingID    uuid.UUID
	Total        int
	Deposit      int
	ChargeAmount int
	Breakdown    pricing.Breakdown
}

type QuoteParams struct {
	ServiceID        uuid.UUID
	IsHomeService    bool
	UseOwnMaterials  bool
	MaterialQuantity int
	ExtraLength      bool
	Package          *string
	Size             *string
}

type Quote struct {
	Breakdown pricing.Breakdown
	Total     int
	Deposit   int
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	QuotePrice(ctx context.Context, params QuoteParams) (*Quote, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	ListBookings(ctx context.Context) ([]*readmodel.BookingRM, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	calculator  *pricing.Calculator
	tiers       *pricing.TierTable
	notifier    Notifier
	ownerEmail  string
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	calculator *pricing.Calculator,
	tiers *pricing.TierTable,
	notifier Notifier,
	ownerEmail string,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		calculator:  calculator,
		tiers:       tiers,
		notifier:    notifier,
		ownerEmail:  ownerEmail,
	}
}

func (b *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	if !params.PolicyAgreed {
		return nil, ErrPolicyNotAccepted
	}

	option := booking.PaymentOption(params.PaymentOption)
	if !option.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidPaymentOption, ErrInvalidBookingInput)
	}

	svc, err := b.serviceRepo.FindByID(ctx, params.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}

	breakdown, err := b.computeBreakdown(svc, pricingSelections{
		IsHomeService:    params.IsHomeService,
		UseOwnMaterials:  params.UseOwnMaterials,
		MaterialQuantity: params.MaterialQuantity,
		ExtraLength:      params.ExtraLength,
		Package:          params.Package,
		Size:             params.Size,
	})
	if err != nil {
		return nil, err
	}

	total := breakdown.Total
	deposit := b.calculator.DepositAmount(total)

	client, err := booking.NewClient(params.Name, params.Phone, params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	entity, err := booking.NewBooking(params.ServiceID, params.SlotAt, client, params.Notes, option, total, deposit)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	bookingRM, err := b.bookingRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.notifyBookingStarted(ctx, bookingRM, entity.ChargeAmount())

	return &CreateBookingResult{
		BookingID:    bookingRM.ID,
		Total:        total,
		Deposit:      deposit,
		ChargeAmount: entity.ChargeAmount(),
		Breakdown:    breakdown,
	}, nil
}

func (b *bookingUseCaseImpl) QuotePrice(ctx context.Context, params QuoteParams) (*Quote, error) {
	svc, err := b.serviceRepo.FindByID(ctx, params.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}

	breakdown, err := b.computeBreakdown(svc, pricingSelections{
		IsHomeService:    params.IsHomeService,
		UseOwnMaterials:  params.UseOwnMaterials,
		MaterialQuantity: params.MaterialQuantity,
		ExtraLength:      params.ExtraLength,
		Package:          params.Package,
		Size:             params.Size,
	})
	if err != nil {
		return nil, err
	}

	return &Quote{
		Breakdown: breakdown,
		Total:     breakdown.Total,
		Deposit:   b.calculator.DepositAmount(breakdown.Total),
	}, nil
}

type pricingSelections struct {
	IsHomeService    bool
	UseOwnMaterials  bool
	MaterialQuantity int
	ExtraLength      bool
	Package          *string
	Size             *string
}

func (b *bookingUseCaseImpl) computeBreakdown(svc *readmodel.ServiceRM, sel pricingSelections) (pricing.Breakdown, error) {
	effective, err := b.calculator.EffectivePrice(svc.BasePrice)
	if err != nil {
		return pricing.Breakdown{}, errs.Mark(err, ErrInvalidBookingInput)
	}

	opts := pricing.Options{
		BasePrice:        effective,
		IsHomeService:    sel.IsHomeService,
		UseOwnMaterials:  sel.UseOwnMaterials,
		MaterialQuantity: sel.MaterialQuantity,
		ExtraLength:      sel.ExtraLength,
	}

	if sel.Package != nil && sel.Size != nil {
		tierPrice, err := b.tiers.BasePrice(*sel.Package, *sel.Size)
		if err != nil {
			return pricing.Breakdown{}, errs.Mark(err, ErrInvalidBookingInput)
		}
		opts.PackagePrice = &tierPrice
	}

	breakdown, err := b.calculator.Calculate(opts)
	if err != nil {
		return pricing.Breakdown{}, errs.Mark(err, ErrInvalidBookingInput)
	}
	return breakdown, nil
}

func (b *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	bookingRM, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return bookingRM, nil
}

func (b *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*readmodel.BookingRM, error) {
	bookings, err := b.bookingRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return bookings, nil
}

func (b *bookingUseCaseImpl) UpdateBookingStatus(ctx context.Context, id uuid.UUID, statusStr string) (*readmodel.BookingRM, error) {
	next := booking.Status(statusStr)
	if !next.IsValid() {
		return nil, ErrInvalidStatusValue
	}

	current, err := b.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status(current.Status).CanTransitionTo(next) {
		return nil, ErrStatusTransition
	}

	updated, err := b.bookingRepo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func (b *bookingUseCaseImpl) notifyBookingStarted(ctx context.Context, rm *readmodel.BookingRM, chargeAmount int) {
	when := rm.SlotAt.Format("Mon, 02 Jan 2006 15:04")
	subject := fmt.Sprintf("Beautify by Angel: Booking Initiated (%s)", rm.ServiceName)
	body := fmt.Sprintf(
		"Hi %s, thank you for booking %s on %s. Total: KSh %d. Complete the M-Pesa prompt to confirm.",
		rm.Name, rm.ServiceName, when, rm.TotalKsh,
	)

	if err := b.notifier.Send(ctx, rm.Email, subject, body); err != nil {
		slog.Warn("failed to send booking email", "booking_id", rm.ID, "error", err)
	}
	if err := b.notifier.Send(ctx, b.ownerEmail,
		fmt.Sprintf("New booking started: %s", rm.ServiceName),
		fmt.Sprintf("%s (%s) booked %s at %s. Charge now: KSh %d", rm.Name, rm.Phone, rm.ServiceName, when, chargeAmount),
	); err != nil {
		slog.Warn("failed to send owner email", "booking_id", rm.ID, "error", err)
	}
	if err := b.notifier.SendSMS(ctx, rm.Phone,
		fmt.Sprintf("Beautify by Angel: Booking started for %s on %s. Complete M-Pesa prompt to confirm.", rm.ServiceName, when),
	); err != nil {
		slog.Warn("failed to send booking SMS", "booking_id", rm.ID, "error", err)
	}
}
