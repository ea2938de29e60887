package components

import (
	"beautify-api/internal/domain/pricing"
	"beautify-api/internal/infra/mpesa"
	"beautify-api/internal/infra/notify"
	"beautify-api/internal/pkg/clock"
	"beautify-api/internal/pkg/config"
	"beautify-api/internal/pkg/jwt"
	"beautify-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseGatewaysModule,
	usecaseImplsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPriceCalculator,
	pricing.DefaultTierTable,
)

var usecaseGatewaysModule = fx.Module("usecase/gateways",
	fx.Provide(
		fx.Annotate(
			NewMpesaClient,
			fx.As(new(usecase.MpesaClient)),
		),
		fx.Annotate(
			NewNotifier,
			fx.As(new(usecase.Notifier)),
		),
	),
)

var usecaseImplsModule = fx.Module("usecase/impls",
	fx.Provide(
		fx.Annotate(
			NewAuthUseCase,
			fx.As(new(usecase.AuthUseCase)),
			fx.As(new(usecase.TokenValidator)),
		),
		usecase.NewAvailabilityUseCase,
		usecase.NewServiceUseCase,
		NewBookingUseCase,
		NewPaymentUseCase,
	),
)

func NewPriceCalculator(cfg config.Config) *pricing.Calculator {
	return pricing.NewCalculator(pricing.Config{
		Multiplier:          cfg.Pricing.Multiplier,
		DepositPercent:      cfg.Pricing.DepositPercent,
		HomeServiceFee:      cfg.Pricing.HomeServiceFee,
		MaterialCostPerUnit: cfg.Pricing.MaterialCostPerUnit,
		ExtraLengthFee:      cfg.Pricing.ExtraLengthFee,
	})
}

func NewMpesaClient(cfg config.Config, clk clock.Clock) *mpesa.Client {
	return mpesa.NewClient(cfg.Mpesa, clk)
}

func NewNotifier(cfg config.Config) *notify.Notifier {
	return notify.NewNotifier(cfg.SMTP)
}

func NewAuthUseCase(jwtService *jwt.Service, cfg config.Config) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(jwtService, cfg.Admin)
}

func NewBookingUseCase(
	bookingRepo usecase.BookingRepository,
	serviceRepo usecase.ServiceRepository,
	calculator *pricing.Calculator,
	tiers *pricing.TierTable,
	notifier usecase.Notifier,
	cfg config.Config,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(bookingRepo, serviceRepo, calculator, tiers, notifier, cfg.SMTP.OwnerEmail)
}

func NewPaymentUseCase(
	paymentRepo usecase.PaymentRepository,
	bookingRepo usecase.BookingRepository,
	mpesaClient usecase.MpesaClient,
	notifier usecase.Notifier,
	cfg config.Config,
) usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(paymentRepo, bookingRepo, mpesaClient, notifier, cfg.SMTP.OwnerEmail)
}
