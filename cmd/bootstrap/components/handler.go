package components

import (
	"time"

	"beautify-api/internal/handler"
	"beautify-api/internal/handler/api"
	"beautify-api/internal/handler/middleware"
	"beautify-api/internal/pkg/config"
	"beautify-api/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewServiceHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *api.AuthHandler {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return api.NewAuthHandler(authUseCase, tokenDuration)
}

func NewHandlers(
	auth *api.AuthHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	service *api.ServiceHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Availability: availability,
		Booking:      booking,
		Service:      service,
		Payment:      payment,
	}
}
