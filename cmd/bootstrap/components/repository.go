package components

import (
	repo_impl "beautify-api/internal/infra/repository"
	"beautify-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewAvailabilityRepository,
		repo_impl.NewServiceRepository,
		repo_impl.NewPaymentRepository,
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
			fx.As(new(usecase.SlotOccupancy)),
		),
	),
)
