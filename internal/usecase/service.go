package usecase

import (
	"context"

	"beautify-api/internal/domain/pricing"
	domainservice "beautify-api/internal/domain/service"
	"beautify-api/internal/infra"
	"beautify-api/internal/pkg/errs"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CreateServiceParams struct {
	Name        string
	Description string
	BasePrice   int
	DurationMin int
	Category    string
}

type UpdateServiceParams struct {
	Name        string
	Description string
	BasePrice   int
	DurationMin int
	Category    string
	Active      bool
}

type ServiceUseCase interface {
	ListServices(ctx context.Context) ([]*readmodel.ServiceRM, error)
	CreateService(ctx context.Context, params CreateServiceParams) (*readmodel.ServiceRM, error)
	UpdateService(ctx context.Context, id uuid.UUID, params UpdateServiceParams) (*readmodel.ServiceRM, error)
}

type serviceUseCaseImpl struct {
	serviceRepo ServiceRepository
	calculator  *pricing.Calculator
}

func NewServiceUseCase(serviceRepo ServiceRepository, calculator *pricing.Calculator) ServiceUseCase {
	return &serviceUseCaseImpl{
		serviceRepo: serviceRepo,
		calculator:  calculator,
	}
}

func (s *serviceUseCaseImpl) ListServices(ctx context.Context) ([]*readmodel.ServiceRM, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}
	for _, svc := range services {
		if err := s.fillEffectivePrice(svc); err != nil {
			return nil, err
		}
	}
	return services, nil
}

func (s *serviceUseCaseImpl) CreateService(ctx context.Context, params CreateServiceParams) (*readmodel.ServiceRM, error) {
	entity, err := domainservice.NewService(
		uuid.New(), params.Name, params.Description, params.BasePrice, params.DurationMin, params.Category, true,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	created, err := s.serviceRepo.Create(ctx, serviceRM(entity))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := s.fillEffectivePrice(created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *serviceUseCaseImpl) UpdateService(ctx context.Context, id uuid.UUID, params UpdateServiceParams) (*readmodel.ServiceRM, error) {
	entity, err := domainservice.NewService(
		id, params.Name, params.Description, params.BasePrice, params.DurationMin, params.Category, params.Active,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	updated, err := s.serviceRepo.Update(ctx, serviceRM(entity))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := s.fillEffectivePrice(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *serviceUseCaseImpl) fillEffectivePrice(rm *readmodel.ServiceRM) error {
	effective, err := s.calculator.EffectivePrice(rm.BasePrice)
	if err != nil {
		return errs.Wrap(err, "failed to compute effective price")
	}
	rm.EffectivePrice = effective
	return nil
}

func serviceRM(entity *domainservice.Service) *readmodel.ServiceRM {
	return &readmodel.ServiceRM{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		BasePrice:   entity.BasePrice(),
		DurationMin: entity.DurationMin(),
		Category:    entity.Category(),
		Active:      entity.IsActive(),
	}
}
