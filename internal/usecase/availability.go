package usecase

import (
	"context"
	"errors"
	"time"

	"beautify-api/internal/domain/availability"
	"beautify-api/internal/infra"
	"beautify-api/internal/pkg/errs"
	"beautify-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidRule     = errors.New("invalid availability rule")
	ErrInvalidTimeOff  = errors.New("invalid time-off interval")
	ErrTimeOffNotFound = errors.New("time-off entry not found")
)

const dateLayout = "2006-01-02"

type AvailabilityRepository interface {
	FindRuleByWeekday(ctx context.Context, weekday int) (*readmodel.RuleRM, error)
	ListRules(ctx context.Context) ([]*readmodel.RuleRM, error)
	UpsertRule(ctx context.Context, rule *availability.Rule) (*readmodel.RuleRM, error)
	ListTimeOff(ctx context.Context) ([]*readmodel.TimeOffRM, error)
	ListTimeOffForDate(ctx context.Context, date time.Time) ([]*readmodel.TimeOffRM, error)
	CreateTimeOff(ctx context.Context, timeOff *availability.TimeOff) (*readmodel.TimeOffRM, error)
	DeleteTimeOff(ctx context.Context, id uuid.UUID) error
}

// SlotOccupancy is the narrow booking-store view the resolver needs: the
// instants on a date still held by non-canceled bookings.
type SlotOccupancy interface {
	ListOccupiedSlots(ctx context.Context, date time.Time) ([]time.Time, error)
}

type AvailabilityUseCase interface {
	GetSlots(ctx context.Context, dateStr string) ([]time.Time, error)
	ListRules(ctx context.Context) ([]*readmodel.RuleRM, error)
	UpsertRule(ctx context.Context, weekday int, startTime, endTime string, active bool) (*readmodel.RuleRM, error)
	ListTimeOff(ctx context.Context) ([]*readmodel.TimeOffRM, error)
	AddTimeOff(ctx context.Context, dateStr string, startTime, endTime *string, reason string) (*readmodel.TimeOffRM, error)
	RemoveTimeOff(ctx context.Context, id uuid.UUID) error
}

type availabilityUseCaseImpl struct {
	availabilityRepo AvailabilityRepository
	occupancy        SlotOccupancy
	location         *time.Location
}

func NewAvailabilityUseCase(
	availabilityRepo AvailabilityRepository,
	occupancy SlotOccupancy,
	location *time.Location,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		availabilityRepo: availabilityRepo,
		occupancy:        occupancy,
		location:         location,
	}
}

func (a *availabilityUseCaseImpl) GetSlots(ctx context.Context, dateStr string) ([]time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, a.location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	ruleRM, err := a.availabilityRepo.FindRuleByWeekday(ctx, int(date.Weekday()))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// No rule means closed, not an error.
			return []time.Time{}, nil
		}
		return nil, errs.Wrap(err, "failed to find availability rule")
	}

	rule, err := availability.NewRule(ruleRM.Weekday, ruleRM.StartTime, ruleRM.EndTime, ruleRM.Active)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRule)
	}

	timeOffRMs, err := a.availabilityRepo.ListTimeOffForDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list time-off")
	}
	timeOff, err := toTimeOffEntities(timeOffRMs, a.location)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeOff)
	}

	booked, err := a.occupancy.ListOccupiedSlots(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list occupied slots")
	}

	return availability.ResolveSlots(date, rule, timeOff, booked), nil
}

func (a *availabilityUseCaseImpl) ListRules(ctx context.Context) ([]*readmodel.RuleRM, error) {
	rules, err := a.availabilityRepo.ListRules(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list availability rules")
	}
	return rules, nil
}

func (a *availabilityUseCaseImpl) UpsertRule(ctx context.Context, weekday int, startTime, endTime string, active bool) (*readmodel.RuleRM, error) {
	rule, err := availability.NewRule(weekday, startTime, endTime, active)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRule)
	}

	ruleRM, err := a.availabilityRepo.UpsertRule(ctx, rule)
	if err != nil {
		return nil, errs.Wrap(err, "failed to upsert availability rule")
	}
	return ruleRM, nil
}

func (a *availabilityUseCaseImpl) ListTimeOff(ctx context.Context) ([]*readmodel.TimeOffRM, error) {
	list, err := a.availabilityRepo.ListTimeOff(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list time-off")
	}
	return list, nil
}

func (a *availabilityUseCaseImpl) AddTimeOff(ctx context.Context, dateStr string, startTime, endTime *string, reason string) (*readmodel.TimeOffRM, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, a.location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	timeOff, err := availability.NewTimeOff(uuid.New(), date, startTime, endTime, reason)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeOff)
	}

	timeOffRM, err := a.availabilityRepo.CreateTimeOff(ctx, timeOff)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create time-off")
	}
	return timeOffRM, nil
}

func (a *availabilityUseCaseImpl) RemoveTimeOff(ctx context.Context, id uuid.UUID) error {
	if err := a.availabilityRepo.DeleteTimeOff(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTimeOffNotFound
		}
		return errs.Wrap(err, "failed to delete time-off")
	}
	return nil
}

func toTimeOffEntities(rms []*readmodel.TimeOffRM, loc *time.Location) ([]*availability.TimeOff, error) {
	entities := make([]*availability.TimeOff, len(rms))
	for i, rm := range rms {
		entity, err := availability.NewTimeOff(rm.ID, rm.Date.In(loc), rm.StartTime, rm.EndTime, derefOrEmpty(rm.Reason))
		if err != nil {
			return nil, err
		}
		entities[i] = entity
	}
	return entities, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
