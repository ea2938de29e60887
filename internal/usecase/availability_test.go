//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"beautify-api/internal/domain/availability"
	"beautify-api/internal/usecase"
	"beautify-api/internal/usecase/readmodel"
	usecasemock "beautify-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityUseCaseTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockAvailRepo *usecasemock.MockAvailabilityRepository
	mockOccupancy *usecasemock.MockSlotOccupancy
	useCase       usecase.AvailabilityUseCase
}

func (s *AvailabilityUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailRepo = usecasemock.NewMockAvailabilityRepository(s.mockCtrl)
	s.mockOccupancy = usecasemock.NewMockSlotOccupancy(s.mockCtrl)
	s.useCase = usecase.NewAvailabilityUseCase(s.mockAvailRepo, s.mockOccupancy, time.UTC)
}

func (s *AvailabilityUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityUseCaseTestSuite))
}

func (s *AvailabilityUseCaseTestSuite) TestUpsertRule() {
	ctx := context.Background()

	s.Run("persists a valid rule", func() {
		rm := &readmodel.RuleRM{Weekday: 1, StartTime: "09:00", EndTime: "18:00", Active: true}
		s.mockAvailRepo.EXPECT().UpsertRule(ctx, gomock.Any()).Return(rm, nil)

		result, err := s.useCase.UpsertRule(ctx, 1, "09:00", "18:00", true)
		s.Require().NoError(err)
		s.Equal(rm, result)
	})

	s.Run("out of range weekday maps to invalid rule", func() {
		_, err := s.useCase.UpsertRule(ctx, 7, "09:00", "18:00", true)
		s.ErrorIs(err, usecase.ErrInvalidRule)
		s.ErrorIs(err, availability.ErrInvalidWeekday)
	})

	s.Run("inverted window maps to invalid rule", func() {
		_, err := s.useCase.UpsertRule(ctx, 1, "18:00", "09:00", true)
		s.ErrorIs(err, usecase.ErrInvalidRule)
		s.ErrorIs(err, availability.ErrInvalidWindow)
	})

	s.Run("malformed time of day maps to invalid rule", func() {
		_, err := s.useCase.UpsertRule(ctx, 1, "9am", "18:00", true)
		s.ErrorIs(err, usecase.ErrInvalidRule)
		s.ErrorIs(err, availability.ErrInvalidTimeOfDay)
	})
}

func (s *AvailabilityUseCaseTestSuite) TestAddTimeOff() {
	ctx := context.Background()

	s.Run("persists a valid entry", func() {
		start := "12:00"
		end := "14:00"
		rm := &readmodel.TimeOffRM{Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), StartTime: &start, EndTime: &end}
		s.mockAvailRepo.EXPECT().CreateTimeOff(ctx, gomock.Any()).Return(rm, nil)

		result, err := s.useCase.AddTimeOff(ctx, "2026-03-05", &start, &end, "errand")
		s.Require().NoError(err)
		s.Equal(rm, result)
	})

	s.Run("lone start time maps to invalid time-off", func() {
		start := "12:00"
		_, err := s.useCase.AddTimeOff(ctx, "2026-03-05", &start, nil, "")
		s.ErrorIs(err, usecase.ErrInvalidTimeOff)
		s.ErrorIs(err, availability.ErrInvalidInterval)
	})

	s.Run("malformed date", func() {
		_, err := s.useCase.AddTimeOff(ctx, "05/03/2026", nil, nil, "")
		s.ErrorIs(err, usecase.ErrInvalidDate)
	})
}

func (s *AvailabilityUseCaseTestSuite) TestGetSlots() {
	ctx := context.Background()

	s.Run("malformed date", func() {
		_, err := s.useCase.GetSlots(ctx, "not-a-date")
		s.ErrorIs(err, usecase.ErrInvalidDate)
	})

	s.Run("corrupt stored rule maps to invalid rule", func() {
		rm := &readmodel.RuleRM{Weekday: 1, StartTime: "bad", EndTime: "18:00", Active: true}
		s.mockAvailRepo.EXPECT().FindRuleByWeekday(ctx, 1).Return(rm, nil)

		_, err := s.useCase.GetSlots(ctx, "2026-03-02")
		s.ErrorIs(err, usecase.ErrInvalidRule)
		s.ErrorIs(err, availability.ErrInvalidTimeOfDay)
	})
}
