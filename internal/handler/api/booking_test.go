//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"beautify-api/internal/domain/booking"
	"beautify-api/internal/domain/pricing"
	"beautify-api/internal/handler/api"
	resdto "beautify-api/internal/handler/dto/response"
	"beautify-api/internal/usecase"
	"beautify-api/internal/usecase/readmodel"
	"beautify-api/tests/common/builder"
	"beautify-api/tests/common/httptest"
	"beautify-api/tests/common/testutil"
	usecasemock "beautify-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("admin_email", "owner@example.com")
		c.Set("admin_role", "admin")
		c.Next()
	}

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.POST("/quotes", s.handler.QuotePrice)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PUT("/bookings/:id/status", authMiddleware, s.handler.UpdateBookingStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	expectedResult := &usecase.CreateBookingResult{
		BookingID:    uuid.New(),
		Total:        3000,
		Deposit:      900,
		ChargeAmount: 900,
		Breakdown: pricing.Breakdown{
			BasePrice: 3000,
			Total:     3000,
			Items:     []pricing.LineItem{{Name: "Base Price", Price: 3000}},
		},
	}

	s.Run("success: returns 201 Created with price summary", func() {
		s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.BookingID, response.BookingID)
		s.Equal(3000, response.TotalKsh)
		s.Equal(900, response.DepositKsh)
		s.Equal(900, response.ChargeAmount)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: serviceId", mutate: testutil.Field("serviceId", nil)},
			{name: "missing field: slotAt", mutate: testutil.Field("slotAt", nil)},
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: phone", mutate: testutil.Field("phone", nil)},
			{name: "missing field: email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "unknown payment option", mutate: testutil.Field("paymentOption", "installments")},
			{name: "negative material quantity", mutate: testutil.Field("materialQuantity", -3)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorMessage(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "policy not accepted",
				usecaseError:   usecase.ErrPolicyNotAccepted,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "policy",
			},
			{
				name:           "service not found",
				usecaseError:   usecase.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "slot already booked",
				usecaseError:   usecase.ErrSlotTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot already booked",
			},
			{
				name:           "invalid booking details",
				usecaseError:   usecase.ErrInvalidBookingInput,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid booking details",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorMessage(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestQuotePrice
// ================================================================================

func (s *BookingHandlerTestSuite) TestQuotePrice() {
	url := "/quotes"

	reqBody := map[string]any{
		"serviceId":        uuid.New().String(),
		"isHomeService":    true,
		"materialQuantity": 5,
	}
	expectedQuote := &usecase.Quote{
		Breakdown: pricing.Breakdown{
			BasePrice:      3000,
			HomeServiceFee: 200,
			MaterialsCost:  350,
			Total:          3550,
			Items: []pricing.LineItem{
				{Name: "Base Price", Price: 3000},
				{Name: "Home Service Fee", Price: 200},
				{Name: "Salon Materials (5 units)", Price: 350},
			},
		},
		Total:   3550,
		Deposit: 1065,
	}

	s.Run("success: returns 200 OK with breakdown", func() {
		s.mockUseCase.EXPECT().QuotePrice(gomock.Any(), gomock.Any()).
			Return(expectedQuote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3550, response.TotalKsh)
		s.Equal(1065, response.DepositKsh)
		s.Len(response.Breakdown.Items, 3)
	})

	s.Run("error: 404 when service is unknown", func() {
		s.mockUseCase.EXPECT().QuotePrice(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("error: 422 on invalid quote details", func() {
		s.mockUseCase.EXPECT().QuotePrice(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidBookingInput).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusUnprocessableEntity, "Invalid quote details")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	s.Run("success: returns 200 OK with bookings", func() {
		first := builder.NewBookingBuilder().BuildRM()
		second := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.ServiceName = "Gel Manicure" }).
			BuildRM()

		s.mockUseCase.EXPECT().ListBookings(gomock.Any()).
			Return([]*readmodel.BookingRM{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(first.ID, response[0].ID)
		s.Equal("Gel Manicure", response[1].ServiceName)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	rm := builder.NewBookingBuilder().BuildRM()
	url := "/bookings/" + rm.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), rm.ID).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rm.ID, response.ID)
		s.Equal(rm.ServiceName, response.ServiceName)
		s.Equal(booking.StatusAwaitingPayment.String(), response.Status)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 when booking does not exist", func() {
		s.mockUseCase.EXPECT().GetBooking(gomock.Any(), rm.ID).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestUpdateBookingStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	rm := builder.NewBookingBuilder().BuildRM()
	rm.Status = booking.StatusConfirmed.String()
	url := "/bookings/" + rm.ID.String() + "/status"

	s.Run("success: returns 200 OK with updated booking", func() {
		s.mockUseCase.EXPECT().UpdateBookingStatus(gomock.Any(), rm.ID, "CONFIRMED").
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "CONFIRMED"}, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(booking.StatusConfirmed.String(), response.Status)
	})

	s.Run("error: 400 on unknown status value", func() {
		s.mockUseCase.EXPECT().UpdateBookingStatus(gomock.Any(), rm.ID, "ARCHIVED").
			Return(nil, usecase.ErrInvalidStatusValue).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "ARCHIVED"}, "bearer-token")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusBadRequest, "Invalid booking status")
	})

	s.Run("error: 422 on forbidden transition", func() {
		s.mockUseCase.EXPECT().UpdateBookingStatus(gomock.Any(), rm.ID, "CONFIRMED").
			Return(nil, usecase.ErrStatusTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "CONFIRMED"}, "bearer-token")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusUnprocessableEntity, "Status transition not allowed")
	})

	s.Run("error: 404 when booking does not exist", func() {
		s.mockUseCase.EXPECT().UpdateBookingStatus(gomock.Any(), rm.ID, "CANCELED").
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "CANCELED"}, "bearer-token")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "CANCELED"}, "")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
