//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"beautify-api/internal/handler/dto/request"
	"beautify-api/internal/handler/dto/response"
	"beautify-api/tests/common/authtest"
	"beautify-api/tests/common/dbtest"
	"beautify-api/tests/common/httptest"
	"beautify-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	slotsURL    = "/api/bookings/slots?date=%s"
	quotesURL   = "/api/quotes"
)

// a Monday, so the seeded weekday rules apply
const testDay = "2027-03-01"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) getSlots(date string) response.SlotsResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, date), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var slots response.SlotsResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
	return slots
}

func (s *BookingSuite) createBookingRequest(slotAt time.Time) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ServiceID:     dbtest.ServiceKnotlessID,
		SlotAt:        slotAt,
		Name:          "Wanjiru Kamau",
		Phone:         "0712345678",
		Email:         "wanjiru@example.com",
		PaymentOption: "deposit",
		PolicyAgreed:  true,
	}
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("booked slot disappears and comes back after cancellation", func() {
		t := s.T()

		slots := s.getSlots(testDay)
		require.Len(t, slots.Slots, 9, "Mon-Sat rule opens 09:00-18:00")
		slotAt := slots.Slots[0]

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.createBookingRequest(slotAt), "")

		var created response.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEmpty(t, created.BookingID)
		// seeded base cost 1500, doubled for the client, 30% deposit
		require.Equal(t, 3000, created.TotalKsh)
		require.Equal(t, 900, created.DepositKsh)
		require.Equal(t, 900, created.ChargeAmount)

		remaining := s.getSlots(testDay)
		require.Len(t, remaining.Slots, 8)
		for _, slot := range remaining.Slots {
			require.False(t, slot.Equal(slotAt), "booked slot should not be offered")
		}

		// second client races for the same slot
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.createBookingRequest(slotAt), "")
		httptest.AssertErrorMessage(t, w, http.StatusConflict, "Slot already booked")

		// the admin cancels, freeing the slot
		token := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Email)
		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			bookingsURL+"/"+created.BookingID.String()+"/status",
			request.UpdateBookingStatusRequest{Status: "CANCELED"}, token)

		var canceled response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &canceled)
		require.Equal(t, "CANCELED", canceled.Status)

		reopened := s.getSlots(testDay)
		require.Len(t, reopened.Slots, 9)
	})

	s.Run("closed day has no slots", func() {
		t := s.T()

		// 2027-03-07 is a Sunday, seeded inactive
		slots := s.getSlots("2027-03-07")
		require.NotNil(t, slots.Slots)
		require.Empty(t, slots.Slots)
	})

	s.Run("admin listing requires authentication", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		token := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Email)

		slots := s.getSlots(testDay)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.createBookingRequest(slots.Slots[2]), "")
		var created response.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		var listed []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, created.BookingID, listed[0].ID)
		require.Equal(t, "Knotless Braids", listed[0].ServiceName)
		require.Equal(t, "AWAITING_PAYMENT", listed[0].Status)
	})

	s.Run("quote prices extras without persisting anything", func() {
		t := s.T()

		reqBody := request.QuoteRequest{
			ServiceID:        dbtest.ServiceKnotlessID,
			IsHomeService:    true,
			MaterialQuantity: 5,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, reqBody, "")

		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Equal(t, 3000+200+350, quote.TotalKsh)
		require.Len(t, quote.Breakdown.Items, 3)

		slots := s.getSlots(testDay)
		require.Len(t, slots.Slots, 9, "quoting must not occupy a slot")
	})

	s.Run("policy must be accepted", func() {
		t := s.T()

		slots := s.getSlots(testDay)
		reqBody := s.createBookingRequest(slots.Slots[0])
		reqBody.PolicyAgreed = false

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		httptest.AssertErrorMessage(t, w, http.StatusBadRequest, "policy")
	})
}
