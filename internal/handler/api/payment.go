package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "beautify-api/internal/handler/dto/request"
	resdto "beautify-api/internal/handler/dto/response"
	"beautify-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Initiate M-Pesa payment
// @Description Trigger an STK push for an awaiting-payment booking
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.InitiateMpesaRequest true "Payment request"
// @Success 200 {object} resdto.MpesaInitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/mpesa [post]
func (h *PaymentHandler) InitiateMpesa(c *gin.Context) {
	var req reqdto.InitiateMpesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentUseCase.InitiateMpesa(c.Request.Context(), req.BookingID, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrBookingNotPayable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not awaiting payment",
			})
		case errors.Is(err, usecase.ErrInvalidBookingInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		case errors.Is(err, usecase.ErrPaymentGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment request failed, try again",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSTKPushResult(result))
}

// MpesaCallback always acknowledges with 200 once the payload parses.
// Daraja retries on non-200 and a stale retry must not flip state again.
//
// @Summary M-Pesa result callback
// @Description Receive the async STK push result from Daraja
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.MpesaCallbackRequest true "Daraja callback"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /payments/mpesa/callback [post]
func (h *PaymentHandler) MpesaCallback(c *gin.Context) {
	var req reqdto.MpesaCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid callback format",
		})
		return
	}

	if err := h.paymentUseCase.HandleMpesaCallback(c.Request.Context(), req.ToParams()); err != nil {
		slog.Warn("mpesa callback processing failed",
			"checkout_request_id", req.Body.StkCallback.CheckoutRequestID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"ResultCode": "0", "ResultDesc": "Accepted"})
}
