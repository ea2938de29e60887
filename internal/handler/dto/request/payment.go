package request

import (
	"math"
	"strconv"

	"beautify-api/internal/usecase"

	"github.com/google/uuid"
)

type InitiateMpesaRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
}

// MpesaCallbackRequest mirrors the envelope Daraja posts to the callback URL.
// Metadata items are name/value pairs; Value is a number for Amount and
// PhoneNumber, a string for MpesaReceiptNumber.
type MpesaCallbackRequest struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []MpesaCallbackItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type MpesaCallbackItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value,omitempty"`
}

func (r MpesaCallbackRequest) ToParams() usecase.MpesaCallbackParams {
	params := usecase.MpesaCallbackParams{
		ResultCode: r.Body.StkCallback.ResultCode,
		ResultDesc: r.Body.StkCallback.ResultDesc,
	}

	for _, item := range r.Body.StkCallback.CallbackMetadata.Item {
		switch item.Name {
		case "Amount":
			if v, ok := item.Value.(float64); ok {
				params.AmountKsh = int(math.Round(v))
			}
		case "MpesaReceiptNumber":
			if v, ok := item.Value.(string); ok {
				params.Receipt = v
			}
		case "PhoneNumber":
			switch v := item.Value.(type) {
			case float64:
				params.Phone = strconv.FormatInt(int64(v), 10)
			case string:
				params.Phone = v
			}
		}
	}
	return params
}
