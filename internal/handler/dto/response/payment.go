package response

import (
	"beautify-api/internal/usecase"
)

type MpesaInitResponse struct {
	MerchantRequestID string `json:"merchantRequestId"`
	CheckoutRequestID string `json:"checkoutRequestId"`
	CustomerMessage   string `json:"customerMessage"`
}

func FromSTKPushResult(result *usecase.STKPushResult) *MpesaInitResponse {
	return &MpesaInitResponse{
		MerchantRequestID: result.MerchantRequestID,
		CheckoutRequestID: result.CheckoutRequestID,
		CustomerMessage:   result.CustomerMessage,
	}
}
