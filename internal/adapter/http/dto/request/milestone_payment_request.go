package request

import "encoding/json"

// MilestonePaymentRequest is the payload of the milestone payment route.
//
// `gateway_payload` is forwarded to the payment gateway as raw JSON to support
// varying Mercado Pago schemas. Its transaction_amount is always replaced by
// the milestone amount.
type MilestonePaymentRequest struct {
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}

type PresignUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}
