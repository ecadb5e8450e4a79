package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// MilestonePayment records the customer paying an approved milestone.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (milestone_id-index): milestone_id
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the provider response body for audit.
//   - GatewayPayload is the parsed form, useful for querying/debugging.
type MilestonePayment struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	MilestoneID string        `json:"milestone_id"`
	PaidBy      string        `json:"paid_by"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	GatewayPayloadRaw json.RawMessage        `json:"gateway_payload_raw,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`
}
