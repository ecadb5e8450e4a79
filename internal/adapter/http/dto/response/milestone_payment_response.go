package response

import (
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"
)

type MilestonePaymentResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	MilestoneID string    `json:"milestone_id"`
	PaidBy      string    `json:"paid_by"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	GatewayPayloadRaw string                 `json:"gateway_payload_raw,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`
}

func FromMilestonePayment(p entities.MilestonePayment) MilestonePaymentResponse {
	return MilestonePaymentResponse{
		ID:                p.ID,
		ProjectID:         p.ProjectID,
		MilestoneID:       p.MilestoneID,
		PaidBy:            p.PaidBy,
		Amount:            p.Amount,
		Date:              p.Date,
		Status:            string(p.Status),
		GatewayPayloadRaw: string(p.GatewayPayloadRaw),
		GatewayPayload:    p.GatewayPayload,
	}
}

func FromMilestonePayments(ps []entities.MilestonePayment) []MilestonePaymentResponse {
	out := make([]MilestonePaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromMilestonePayment(p))
	}
	return out
}

type UploadTicketResponse struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Method      string    `json:"method"`
	ContentType string    `json:"content_type,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromUploadTicket(t usecase.UploadTicket) UploadTicketResponse {
	return UploadTicketResponse{
		Key:         t.Key,
		URL:         t.URL,
		Method:      "PUT",
		ContentType: t.ContentType,
		ExpiresAt:   t.ExpiresAt,
	}
}
