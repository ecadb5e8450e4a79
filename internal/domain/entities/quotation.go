package entities

import "time"

// QuotationRole determines which derived-total rule produced the quotation.
type QuotationRole string

const (
	QuotationRoleFreelancer QuotationRole = "freelancer"
	QuotationRoleSupervisor QuotationRole = "supervisor"
	QuotationRoleAdmin      QuotationRole = "admin"
)

// MarginType selects how MarginAmount is derived.
type MarginType string

const (
	MarginTypePercentage MarginType = "percentage"
	MarginTypeAmount     MarginType = "amount"
)

// Quotation is a priced proposal attached to an Estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// GrandTotal is always a pricing calculator output; client supplied totals are ignored.
type Quotation struct {
	ID         string        `json:"id"`
	EstimateID string        `json:"estimate_id"`
	CreatedBy  string        `json:"created_by"`
	Role       QuotationRole `json:"role"`

	Price           float64    `json:"price"`
	DiscountPercent float64    `json:"discount_percent"`
	DiscountAmount  float64    `json:"discount_amount"`
	MarginType      MarginType `json:"margin_type,omitempty"`
	MarginPercent   float64    `json:"margin_percent"`
	MarginAmount    float64    `json:"margin_amount"`
	GrandTotal      float64    `json:"grand_total"`

	EstimatedDays int      `json:"estimated_days,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Attachments   []string `json:"attachments,omitempty"`

	SourceQuotationID      string `json:"source_quotation_id,omitempty"`
	IsFinal                bool   `json:"is_final"`
	IsSelectedBySupervisor bool   `json:"is_selected_by_supervisor"`
	SuperAdminApproved     bool   `json:"superadmin_approved"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
