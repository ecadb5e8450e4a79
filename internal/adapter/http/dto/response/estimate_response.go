package response

import (
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"
)

type EstimateResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	TypeID        string  `json:"type_id"`
	SubcategoryID string  `json:"subcategory_id,omitempty"`
	PackageID     string  `json:"package_id,omitempty"`
	AreaSqft      float64 `json:"area_sqft"`

	Questions       []entities.AnsweredQuestion `json:"questions"`
	EstimatedAmount float64                     `json:"estimated_amount"`

	Status             string `json:"status"`
	SupervisorProgress string `json:"supervisor_progress"`
	CustomerProgress   string `json:"customer_progress"`

	AssignedSupervisor          string                            `json:"assigned_supervisor,omitempty"`
	SentToFreelancers           []string                          `json:"sent_to_freelancers"`
	FreelancerQuotations        []entities.FreelancerQuotationRef `json:"freelancer_quotations"`
	FreelancerSelectedQuotation string                            `json:"freelancer_selected_quotation,omitempty"`
	FinalQuotation              string                            `json:"final_quotation,omitempty"`
	AdminFinalQuotation         string                            `json:"admin_final_quotation,omitempty"`
	CustomerResponse            *entities.CustomerResponse        `json:"customer_response,omitempty"`
	CancellationReason          string                            `json:"cancellation_reason,omitempty"`
	ProjectReference            string                            `json:"project_reference,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	questions := e.Questions
	if questions == nil {
		questions = []entities.AnsweredQuestion{}
	}
	sent := e.SentToFreelancers
	if sent == nil {
		sent = []string{}
	}
	refs := e.FreelancerQuotations
	if refs == nil {
		refs = []entities.FreelancerQuotationRef{}
	}
	return EstimateResponse{
		ID:                          e.ID,
		CustomerID:                  e.CustomerID,
		TypeID:                      e.TypeID,
		SubcategoryID:               e.SubcategoryID,
		PackageID:                   e.PackageID,
		AreaSqft:                    e.AreaSqft,
		Questions:                   questions,
		EstimatedAmount:             e.EstimatedAmount,
		Status:                      string(e.Status),
		SupervisorProgress:          string(e.SupervisorProgress),
		CustomerProgress:            string(e.CustomerProgress),
		AssignedSupervisor:          e.AssignedSupervisor,
		SentToFreelancers:           sent,
		FreelancerQuotations:        refs,
		FreelancerSelectedQuotation: e.FreelancerSelectedQuotation,
		FinalQuotation:              e.FinalQuotation,
		AdminFinalQuotation:         e.AdminFinalQuotation,
		CustomerResponse:            e.CustomerResponse,
		CancellationReason:          e.CancellationReason,
		ProjectReference:            e.ProjectReference,
		Version:                     e.Version,
		CreatedAt:                   e.CreatedAt,
		UpdatedAt:                   e.UpdatedAt,
	}
}

// SubmitEstimateResponse is returned to the customer after submission.
type SubmitEstimateResponse struct {
	Estimate   EstimateResponse `json:"estimate"`
	FinalPrice float64          `json:"final_price"`
}

func FromSubmitResult(r usecase.SubmitEstimateResult) SubmitEstimateResponse {
	return SubmitEstimateResponse{Estimate: FromEstimate(r.Estimate), FinalPrice: r.FinalPrice}
}

type QuotationResponse struct {
	ID         string `json:"id"`
	EstimateID string `json:"estimate_id"`
	CreatedBy  string `json:"created_by"`
	Role       string `json:"role"`

	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	MarginType      string  `json:"margin_type,omitempty"`
	MarginPercent   float64 `json:"margin_percent"`
	MarginAmount    float64 `json:"margin_amount"`
	GrandTotal      float64 `json:"grand_total"`

	EstimatedDays int      `json:"estimated_days,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Attachments   []string `json:"attachments,omitempty"`

	SourceQuotationID      string `json:"source_quotation_id,omitempty"`
	IsFinal                bool   `json:"is_final"`
	IsSelectedBySupervisor bool   `json:"is_selected_by_supervisor"`
	SuperAdminApproved     bool   `json:"superadmin_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:                     q.ID,
		EstimateID:             q.EstimateID,
		CreatedBy:              q.CreatedBy,
		Role:                   string(q.Role),
		Price:                  q.Price,
		DiscountPercent:        q.DiscountPercent,
		DiscountAmount:         q.DiscountAmount,
		MarginType:             string(q.MarginType),
		MarginPercent:          q.MarginPercent,
		MarginAmount:           q.MarginAmount,
		GrandTotal:             q.GrandTotal,
		EstimatedDays:          q.EstimatedDays,
		Notes:                  q.Notes,
		Attachments:            q.Attachments,
		SourceQuotationID:      q.SourceQuotationID,
		IsFinal:                q.IsFinal,
		IsSelectedBySupervisor: q.IsSelectedBySupervisor,
		SuperAdminApproved:     q.SuperAdminApproved,
		CreatedAt:              q.CreatedAt,
		UpdatedAt:              q.UpdatedAt,
	}
}

func FromQuotations(qs []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuotation(q))
	}
	return out
}

// QuotationResultResponse pairs a new quotation with the estimate it changed.
type QuotationResultResponse struct {
	Estimate  EstimateResponse  `json:"estimate"`
	Quotation QuotationResponse `json:"quotation"`
}

func FromQuotationResult(r usecase.QuotationResult) QuotationResultResponse {
	return QuotationResultResponse{Estimate: FromEstimate(r.Estimate), Quotation: FromQuotation(r.Quotation)}
}
