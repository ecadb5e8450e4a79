package response

import (
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"
)

type DailyUpdateResponse struct {
	ID               string     `json:"id"`
	Date             time.Time  `json:"date"`
	WorkDone         string     `json:"work_done"`
	Photos           []string   `json:"photos"`
	PostedBy         string     `json:"posted_by"`
	ApprovalStatus   string     `json:"approval_status"`
	ApprovedProgress int        `json:"approved_progress"`
	ReviewedBy       string     `json:"reviewed_by,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at,omitempty"`
	RejectionReason  string     `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type MilestoneResponse struct {
	ID                 string                `json:"id"`
	Title              string                `json:"title"`
	Description        string                `json:"description,omitempty"`
	Amount             float64               `json:"amount"`
	StartDate          time.Time             `json:"start_date"`
	EndDate            time.Time             `json:"end_date"`
	DueDate            time.Time             `json:"due_date"`
	Progress           int                   `json:"progress"`
	Status             string                `json:"status"`
	DailyUpdates       []DailyUpdateResponse `json:"daily_updates"`
	ReleaseRequestedAt *time.Time            `json:"release_requested_at,omitempty"`
	ReleaseRequestedBy string                `json:"release_requested_by,omitempty"`
	ApprovedAt         *time.Time            `json:"approved_at,omitempty"`
	ApprovedBy         string                `json:"approved_by,omitempty"`
	CancelledAt        *time.Time            `json:"cancelled_at,omitempty"`
	CancellationReason string                `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
}

type ProjectResponse struct {
	ID                 string              `json:"id"`
	EstimateID         string              `json:"estimate_id"`
	QuotationID        string              `json:"quotation_id"`
	CustomerID         string              `json:"customer_id"`
	TypeID             string              `json:"type_id"`
	SubcategoryID      string              `json:"subcategory_id,omitempty"`
	PackageID          string              `json:"package_id,omitempty"`
	Title              string              `json:"title"`
	Budget             float64             `json:"budget"`
	StartDate          *time.Time          `json:"start_date,omitempty"`
	EndDate            *time.Time          `json:"end_date,omitempty"`
	AssignedSupervisor string              `json:"assigned_supervisor,omitempty"`
	AssignedFreelancer string              `json:"assigned_freelancer,omitempty"`
	OverallProgress    int                 `json:"overall_progress"`
	Milestones         []MilestoneResponse `json:"milestones"`
	Version            int64               `json:"version"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	milestones := make([]MilestoneResponse, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		milestones = append(milestones, FromMilestone(m))
	}
	return ProjectResponse{
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		QuotationID:        p.QuotationID,
		CustomerID:         p.CustomerID,
		TypeID:             p.TypeID,
		SubcategoryID:      p.SubcategoryID,
		PackageID:          p.PackageID,
		Title:              p.Title,
		Budget:             p.Budget,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		AssignedSupervisor: p.AssignedSupervisor,
		AssignedFreelancer: p.AssignedFreelancer,
		OverallProgress:    p.OverallProgress,
		Milestones:         milestones,
		Version:            p.Version,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromMilestone(m entities.Milestone) MilestoneResponse {
	updates := make([]DailyUpdateResponse, 0, len(m.DailyUpdates))
	for _, u := range m.DailyUpdates {
		photos := u.Photos
		if photos == nil {
			photos = []string{}
		}
		updates = append(updates, DailyUpdateResponse{
			ID:               u.ID,
			Date:             u.Date,
			WorkDone:         u.WorkDone,
			Photos:           photos,
			PostedBy:         u.PostedBy,
			ApprovalStatus:   string(u.ApprovalStatus),
			ApprovedProgress: u.ApprovedProgress,
			ReviewedBy:       u.ReviewedBy,
			ApprovedAt:       u.ApprovedAt,
			RejectedAt:       u.RejectedAt,
			RejectionReason:  u.RejectionReason,
			CreatedAt:        u.CreatedAt,
		})
	}
	return MilestoneResponse{
		ID:                 m.ID,
		Title:              m.Title,
		Description:        m.Description,
		Amount:             m.Amount,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		DueDate:            m.DueDate,
		Progress:           m.Progress,
		Status:             string(m.Status),
		DailyUpdates:       updates,
		ReleaseRequestedAt: m.ReleaseRequestedAt,
		ReleaseRequestedBy: m.ReleaseRequestedBy,
		ApprovedAt:         m.ApprovedAt,
		ApprovedBy:         m.ApprovedBy,
		CancelledAt:        m.CancelledAt,
		CancellationReason: m.CancellationReason,
		CreatedAt:          m.CreatedAt,
	}
}

// DealResponse is returned by deal conversion.
type DealResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Project  ProjectResponse  `json:"project"`
}

func FromDealResult(r usecase.DealResult) DealResponse {
	return DealResponse{Estimate: FromEstimate(r.Estimate), Project: FromProject(r.Project)}
}
