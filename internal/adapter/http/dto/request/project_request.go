package request

import (
	"dealflow/internal/usecase"
)

type AssignFreelancerRequest struct {
	FreelancerID string `json:"freelancer_id" binding:"required"`
}

type MilestoneRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	DueDate     *Date   `json:"due_date"`
}

func (r MilestoneRequest) ToSpec() usecase.MilestoneSpec {
	return usecase.MilestoneSpec{
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
		StartDate:   r.StartDate.Time,
		EndDate:     r.EndDate.Time,
		DueDate:     r.DueDate.Ptr(),
	}
}

type DailyUpdateRequest struct {
	Date     *Date    `json:"date"`
	WorkDone string   `json:"work_done" binding:"required"`
	Photos   []string `json:"photos"`
}

func (r DailyUpdateRequest) ToCommand() usecase.DailyUpdateCommand {
	return usecase.DailyUpdateCommand{
		Date:     r.Date.Ptr(),
		WorkDone: r.WorkDone,
		Photos:   r.Photos,
	}
}

type ApproveDailyUpdateRequest struct {
	ApprovedProgress *int `json:"approved_progress" binding:"required,min=0,max=100"`
}
