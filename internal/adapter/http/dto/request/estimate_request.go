package request

import (
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase"
)

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

type QuestionOptionRequest struct {
	Title        string  `json:"title"`
	Value        float64 `json:"value"`
	ValueSubType string  `json:"value_sub_type"`
}

// AnsweredQuestionRequest is one answered question as sent by the client.
// Any calculated amount sent by the client is ignored. A question without
// include_in_estimate counts toward the price.
type AnsweredQuestionRequest struct {
	QuestionID        string                 `json:"question_id"`
	Title             string                 `json:"title"`
	Type              string                 `json:"type" binding:"required"`
	AreaQuestion      bool                   `json:"area_question"`
	IncludeInEstimate *bool                  `json:"include_in_estimate"`
	AreaValue         float64                `json:"area_value"`
	SelectedOption    *QuestionOptionRequest `json:"selected_option"`
}

// SubmitEstimateRequest is the public service request form.
type SubmitEstimateRequest struct {
	Customer      CustomerRequest           `json:"customer"`
	TypeID        string                    `json:"type_id" binding:"required"`
	SubcategoryID string                    `json:"subcategory_id"`
	PackageID     string                    `json:"package_id"`
	Questions     []AnsweredQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

func (r SubmitEstimateRequest) ToCommand() usecase.SubmitEstimateCommand {
	questions := make([]entities.AnsweredQuestion, 0, len(r.Questions))
	for _, q := range r.Questions {
		aq := entities.AnsweredQuestion{
			QuestionID:        q.QuestionID,
			Title:             q.Title,
			Type:              q.Type,
			AreaQuestion:      q.AreaQuestion,
			IncludeInEstimate: q.IncludeInEstimate == nil || *q.IncludeInEstimate,
			AreaValue:         q.AreaValue,
		}
		if q.SelectedOption != nil {
			aq.SelectedOption = &entities.QuestionOption{
				Title:        q.SelectedOption.Title,
				Value:        q.SelectedOption.Value,
				ValueSubType: q.SelectedOption.ValueSubType,
			}
		}
		questions = append(questions, aq)
	}
	return usecase.SubmitEstimateCommand{
		Customer: usecase.CustomerInput{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		TypeID:        r.TypeID,
		SubcategoryID: r.SubcategoryID,
		PackageID:     r.PackageID,
		Questions:     questions,
	}
}

type AssignSupervisorRequest struct {
	SupervisorID string `json:"supervisor_id" binding:"required"`
}

type SendToFreelancersRequest struct {
	FreelancerIDs []string `json:"freelancer_ids" binding:"required,min=1,dive,required"`
}

// QuotationRequest carries the money inputs of a quotation. Totals are always
// computed server side.
type QuotationRequest struct {
	Price           *float64 `json:"price"`
	DiscountPercent float64  `json:"discount_percent"`
	MarginType      string   `json:"margin_type"`
	MarginPercent   float64  `json:"margin_percent"`
	MarginAmount    float64  `json:"margin_amount"`
	EstimatedDays   int      `json:"estimated_days"`
	Notes           string   `json:"notes"`
	Attachments     []string `json:"attachments"`
}

func (r QuotationRequest) ToProposal() usecase.QuotationProposal {
	return usecase.QuotationProposal{
		Price:           r.Price,
		DiscountPercent: r.DiscountPercent,
		MarginType:      entities.MarginType(r.MarginType),
		MarginPercent:   r.MarginPercent,
		MarginAmount:    r.MarginAmount,
		EstimatedDays:   r.EstimatedDays,
		Notes:           r.Notes,
		Attachments:     r.Attachments,
	}
}

type FinalQuotationRequest struct {
	ChosenQuotationID string `json:"chosen_quotation_id" binding:"required"`
	QuotationRequest
}

func (r FinalQuotationRequest) ToCommand() usecase.FinalQuotationCommand {
	return usecase.FinalQuotationCommand{
		ChosenQuotationID: r.ChosenQuotationID,
		Proposal:          r.QuotationRequest.ToProposal(),
	}
}

type CustomerResponseRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
	Reason string `json:"reason"`
}

func (r CustomerResponseRequest) ToCommand() usecase.CustomerResponseCommand {
	return usecase.CustomerResponseCommand{
		Status: entities.CustomerResponseStatus(r.Status),
		Reason: r.Reason,
	}
}

// ReasonRequest is the optional body of cancel and reject routes.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

type ConvertToDealRequest struct {
	Title     string `json:"title"`
	StartDate *Date  `json:"start_date"`
	EndDate   *Date  `json:"end_date"`
}

func (r ConvertToDealRequest) ToCommand() usecase.ConvertToDealCommand {
	return usecase.ConvertToDealCommand{
		Title:     r.Title,
		StartDate: r.StartDate.Ptr(),
		EndDate:   r.EndDate.Ptr(),
	}
}
