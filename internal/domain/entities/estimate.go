package entities

import "time"

// EstimateStatus represents the lifecycle of a customer service request.
//
// Domain notes:
//   - Happy path: submitted -> assigned -> final_created -> superadmin_approved -> customer_accepted -> deal.
//   - customer_rejected and cancelled are absorbing off-ramps from superadmin_approved.
//   - Estimates are never deleted; the status is the only lifecycle marker.
type EstimateStatus string

const (
	EstimateStatusSubmitted          EstimateStatus = "submitted"
	EstimateStatusAssigned           EstimateStatus = "assigned"
	EstimateStatusFinalCreated       EstimateStatus = "final_created"
	EstimateStatusSuperAdminApproved EstimateStatus = "superadmin_approved"
	EstimateStatusCustomerAccepted   EstimateStatus = "customer_accepted"
	EstimateStatusCustomerRejected   EstimateStatus = "customer_rejected"
	EstimateStatusDeal               EstimateStatus = "deal"
	EstimateStatusCancelled          EstimateStatus = "cancelled"
)

// SupervisorProgress tracks supervisor-side sub-steps independently of Status.
type SupervisorProgress string

const (
	SupervisorProgressNone                  SupervisorProgress = "none"
	SupervisorProgressRequestSent           SupervisorProgress = "request_sent"
	SupervisorProgressRequestCompleted      SupervisorProgress = "request_completed"
	SupervisorProgressFinalQuotationCreated SupervisorProgress = "final_quotation_created"
)

// CustomerProgress tracks the customer-facing side independently of Status.
type CustomerProgress string

const (
	CustomerProgressNone              CustomerProgress = "none"
	CustomerProgressSentToCustomer    CustomerProgress = "sent_to_customer"
	CustomerProgressCustomerResponded CustomerProgress = "customer_responded"
	CustomerProgressDealCreated       CustomerProgress = "deal_created"
)

var estimateTransitions = map[EstimateStatus][]EstimateStatus{
	EstimateStatusSubmitted:          {EstimateStatusAssigned},
	EstimateStatusAssigned:           {EstimateStatusAssigned, EstimateStatusFinalCreated},
	EstimateStatusFinalCreated:       {EstimateStatusFinalCreated, EstimateStatusSuperAdminApproved},
	EstimateStatusSuperAdminApproved: {EstimateStatusCustomerAccepted, EstimateStatusCustomerRejected, EstimateStatusCancelled},
	EstimateStatusCustomerAccepted:   {EstimateStatusDeal},
}

// CanTransition reports whether from -> to is an edge of the estimate state diagram.
func CanTransition(from, to EstimateStatus) bool {
	for _, s := range estimateTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status change is possible.
func (s EstimateStatus) IsTerminal() bool {
	return len(estimateTransitions[s]) == 0
}

// Question types accepted in a service request.
const (
	QuestionTypeArea    = "area"
	QuestionTypeYesOrNo = "yesorno"
	QuestionTypeOptions = "options"
)

// Value sub types for priced options.
const (
	ValueSubTypeFlat    = "flat"
	ValueSubTypePerSqft = "persqft"
	ValueSubTypePerSqm  = "persqm"
)

// QuestionOption is one selectable answer of a priced question.
type QuestionOption struct {
	Title        string  `json:"title"`
	Value        float64 `json:"value"`
	ValueSubType string  `json:"value_sub_type,omitempty"`
}

// AnsweredQuestion is the audit snapshot of one answered question. CalculatedAmount
// is filled by the pricing calculator.
type AnsweredQuestion struct {
	QuestionID        string          `json:"question_id"`
	Title             string          `json:"title"`
	Type              string          `json:"type"`
	AreaQuestion      bool            `json:"area_question"`
	IncludeInEstimate bool            `json:"include_in_estimate"`
	AreaValue         float64         `json:"area_value,omitempty"`
	SelectedOption    *QuestionOption `json:"selected_option,omitempty"`
	CalculatedAmount  float64         `json:"calculated_amount"`
}

// FreelancerQuotationRef links a freelancer submission to an estimate.
type FreelancerQuotationRef struct {
	FreelancerID string    `json:"freelancer_id"`
	QuotationID  string    `json:"quotation_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// CustomerResponseStatus is the customer's verdict on the approved quotation.
type CustomerResponseStatus string

const (
	CustomerResponseAccepted CustomerResponseStatus = "accepted"
	CustomerResponseRejected CustomerResponseStatus = "rejected"
)

type CustomerResponse struct {
	Status      CustomerResponseStatus `json:"status"`
	Reason      string                 `json:"reason,omitempty"`
	RespondedAt time.Time              `json:"responded_at"`
}

// Estimate is one customer service request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic lock, incremented on every write
//
// Monetary representation:
//   - EstimatedAmount is the calculator output for the answered questions.
type Estimate struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	TypeID        string  `json:"type_id"`
	SubcategoryID string  `json:"subcategory_id,omitempty"`
	PackageID     string  `json:"package_id,omitempty"`
	AreaSqft      float64 `json:"area_sqft"`

	Questions       []AnsweredQuestion `json:"questions"`
	EstimatedAmount float64            `json:"estimated_amount"`

	Status             EstimateStatus     `json:"status"`
	SupervisorProgress SupervisorProgress `json:"supervisor_progress"`
	CustomerProgress   CustomerProgress   `json:"customer_progress"`

	AssignedSupervisor          string                   `json:"assigned_supervisor,omitempty"`
	SentToFreelancers           []string                 `json:"sent_to_freelancers,omitempty"`
	FreelancerQuotations        []FreelancerQuotationRef `json:"freelancer_quotations,omitempty"`
	FreelancerSelectedQuotation string                   `json:"freelancer_selected_quotation,omitempty"`
	FinalQuotation              string                   `json:"final_quotation,omitempty"`
	AdminFinalQuotation         string                   `json:"admin_final_quotation,omitempty"`
	CustomerResponse            *CustomerResponse        `json:"customer_response,omitempty"`
	CancellationReason          string                   `json:"cancellation_reason,omitempty"`
	ProjectReference            string                   `json:"project_reference,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WasSentTo reports whether the freelancer was asked to quote.
func (e Estimate) WasSentTo(freelancerID string) bool {
	for _, id := range e.SentToFreelancers {
		if id == freelancerID {
			return true
		}
	}
	return false
}

// HasQuotationFrom reports whether the freelancer already submitted a quotation.
func (e Estimate) HasQuotationFrom(freelancerID string) bool {
	for _, q := range e.FreelancerQuotations {
		if q.FreelancerID == freelancerID {
			return true
		}
	}
	return false
}

// AuthoritativeQuotation returns the quotation the customer accepted: the admin
// approved one when present, otherwise the supervisor final quotation.
func (e Estimate) AuthoritativeQuotation() string {
	if e.AdminFinalQuotation != "" {
		return e.AdminFinalQuotation
	}
	return e.FinalQuotation
}
