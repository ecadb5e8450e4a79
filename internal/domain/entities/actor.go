package entities

import "strings"

// Role is the closed set of actor roles known to the engine.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleFreelancer Role = "freelancer"
	RoleSupervisor Role = "supervisor"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole maps a claim value onto a known role. Unknown values are rejected
// instead of being treated as a default role.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleFreelancer:
		return RoleFreelancer, true
	case RoleSupervisor:
		return RoleSupervisor, true
	case RoleSuperAdmin:
		return RoleSuperAdmin, true
	}
	return "", false
}

// Action names an engine operation for authorization purposes.
type Action string

const (
	ActionViewEstimate          Action = "estimate:view"
	ActionListQuotations        Action = "estimate:quotations"
	ActionAssignSupervisor      Action = "estimate:assign"
	ActionSendToFreelancers     Action = "estimate:send"
	ActionSubmitQuotation       Action = "estimate:quote"
	ActionCreateFinalQuotation  Action = "estimate:final"
	ActionApproveFinalQuotation Action = "estimate:approve"
	ActionCustomerResponse      Action = "estimate:respond"
	ActionCancelEstimate        Action = "estimate:cancel"
	ActionConvertToDeal         Action = "estimate:deal"
	ActionViewProject           Action = "project:view"
	ActionAssignFreelancer      Action = "project:assign"
	ActionAddMilestone          Action = "milestone:add"
	ActionAddDailyUpdate        Action = "milestone:daily"
	ActionReviewDailyUpdate     Action = "milestone:review"
	ActionRequestRelease        Action = "milestone:release"
	ActionApproveMilestone      Action = "milestone:approve"
	ActionCancelMilestone       Action = "milestone:cancel"
	ActionPayMilestone          Action = "milestone:pay"
	ActionViewPayments          Action = "milestone:payments"
	ActionPresignUpload         Action = "upload:presign"
)

// Can reports whether the role is allowed to perform the action. Adding a role
// requires a new case here.
func (r Role) Can(a Action) bool {
	switch r {
	case RoleCustomer:
		switch a {
		case ActionViewEstimate, ActionCustomerResponse, ActionViewProject,
			ActionPayMilestone, ActionViewPayments, ActionPresignUpload:
			return true
		}
		return false
	case RoleFreelancer:
		switch a {
		case ActionViewEstimate, ActionSubmitQuotation, ActionViewProject,
			ActionAddDailyUpdate, ActionRequestRelease, ActionViewPayments, ActionPresignUpload:
			return true
		}
		return false
	case RoleSupervisor:
		switch a {
		case ActionViewEstimate, ActionListQuotations, ActionSendToFreelancers,
			ActionCreateFinalQuotation, ActionConvertToDeal, ActionViewProject,
			ActionAssignFreelancer, ActionAddMilestone, ActionAddDailyUpdate,
			ActionReviewDailyUpdate, ActionApproveMilestone, ActionCancelMilestone,
			ActionViewPayments, ActionPresignUpload:
			return true
		}
		return false
	case RoleSuperAdmin:
		switch a {
		case ActionSubmitQuotation, ActionCustomerResponse, ActionRequestRelease,
			ActionPayMilestone, ActionAddDailyUpdate, ActionSendToFreelancers,
			ActionCreateFinalQuotation:
			return false
		}
		return true
	}
	return false
}

// Actor is the authenticated caller supplied by the identity provider.
type Actor struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Email string `json:"email,omitempty"`
}

func (a Actor) IsZero() bool {
	return strings.TrimSpace(a.ID) == ""
}
