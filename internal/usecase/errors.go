package usecase

import (
	"errors"
	"fmt"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/usecase/interfaces"
)

var (
	ErrMissingActor      = domainerr.New(domainerr.ErrUnauthorized, "actor is required")
	ErrActionNotAllowed  = domainerr.New(domainerr.ErrForbidden, "role is not allowed to perform this action")
	ErrResourceForbidden = domainerr.New(domainerr.ErrForbidden, "actor has no access to this resource")
	ErrInvalidEstimateID = domainerr.New(domainerr.ErrBadRequest, "invalid estimate id")
	ErrInvalidProjectID  = domainerr.New(domainerr.ErrBadRequest, "invalid project id")
	ErrConcurrentUpdate  = domainerr.New(domainerr.ErrConflict, "resource was modified concurrently, retry with fresh data")

	ErrEstimateNotFound        = domainerr.New(domainerr.ErrNotFound, "estimate not found")
	ErrQuotationNotFound       = domainerr.New(domainerr.ErrNotFound, "quotation not found")
	ErrServiceTypeNotFound     = domainerr.New(domainerr.ErrNotFound, "service type not found")
	ErrInvalidTransition       = domainerr.New(domainerr.ErrBadRequest, "transition not allowed from the current estimate status")
	ErrNoValidFreelancers      = domainerr.New(domainerr.ErrBadRequest, "none of the given freelancers is active")
	ErrFreelancerNotInvited    = domainerr.New(domainerr.ErrForbidden, "freelancer was not asked to quote this estimate")
	ErrQuotationAlreadyExists  = domainerr.New(domainerr.ErrConflict, "freelancer already submitted a quotation for this estimate")
	ErrNotAssignedSupervisor   = domainerr.New(domainerr.ErrForbidden, "estimate is assigned to another supervisor")
	ErrFinalAlreadyApproved    = domainerr.New(domainerr.ErrConflict, "final quotation already approved")
	ErrMissingFinalQuotation   = domainerr.New(domainerr.ErrBadRequest, "estimate has no final quotation")
	ErrResponseNotAllowed      = domainerr.New(domainerr.ErrForbidden, "estimate is not awaiting a customer response")
	ErrNotEstimateCustomer     = domainerr.New(domainerr.ErrForbidden, "estimate belongs to another customer")
	ErrEstimateNotAccepted     = domainerr.New(domainerr.ErrBadRequest, "estimate has not been accepted by the customer")
	ErrDealAlreadyConverted    = domainerr.New(domainerr.ErrBadRequest, "estimate was already converted to a project")
	ErrProjectNotFound         = domainerr.New(domainerr.ErrNotFound, "project not found")
	ErrMilestoneNotFound       = domainerr.New(domainerr.ErrNotFound, "milestone not found")
	ErrDailyUpdateNotFound     = domainerr.New(domainerr.ErrNotFound, "daily update not found")
	ErrFreelancerNotFound      = domainerr.New(domainerr.ErrNotFound, "freelancer not found")
	ErrDailyUpdateNotPending   = domainerr.New(domainerr.ErrBadRequest, "daily update was already reviewed")
	ErrMilestoneClosed         = domainerr.New(domainerr.ErrBadRequest, "milestone no longer accepts changes")
	ErrProgressOutOfRange      = domainerr.New(domainerr.ErrBadRequest, "approved progress must be between 0 and 100")
	ErrNotAssignedFreelancer   = domainerr.New(domainerr.ErrForbidden, "project is assigned to another freelancer")
	ErrProgressIncomplete      = domainerr.New(domainerr.ErrBadRequest, "milestone progress must reach 100 before requesting release")
	ErrReleaseNotAllowed       = domainerr.New(domainerr.ErrBadRequest, "milestone status does not allow a release request")
	ErrReleaseNotRequested     = domainerr.New(domainerr.ErrBadRequest, "milestone release was not requested")
	ErrMilestoneNotCancellable = domainerr.New(domainerr.ErrBadRequest, "only pending or in progress milestones can be cancelled")

	ErrMilestoneNotApproved           = domainerr.New(domainerr.ErrBadRequest, "milestone is not approved for payment")
	ErrMilestoneAlreadyPaid           = domainerr.New(domainerr.ErrConflict, "milestone was already paid")
	ErrPaymentInProgress              = domainerr.New(domainerr.ErrConflict, "another payment for this milestone is in progress")
	ErrNotProjectCustomer             = domainerr.New(domainerr.ErrForbidden, "project belongs to another customer")
	ErrInvalidGatewayPayload          = domainerr.New(domainerr.ErrBadRequest, "invalid payment gateway payload")
	ErrPaymentGatewayBadRequest       = domainerr.New(domainerr.ErrBadRequest, "payment gateway bad request")
	ErrPaymentGatewayCustomerNotFound = domainerr.New(domainerr.ErrBadRequest, "payment gateway customer not found")
	ErrPaymentGatewayInvalidUsers     = domainerr.New(domainerr.ErrBadRequest, "payment gateway invalid users involved")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrObjectStorageNotConfigured     = errors.New("object storage not configured")
)

// storageError keeps lower layer failures out of the domain taxonomy, except
// optimistic lock failures which surface as Conflict.
func storageError(op string, err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) {
		return ErrConcurrentUpdate
	}
	return fmt.Errorf("%s: %w", op, err)
}
