package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"
	"dealflow/internal/domain/pricing"
	"dealflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IEstimateUseCase exposes the estimate negotiation workflow.
//
// Lifecycle covered here:
//   - Submit => customer service request priced by the calculator
//   - AssignToSupervisor / SendToFreelancers => supervisor side
//   - SubmitQuotation => freelancer proposal
//   - CreateFinalQuotation / ApproveFinalQuotation => supervisor and admin pricing
//   - CustomerResponse / Cancel => customer verdict or admin off-ramp
type IEstimateUseCase interface {
	Submit(ctx context.Context, cmd SubmitEstimateCommand) (SubmitEstimateResult, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Estimate, error)
	ListQuotations(ctx context.Context, actor entities.Actor, id string) ([]entities.Quotation, error)
	AssignToSupervisor(ctx context.Context, actor entities.Actor, id, supervisorID string) (entities.Estimate, error)
	SendToFreelancers(ctx context.Context, actor entities.Actor, id string, freelancerIDs []string) (entities.Estimate, error)
	SubmitQuotation(ctx context.Context, actor entities.Actor, id string, proposal QuotationProposal) (QuotationResult, error)
	CreateFinalQuotation(ctx context.Context, actor entities.Actor, id string, cmd FinalQuotationCommand) (QuotationResult, error)
	ApproveFinalQuotation(ctx context.Context, actor entities.Actor, id string, proposal QuotationProposal) (QuotationResult, error)
	CustomerResponse(ctx context.Context, actor entities.Actor, id string, cmd CustomerResponseCommand) (entities.Estimate, error)
	Cancel(ctx context.Context, actor entities.Actor, id, reason string) (entities.Estimate, error)
}

// SubmitEstimateResult is returned to the customer after submission.
type SubmitEstimateResult struct {
	Estimate   entities.Estimate
	FinalPrice float64
}

// QuotationResult pairs a new quotation with the estimate it changed.
type QuotationResult struct {
	Estimate  entities.Estimate
	Quotation entities.Quotation
}

type EstimateUseCase struct {
	repo        interfaces.IEstimateRepository
	quotations  interfaces.IQuotationRepository
	customers   interfaces.ICustomerRepository
	freelancers interfaces.IFreelancerRepository
	catalog     interfaces.ICatalogRepository
	events      publisher
	logger      *zap.Logger
	now         func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	quotations interfaces.IQuotationRepository,
	customers interfaces.ICustomerRepository,
	freelancers interfaces.IFreelancerRepository,
	catalog interfaces.ICatalogRepository,
	notifier interfaces.INotifier,
	logger *zap.Logger,
) *EstimateUseCase {
	logger = nopIfNil(logger)
	return &EstimateUseCase{
		repo:        repo,
		quotations:  quotations,
		customers:   customers,
		freelancers: freelancers,
		catalog:     catalog,
		events:      publisher{notifier: notifier, logger: logger},
		logger:      logger,
		now:         systemClock,
	}
}

func (u *EstimateUseCase) Submit(ctx context.Context, cmd SubmitEstimateCommand) (SubmitEstimateResult, error) {
	verr := &domainerr.ValidationError{}
	if err := cmd.normalize(); err != nil {
		verr.Merge("", asValidation(err))
	}

	var st entities.ServiceType
	if cmd.TypeID != "" {
		var err error
		st, err = u.catalog.GetServiceType(ctx, cmd.TypeID)
		if err != nil {
			return SubmitEstimateResult{}, storageError("load service type", err)
		}
		switch {
		case st.ID == "" || !st.Active:
			verr.Addf("type_id", "unknown service type %q", cmd.TypeID)
		default:
			if cmd.SubcategoryID != "" && !st.HasSubcategory(cmd.SubcategoryID) {
				verr.Addf("subcategory_id", "unknown subcategory %q for this service type", cmd.SubcategoryID)
			}
			if cmd.PackageID != "" && !st.HasPackage(cmd.PackageID) {
				verr.Addf("package_id", "unknown package %q for this service type", cmd.PackageID)
			}
		}
	}

	totals, err := pricing.EstimateTotals(cmd.Questions, st.BaseEstimationValueUnit)
	if err != nil {
		verr.Merge("", asValidation(err))
	}
	if err := verr.Err(); err != nil {
		u.logger.Info("[estimate][usecase] submit rejected", zap.Int("invalid_fields", len(verr.Fields)))
		return SubmitEstimateResult{}, err
	}

	customer, err := u.resolveCustomer(ctx, cmd.Customer)
	if err != nil {
		return SubmitEstimateResult{}, err
	}

	now := u.now()
	e := entities.Estimate{
		ID:                 uuid.NewString(),
		CustomerID:         customer.ID,
		TypeID:             cmd.TypeID,
		SubcategoryID:      cmd.SubcategoryID,
		PackageID:          cmd.PackageID,
		AreaSqft:           totals.AreaSqft,
		Questions:          totals.Questions,
		EstimatedAmount:    totals.EstimatedAmount,
		Status:             entities.EstimateStatusSubmitted,
		SupervisorProgress: entities.SupervisorProgressNone,
		CustomerProgress:   entities.CustomerProgressNone,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return SubmitEstimateResult{}, storageError("create estimate", err)
	}

	u.logger.Info("[estimate][usecase] submitted",
		zap.String("estimate_id", created.ID),
		zap.String("customer_id", customer.ID),
		zap.Float64("estimated_amount", created.EstimatedAmount))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventEstimateSubmitted,
		ResourceType: "estimate",
		ResourceID:   created.ID,
		ActorID:      customer.ID,
		OccurredAt:   now,
		Payload:      map[string]interface{}{"estimated_amount": created.EstimatedAmount},
	})
	return SubmitEstimateResult{Estimate: created, FinalPrice: created.EstimatedAmount}, nil
}

func (u *EstimateUseCase) resolveCustomer(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	c, err := u.customers.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.Customer{}, storageError("load customer", err)
	}
	if c.ID != "" {
		return c, nil
	}
	c, err = u.customers.Create(ctx, entities.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: u.now(),
	})
	if err != nil {
		return entities.Customer{}, storageError("create customer", err)
	}
	u.logger.Info("[estimate][usecase] customer created", zap.String("customer_id", c.ID))
	return c, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Estimate, error) {
	if err := authorize(actor, entities.ActionViewEstimate); err != nil {
		return entities.Estimate{}, err
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	switch actor.Role {
	case entities.RoleCustomer:
		if e.CustomerID != actor.ID {
			return entities.Estimate{}, ErrNotEstimateCustomer
		}
	case entities.RoleFreelancer:
		if !e.WasSentTo(actor.ID) {
			return entities.Estimate{}, ErrFreelancerNotInvited
		}
	}
	return e, nil
}

func (u *EstimateUseCase) ListQuotations(ctx context.Context, actor entities.Actor, id string) ([]entities.Quotation, error) {
	if err := authorize(actor, entities.ActionListQuotations); err != nil {
		return nil, err
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == entities.RoleSupervisor && e.AssignedSupervisor != actor.ID {
		return nil, ErrNotAssignedSupervisor
	}
	qs, err := u.quotations.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return nil, storageError("list quotations", err)
	}
	return qs, nil
}

func (u *EstimateUseCase) AssignToSupervisor(ctx context.Context, actor entities.Actor, id, supervisorID string) (entities.Estimate, error) {
	if err := authorize(actor, entities.ActionAssignSupervisor); err != nil {
		return entities.Estimate{}, err
	}
	supervisorID = strings.TrimSpace(supervisorID)
	if supervisorID == "" {
		verr := &domainerr.ValidationError{}
		verr.Add("supervisor_id", "is required")
		return entities.Estimate{}, verr
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !entities.CanTransition(e.Status, entities.EstimateStatusAssigned) {
		return entities.Estimate{}, ErrInvalidTransition
	}

	e.AssignedSupervisor = supervisorID
	e.Status = entities.EstimateStatusAssigned
	e.SupervisorProgress = entities.SupervisorProgressNone
	e.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, storageError("assign supervisor", err)
	}
	u.logger.Info("[estimate][usecase] supervisor assigned",
		zap.String("estimate_id", updated.ID),
		zap.String("supervisor_id", supervisorID))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventEstimateAssigned,
		ResourceType: "estimate",
		ResourceID:   updated.ID,
		ActorID:      actor.ID,
		Recipients:   []string{supervisorID},
		OccurredAt:   updated.UpdatedAt,
	})
	return updated, nil
}

func (u *EstimateUseCase) SendToFreelancers(ctx context.Context, actor entities.Actor, id string, freelancerIDs []string) (entities.Estimate, error) {
	if err := authorize(actor, entities.ActionSendToFreelancers); err != nil {
		return entities.Estimate{}, err
	}
	verr := &domainerr.ValidationError{}
	freelancerIDs = normalizeRefs(freelancerIDs, "freelancer_ids", verr)
	if len(freelancerIDs) == 0 && len(verr.Fields) == 0 {
		verr.Add("freelancer_ids", "at least one freelancer is required")
	}
	if err := verr.Err(); err != nil {
		return entities.Estimate{}, err
	}

	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.AssignedSupervisor != actor.ID {
		return entities.Estimate{}, ErrNotAssignedSupervisor
	}
	if e.Status != entities.EstimateStatusAssigned {
		return entities.Estimate{}, ErrInvalidTransition
	}

	found, err := u.freelancers.GetByIDs(ctx, freelancerIDs)
	if err != nil {
		return entities.Estimate{}, storageError("load freelancers", err)
	}
	active := make(map[string]bool, len(found))
	for _, f := range found {
		if f.Active {
			active[f.ID] = true
		}
	}
	valid := make([]string, 0, len(freelancerIDs))
	for _, fid := range freelancerIDs {
		if active[fid] {
			valid = append(valid, fid)
		}
	}
	if len(valid) == 0 {
		return entities.Estimate{}, ErrNoValidFreelancers
	}

	for _, fid := range valid {
		if !e.WasSentTo(fid) {
			e.SentToFreelancers = append(e.SentToFreelancers, fid)
		}
	}
	e.SupervisorProgress = entities.SupervisorProgressRequestSent
	e.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, storageError("send to freelancers", err)
	}
	u.logger.Info("[estimate][usecase] sent to freelancers",
		zap.String("estimate_id", updated.ID),
		zap.Strings("freelancer_ids", valid),
		zap.Int("dropped", len(freelancerIDs)-len(valid)))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventQuotationRequested,
		ResourceType: "estimate",
		ResourceID:   updated.ID,
		ActorID:      actor.ID,
		Recipients:   valid,
		OccurredAt:   updated.UpdatedAt,
	})
	return updated, nil
}

func (u *EstimateUseCase) SubmitQuotation(ctx context.Context, actor entities.Actor, id string, proposal QuotationProposal) (QuotationResult, error) {
	if err := authorize(actor, entities.ActionSubmitQuotation); err != nil {
		return QuotationResult{}, err
	}
	if err := proposal.normalize(true, false); err != nil {
		return QuotationResult{}, err
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return QuotationResult{}, err
	}
	if !e.WasSentTo(actor.ID) {
		return QuotationResult{}, ErrFreelancerNotInvited
	}
	if e.Status != entities.EstimateStatusAssigned {
		return QuotationResult{}, ErrInvalidTransition
	}
	if e.HasQuotationFrom(actor.ID) {
		return QuotationResult{}, ErrQuotationAlreadyExists
	}

	d, err := pricing.ApplyDiscount(*proposal.Price, proposal.DiscountPercent)
	if err != nil {
		return QuotationResult{}, err
	}

	now := u.now()
	q := entities.Quotation{
		ID:              uuid.NewString(),
		EstimateID:      e.ID,
		CreatedBy:       actor.ID,
		Role:            entities.QuotationRoleFreelancer,
		Price:           d.Price,
		DiscountPercent: d.DiscountPercent,
		DiscountAmount:  d.DiscountAmount,
		GrandTotal:      d.GrandTotal,
		EstimatedDays:   proposal.EstimatedDays,
		Notes:           proposal.Notes,
		Attachments:     proposal.Attachments,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	e.FreelancerQuotations = append(e.FreelancerQuotations, entities.FreelancerQuotationRef{
		FreelancerID: actor.ID,
		QuotationID:  q.ID,
		SubmittedAt:  now,
	})
	e.SupervisorProgress = entities.SupervisorProgressRequestCompleted
	e.UpdatedAt = now

	updated, err := u.repo.Commit(ctx, interfaces.EstimateTransition{Estimate: e, NewQuotation: &q})
	if err != nil {
		return QuotationResult{}, storageError("submit quotation", err)
	}
	u.logger.Info("[estimate][usecase] freelancer quotation submitted",
		zap.String("estimate_id", updated.ID),
		zap.String("quotation_id", q.ID),
		zap.Float64("grand_total", q.GrandTotal))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventQuotationSubmitted,
		ResourceType: "quotation",
		ResourceID:   q.ID,
		ActorID:      actor.ID,
		Recipients:   []string{updated.AssignedSupervisor},
		OccurredAt:   now,
	})
	return QuotationResult{Estimate: updated, Quotation: q}, nil
}

func (u *EstimateUseCase) CreateFinalQuotation(ctx context.Context, actor entities.Actor, id string, cmd FinalQuotationCommand) (QuotationResult, error) {
	if err := authorize(actor, entities.ActionCreateFinalQuotation); err != nil {
		return QuotationResult{}, err
	}
	if err := cmd.normalize(); err != nil {
		return QuotationResult{}, err
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return QuotationResult{}, err
	}
	if e.AssignedSupervisor != actor.ID {
		return QuotationResult{}, ErrNotAssignedSupervisor
	}
	if !entities.CanTransition(e.Status, entities.EstimateStatusFinalCreated) {
		return QuotationResult{}, ErrInvalidTransition
	}

	existing, err := u.quotations.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return QuotationResult{}, storageError("list quotations", err)
	}
	var chosen *entities.Quotation
	for i := range existing {
		if existing[i].ID == cmd.ChosenQuotationID && existing[i].Role == entities.QuotationRoleFreelancer {
			chosen = &existing[i]
		}
	}
	if chosen == nil {
		return QuotationResult{}, ErrQuotationNotFound
	}

	price := chosen.GrandTotal
	if cmd.Proposal.Price != nil {
		price = *cmd.Proposal.Price
	}
	d, err := pricing.ApplyDiscount(price, cmd.Proposal.DiscountPercent)
	if err != nil {
		return QuotationResult{}, err
	}
	m, err := pricing.ApplyMargin(d.GrandTotal, cmd.Proposal.MarginType, cmd.Proposal.MarginPercent, cmd.Proposal.MarginAmount)
	if err != nil {
		return QuotationResult{}, err
	}

	now := u.now()
	changed := make([]entities.Quotation, 0, len(existing))
	for _, q := range existing {
		selected := q.ID == chosen.ID
		if !q.IsFinal && q.IsSelectedBySupervisor == selected {
			continue
		}
		q.IsFinal = false
		q.IsSelectedBySupervisor = selected
		q.UpdatedAt = now
		changed = append(changed, q)
	}

	final := entities.Quotation{
		ID:                uuid.NewString(),
		EstimateID:        e.ID,
		CreatedBy:         actor.ID,
		Role:              entities.QuotationRoleSupervisor,
		Price:             d.Price,
		DiscountPercent:   d.DiscountPercent,
		DiscountAmount:    d.DiscountAmount,
		MarginType:        m.MarginType,
		MarginPercent:     m.MarginPercent,
		MarginAmount:      m.MarginAmount,
		GrandTotal:        m.NewPrice,
		EstimatedDays:     cmd.Proposal.EstimatedDays,
		Notes:             cmd.Proposal.Notes,
		Attachments:       cmd.Proposal.Attachments,
		SourceQuotationID: chosen.ID,
		IsFinal:           true,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	e.FreelancerSelectedQuotation = chosen.ID
	e.FinalQuotation = final.ID
	e.Status = entities.EstimateStatusFinalCreated
	e.SupervisorProgress = entities.SupervisorProgressFinalQuotationCreated
	e.UpdatedAt = now

	updated, err := u.repo.Commit(ctx, interfaces.EstimateTransition{
		Estimate:          e,
		NewQuotation:      &final,
		UpdatedQuotations: changed,
	})
	if err != nil {
		return QuotationResult{}, storageError("create final quotation", err)
	}
	u.logger.Info("[estimate][usecase] final quotation created",
		zap.String("estimate_id", updated.ID),
		zap.String("quotation_id", final.ID),
		zap.String("selected_quotation_id", chosen.ID),
		zap.Float64("grand_total", final.GrandTotal))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventFinalQuotationCreated,
		ResourceType: "quotation",
		ResourceID:   final.ID,
		ActorID:      actor.ID,
		OccurredAt:   now,
	})
	return QuotationResult{Estimate: updated, Quotation: final}, nil
}

func (u *EstimateUseCase) ApproveFinalQuotation(ctx context.Context, actor entities.Actor, id string, proposal QuotationProposal) (QuotationResult, error) {
	if err := authorize(actor, entities.ActionApproveFinalQuotation); err != nil {
		return QuotationResult{}, err
	}
	verr := &domainerr.ValidationError{}
	if err := proposal.normalize(false, true); err != nil {
		verr.Merge("", asValidation(err))
	}
	if proposal.DiscountPercent != 0 {
		verr.Add("discount_percent", "discounts are not applied on approval")
	}
	if err := verr.Err(); err != nil {
		return QuotationResult{}, err
	}

	e, err := u.load(ctx, id)
	if err != nil {
		return QuotationResult{}, err
	}
	if e.Status == entities.EstimateStatusSuperAdminApproved {
		return QuotationResult{}, ErrFinalAlreadyApproved
	}
	if !entities.CanTransition(e.Status, entities.EstimateStatusSuperAdminApproved) {
		return QuotationResult{}, ErrInvalidTransition
	}
	if e.FinalQuotation == "" {
		return QuotationResult{}, ErrMissingFinalQuotation
	}
	final, err := u.quotations.GetByID(ctx, e.FinalQuotation)
	if err != nil {
		return QuotationResult{}, storageError("load final quotation", err)
	}
	if final.ID == "" || final.EstimateID != e.ID {
		return QuotationResult{}, ErrQuotationNotFound
	}

	price := final.GrandTotal
	if proposal.Price != nil {
		price = *proposal.Price
	}
	m, err := pricing.ApplyMargin(price, proposal.MarginType, proposal.MarginPercent, proposal.MarginAmount)
	if err != nil {
		return QuotationResult{}, err
	}

	now := u.now()
	admin := entities.Quotation{
		ID:                 uuid.NewString(),
		EstimateID:         e.ID,
		CreatedBy:          actor.ID,
		Role:               entities.QuotationRoleAdmin,
		Price:              m.Price,
		MarginType:         m.MarginType,
		MarginPercent:      m.MarginPercent,
		MarginAmount:       m.MarginAmount,
		GrandTotal:         m.NewPrice,
		EstimatedDays:      proposal.EstimatedDays,
		Notes:              proposal.Notes,
		Attachments:        proposal.Attachments,
		SourceQuotationID:  final.ID,
		SuperAdminApproved: true,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	final.SuperAdminApproved = true
	final.UpdatedAt = now

	e.AdminFinalQuotation = admin.ID
	e.Status = entities.EstimateStatusSuperAdminApproved
	e.CustomerProgress = entities.CustomerProgressSentToCustomer
	e.UpdatedAt = now

	updated, err := u.repo.Commit(ctx, interfaces.EstimateTransition{
		Estimate:          e,
		NewQuotation:      &admin,
		UpdatedQuotations: []entities.Quotation{final},
	})
	if err != nil {
		return QuotationResult{}, storageError("approve final quotation", err)
	}
	u.logger.Info("[estimate][usecase] final quotation approved",
		zap.String("estimate_id", updated.ID),
		zap.String("quotation_id", admin.ID),
		zap.Float64("grand_total", admin.GrandTotal))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventFinalQuotationApproved,
		ResourceType: "estimate",
		ResourceID:   updated.ID,
		ActorID:      actor.ID,
		Recipients:   []string{updated.CustomerID},
		OccurredAt:   now,
		Payload:      map[string]interface{}{"grand_total": admin.GrandTotal},
	})
	return QuotationResult{Estimate: updated, Quotation: admin}, nil
}

func (u *EstimateUseCase) CustomerResponse(ctx context.Context, actor entities.Actor, id string, cmd CustomerResponseCommand) (entities.Estimate, error) {
	if err := authorize(actor, entities.ActionCustomerResponse); err != nil {
		return entities.Estimate{}, err
	}
	if err := cmd.normalize(); err != nil {
		return entities.Estimate{}, err
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.Status != entities.EstimateStatusSuperAdminApproved {
		return entities.Estimate{}, ErrResponseNotAllowed
	}
	if e.CustomerID != actor.ID {
		return entities.Estimate{}, ErrNotEstimateCustomer
	}

	now := u.now()
	e.CustomerResponse = &entities.CustomerResponse{Status: cmd.Status, Reason: cmd.Reason, RespondedAt: now}
	e.Status = entities.EstimateStatusCustomerRejected
	if cmd.Status == entities.CustomerResponseAccepted {
		e.Status = entities.EstimateStatusCustomerAccepted
	}
	e.CustomerProgress = entities.CustomerProgressCustomerResponded
	e.UpdatedAt = now

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, storageError("record customer response", err)
	}
	u.logger.Info("[estimate][usecase] customer responded",
		zap.String("estimate_id", updated.ID),
		zap.String("response", string(cmd.Status)))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventCustomerResponded,
		ResourceType: "estimate",
		ResourceID:   updated.ID,
		ActorID:      actor.ID,
		Recipients:   []string{updated.AssignedSupervisor},
		OccurredAt:   now,
		Payload:      map[string]interface{}{"status": string(cmd.Status)},
	})
	return updated, nil
}

func (u *EstimateUseCase) Cancel(ctx context.Context, actor entities.Actor, id, reason string) (entities.Estimate, error) {
	if err := authorize(actor, entities.ActionCancelEstimate); err != nil {
		return entities.Estimate{}, err
	}
	e, err := u.load(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !entities.CanTransition(e.Status, entities.EstimateStatusCancelled) {
		return entities.Estimate{}, ErrInvalidTransition
	}

	e.Status = entities.EstimateStatusCancelled
	e.CancellationReason = strings.TrimSpace(reason)
	e.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, storageError("cancel estimate", err)
	}
	u.logger.Info("[estimate][usecase] cancelled", zap.String("estimate_id", updated.ID))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventEstimateCancelled,
		ResourceType: "estimate",
		ResourceID:   updated.ID,
		ActorID:      actor.ID,
		Recipients:   []string{updated.CustomerID},
		OccurredAt:   updated.UpdatedAt,
	})
	return updated, nil
}

func (u *EstimateUseCase) load(ctx context.Context, id string) (entities.Estimate, error) {
	return loadEstimate(ctx, u.repo, id)
}

func loadEstimate(ctx context.Context, repo interfaces.IEstimateRepository, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, storageError("load estimate", err)
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// asValidation unwraps a validation error produced by a normalizer or the
// calculator.
func asValidation(err error) *domainerr.ValidationError {
	var verr *domainerr.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
