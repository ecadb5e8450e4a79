package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IMilestonePaymentUseCase collects the customer payment of an approved milestone.
//
// The charged amount always comes from the stored milestone; the client payload
// only carries gateway specific data (payment method, token, payer).
type IMilestonePaymentUseCase interface {
	PayMilestone(ctx context.Context, actor entities.Actor, projectID, milestoneID string, gatewayPayload json.RawMessage) (entities.MilestonePayment, error)
	ListPayments(ctx context.Context, actor entities.Actor, projectID, milestoneID string) ([]entities.MilestonePayment, error)
}

// PaymentOptions configures the gateway call. In mock mode the external gateway
// is skipped and every payment is approved.
type PaymentOptions struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// paymentClaimTTL bounds how long an unfinished payment attempt blocks others,
// so a crash between the claim and its release does not lock the milestone.
const paymentClaimTTL = 15 * time.Minute

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

type MilestonePaymentUseCase struct {
	repo     interfaces.IMilestonePaymentRepository
	projects interfaces.IProjectRepository
	gateway  interfaces.IPaymentGateway
	opts     PaymentOptions
	events   publisher
	logger   *zap.Logger
	now      func() time.Time
}

var _ IMilestonePaymentUseCase = (*MilestonePaymentUseCase)(nil)

func NewMilestonePaymentUseCase(
	repo interfaces.IMilestonePaymentRepository,
	projects interfaces.IProjectRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	notifier interfaces.INotifier,
	logger *zap.Logger,
) *MilestonePaymentUseCase {
	logger = nopIfNil(logger)
	return &MilestonePaymentUseCase{
		repo:     repo,
		projects: projects,
		gateway:  gateway,
		opts:     opts,
		events:   publisher{notifier: notifier, logger: logger},
		logger:   logger,
		now:      systemClock,
	}
}

func (u *MilestonePaymentUseCase) PayMilestone(ctx context.Context, actor entities.Actor, projectID, milestoneID string, payload json.RawMessage) (entities.MilestonePayment, error) {
	if err := authorize(actor, entities.ActionPayMilestone); err != nil {
		return entities.MilestonePayment{}, err
	}
	log := u.logger.With(zap.String("project_id", projectID), zap.String("milestone_id", milestoneID))
	log.Info("[payment][usecase] pay milestone start", zap.Int("payload_len", len(payload)))

	if len(payload) == 0 || !json.Valid(payload) {
		if !u.opts.Mock {
			log.Info("[payment][usecase] invalid payload")
			return entities.MilestonePayment{}, ErrInvalidGatewayPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.Mock {
		log.Error("[payment][usecase] gateway not configured")
		return entities.MilestonePayment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.MilestonePayment{}, err
	}
	m := p.Milestone(strings.TrimSpace(milestoneID))
	if m == nil {
		return entities.MilestonePayment{}, ErrMilestoneNotFound
	}
	if p.CustomerID != actor.ID {
		return entities.MilestonePayment{}, ErrNotProjectCustomer
	}
	if m.Status != entities.MilestoneStatusApproved {
		log.Info("[payment][usecase] milestone not approved", zap.String("status", string(m.Status)))
		return entities.MilestonePayment{}, ErrMilestoneNotApproved
	}
	if m.PaymentClaimed(u.now(), paymentClaimTTL) {
		log.Info("[payment][usecase] payment already in progress", zap.String("claimed_by", m.PaymentClaimedBy))
		return entities.MilestonePayment{}, ErrPaymentInProgress
	}

	previous, err := u.repo.ListByMilestoneID(ctx, m.ID)
	if err != nil {
		return entities.MilestonePayment{}, storageError("list milestone payments", err)
	}
	for _, prev := range previous {
		if prev.Status == entities.PaymentStatusApproved {
			return entities.MilestonePayment{}, ErrMilestoneAlreadyPaid
		}
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.Mock {
			return entities.MilestonePayment{}, ErrInvalidGatewayPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("[payment][usecase] missing payment_method_id")
			return entities.MilestonePayment{}, ErrInvalidGatewayPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing or invalid payer")
			return entities.MilestonePayment{}, ErrInvalidGatewayPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = m.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Milestone %s of project %s", m.Title, p.ID)
	}
	reqMap["transaction_amount"] = m.Amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.MilestonePayment{}, err
	}

	// The claim is a version guarded project write, so of two concurrent
	// attempts only one reaches the gateway.
	claimed, err := u.claim(ctx, p, m.ID, actor.ID)
	if err != nil {
		log.Info("[payment][usecase] claim milestone failed", zap.Error(err))
		return entities.MilestonePayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.opts.Mock {
		log.Info("[payment][usecase] mock mode enabled; skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(reqMap)
		if err != nil {
			u.releaseClaim(ctx, claimed, m.ID, log)
			return entities.MilestonePayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
			u.releaseClaim(ctx, claimed, m.ID, log)
			return entities.MilestonePayment{}, classifyGatewayError(err)
		}
	}
	log.Info("[payment][usecase] payment gateway responded",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	payment := entities.MilestonePayment{
		ID:                providerPaymentID,
		ProjectID:         p.ID,
		MilestoneID:       m.ID,
		PaidBy:            actor.ID,
		Amount:            m.Amount,
		Date:              u.now(),
		Status:            paymentStatusFromProvider(providerStatus),
		GatewayPayloadRaw: providerResp,
		GatewayPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", payment.ID), zap.Error(err))
		return entities.MilestonePayment{}, storageError("create milestone payment", err)
	}
	log.Info("[payment][usecase] pay milestone done", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	// Approved and pending charges keep the claim; a pending one may still
	// settle and must not be paid twice before the claim expires.
	if created.Status == entities.PaymentStatusDenied {
		u.releaseClaim(ctx, claimed, m.ID, log)
	}

	if created.Status == entities.PaymentStatusApproved {
		u.events.publish(ctx, entities.Event{
			Type:         entities.EventMilestonePaid,
			ResourceType: "milestone",
			ResourceID:   m.ID,
			ActorID:      actor.ID,
			Recipients:   nonEmpty(p.AssignedSupervisor, p.AssignedFreelancer),
			OccurredAt:   created.Date,
			Payload:      map[string]interface{}{"project_id": p.ID, "amount": created.Amount},
		})
	}
	return created, nil
}

func (u *MilestonePaymentUseCase) ListPayments(ctx context.Context, actor entities.Actor, projectID, milestoneID string) ([]entities.MilestonePayment, error) {
	if err := authorize(actor, entities.ActionViewPayments); err != nil {
		return nil, err
	}
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return nil, err
	}
	if !canSeeProject(actor, p) {
		return nil, ErrResourceForbidden
	}
	m := p.Milestone(strings.TrimSpace(milestoneID))
	if m == nil {
		return nil, ErrMilestoneNotFound
	}
	payments, err := u.repo.ListByMilestoneID(ctx, m.ID)
	if err != nil {
		return nil, storageError("list milestone payments", err)
	}
	return payments, nil
}

func (u *MilestonePaymentUseCase) claim(ctx context.Context, p entities.Project, milestoneID, actorID string) (entities.Project, error) {
	now := u.now()
	m := p.Milestone(milestoneID)
	if m == nil {
		return entities.Project{}, ErrMilestoneNotFound
	}
	m.PaymentClaimedAt = &now
	m.PaymentClaimedBy = actorID
	p.UpdatedAt = now
	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, storageError("claim milestone payment", err)
	}
	return updated, nil
}

// releaseClaim lets the customer retry after a failed attempt. A failure here
// is only logged; the claim then expires on its own.
func (u *MilestonePaymentUseCase) releaseClaim(ctx context.Context, p entities.Project, milestoneID string, log *zap.Logger) {
	m := p.Milestone(milestoneID)
	if m == nil {
		return
	}
	m.PaymentClaimedAt = nil
	m.PaymentClaimedBy = ""
	p.UpdatedAt = u.now()
	if _, err := u.projects.Update(ctx, p); err != nil {
		log.Warn("[payment][usecase] release payment claim failed", zap.Error(err))
	}
}

func (u *MilestonePaymentUseCase) mockPayment(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(u.now().UnixNano(), 10)
	now := u.now().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, in sandbox, a test payer email when
// neither payer.id nor payer.email was given.
func (u *MilestonePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox accepts.
func (u *MilestonePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.opts.sandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}
