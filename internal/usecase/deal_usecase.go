package usecase

import (
	"context"
	"fmt"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IDealUseCase turns an accepted estimate into a project.
type IDealUseCase interface {
	ConvertToDeal(ctx context.Context, actor entities.Actor, estimateID string, cmd ConvertToDealCommand) (DealResult, error)
}

type DealResult struct {
	Estimate entities.Estimate
	Project  entities.Project
}

type DealUseCase struct {
	repo       interfaces.IEstimateRepository
	quotations interfaces.IQuotationRepository
	events     publisher
	logger     *zap.Logger
	now        func() time.Time
}

var _ IDealUseCase = (*DealUseCase)(nil)

func NewDealUseCase(repo interfaces.IEstimateRepository, quotations interfaces.IQuotationRepository, notifier interfaces.INotifier, logger *zap.Logger) *DealUseCase {
	logger = nopIfNil(logger)
	return &DealUseCase{
		repo:       repo,
		quotations: quotations,
		events:     publisher{notifier: notifier, logger: logger},
		logger:     logger,
		now:        systemClock,
	}
}

// ConvertToDeal creates the project and marks the estimate as a deal in one
// transaction guarded by the estimate version.
func (u *DealUseCase) ConvertToDeal(ctx context.Context, actor entities.Actor, estimateID string, cmd ConvertToDealCommand) (DealResult, error) {
	if err := authorize(actor, entities.ActionConvertToDeal); err != nil {
		return DealResult{}, err
	}
	if err := cmd.normalize(); err != nil {
		return DealResult{}, err
	}
	e, err := loadEstimate(ctx, u.repo, estimateID)
	if err != nil {
		return DealResult{}, err
	}
	if e.ProjectReference != "" {
		return DealResult{}, ErrDealAlreadyConverted
	}
	if e.Status != entities.EstimateStatusCustomerAccepted {
		return DealResult{}, ErrEstimateNotAccepted
	}
	if actor.Role == entities.RoleSupervisor && e.AssignedSupervisor != actor.ID {
		return DealResult{}, ErrNotAssignedSupervisor
	}

	quotationID := e.AuthoritativeQuotation()
	if quotationID == "" {
		return DealResult{}, ErrMissingFinalQuotation
	}
	accepted, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return DealResult{}, storageError("load accepted quotation", err)
	}
	if accepted.ID == "" {
		return DealResult{}, ErrQuotationNotFound
	}

	freelancerID := ""
	if e.FreelancerSelectedQuotation != "" {
		selected, err := u.quotations.GetByID(ctx, e.FreelancerSelectedQuotation)
		if err != nil {
			return DealResult{}, storageError("load selected quotation", err)
		}
		freelancerID = selected.CreatedBy
	}

	title := cmd.Title
	if title == "" {
		title = fmt.Sprintf("Estimate %s", e.ID)
	}

	now := u.now()
	p := entities.Project{
		ID:                 uuid.NewString(),
		EstimateID:         e.ID,
		QuotationID:        accepted.ID,
		CustomerID:         e.CustomerID,
		TypeID:             e.TypeID,
		SubcategoryID:      e.SubcategoryID,
		PackageID:          e.PackageID,
		Title:              title,
		Budget:             accepted.GrandTotal,
		StartDate:          cmd.StartDate,
		EndDate:            cmd.EndDate,
		AssignedSupervisor: e.AssignedSupervisor,
		AssignedFreelancer: freelancerID,
		Milestones:         []entities.Milestone{},
		CreatedBy:          actor.ID,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	e.Status = entities.EstimateStatusDeal
	e.CustomerProgress = entities.CustomerProgressDealCreated
	e.ProjectReference = p.ID
	e.UpdatedAt = now

	updated, err := u.repo.Commit(ctx, interfaces.EstimateTransition{Estimate: e, NewProject: &p})
	if err != nil {
		return DealResult{}, storageError("convert to deal", err)
	}
	u.logger.Info("[deal][usecase] estimate converted",
		zap.String("estimate_id", updated.ID),
		zap.String("project_id", p.ID),
		zap.Float64("budget", p.Budget))
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventDealCreated,
		ResourceType: "project",
		ResourceID:   p.ID,
		ActorID:      actor.ID,
		Recipients:   nonEmpty(p.CustomerID, p.AssignedFreelancer),
		OccurredAt:   now,
		Payload:      map[string]interface{}{"estimate_id": updated.ID, "budget": p.Budget},
	})
	return DealResult{Estimate: updated, Project: p}, nil
}

func nonEmpty(ids ...string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
