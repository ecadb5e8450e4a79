package usecase

import (
	"context"
	"strings"
	"time"

	"dealflow/internal/domain/domainerr"
	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IMilestoneUseCase manages a project's milestones and their daily updates.
//
// Every mutation is a read-modify-write of the whole project, guarded by the
// project version.
type IMilestoneUseCase interface {
	GetProject(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error)
	AssignFreelancer(ctx context.Context, actor entities.Actor, projectID, freelancerID string) (entities.Project, error)
	AddMilestone(ctx context.Context, actor entities.Actor, projectID string, spec MilestoneSpec) (entities.Project, error)
	AddDailyUpdate(ctx context.Context, actor entities.Actor, projectID, milestoneID string, cmd DailyUpdateCommand) (entities.Project, error)
	ApproveDailyUpdate(ctx context.Context, actor entities.Actor, projectID, milestoneID, dailyID string, approvedProgress int) (entities.Project, error)
	RejectDailyUpdate(ctx context.Context, actor entities.Actor, projectID, milestoneID, dailyID, reason string) (entities.Project, error)
	RequestRelease(ctx context.Context, actor entities.Actor, projectID, milestoneID string) (entities.Project, error)
	ApproveMilestone(ctx context.Context, actor entities.Actor, projectID, milestoneID string) (entities.Project, error)
	CancelMilestone(ctx context.Context, actor entities.Actor, projectID, milestoneID, reason string) (entities.Project, error)
}

type MilestoneUseCase struct {
	repo        interfaces.IProjectRepository
	freelancers interfaces.IFreelancerRepository
	events      publisher
	logger      *zap.Logger
	now         func() time.Time
}

var _ IMilestoneUseCase = (*MilestoneUseCase)(nil)

func NewMilestoneUseCase(repo interfaces.IProjectRepository, freelancers interfaces.IFreelancerRepository, notifier interfaces.INotifier, logger *zap.Logger) *MilestoneUseCase {
	logger = nopIfNil(logger)
	return &MilestoneUseCase{
		repo:        repo,
		freelancers: freelancers,
		events:      publisher{notifier: notifier, logger: logger},
		logger:      logger,
		now:         systemClock,
	}
}

func (u *MilestoneUseCase) GetProject(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
	if err := authorize(actor, entities.ActionViewProject); err != nil {
		return entities.Project{}, err
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if !canSeeProject(actor, p) {
		return entities.Project{}, ErrResourceForbidden
	}
	return p, nil
}

func (u *MilestoneUseCase) AssignFreelancer(ctx context.Context, actor entities.Actor, projectID, freelancerID string) (entities.Project, error) {
	if err := authorize(actor, entities.ActionAssignFreelancer); err != nil {
		return entities.Project{}, err
	}
	freelancerID = strings.TrimSpace(freelancerID)
	if freelancerID == "" {
		verr := &domainerr.ValidationError{}
		verr.Add("freelancer_id", "is required")
		return entities.Project{}, verr
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	found, err := u.freelancers.GetByIDs(ctx, []string{freelancerID})
	if err != nil {
		return entities.Project{}, storageError("load freelancer", err)
	}
	if len(found) == 0 || !found[0].Active {
		return entities.Project{}, ErrFreelancerNotFound
	}

	p.AssignedFreelancer = freelancerID
	return u.save(ctx, &p, "assign freelancer", zap.String("freelancer_id", freelancerID))
}

func (u *MilestoneUseCase) AddMilestone(ctx context.Context, actor entities.Actor, projectID string, spec MilestoneSpec) (entities.Project, error) {
	if err := authorize(actor, entities.ActionAddMilestone); err != nil {
		return entities.Project{}, err
	}
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if err := spec.normalize(p); err != nil {
		return entities.Project{}, err
	}

	m := entities.Milestone{
		ID:           uuid.NewString(),
		Title:        spec.Title,
		Description:  spec.Description,
		Amount:       spec.Amount,
		StartDate:    spec.StartDate,
		EndDate:      spec.EndDate,
		DueDate:      *spec.DueDate,
		Progress:     0,
		Status:       entities.MilestoneStatusPending,
		DailyUpdates: []entities.DailyUpdate{},
		CreatedAt:    u.now(),
	}
	p.Milestones = append(p.Milestones, m)
	p.RecomputeOverallProgress()
	return u.save(ctx, &p, "add milestone", zap.String("milestone_id", m.ID))
}

func (u *MilestoneUseCase) AddDailyUpdate(ctx context.Context, actor entities.Actor, projectID, milestoneID string, cmd DailyUpdateCommand) (entities.Project, error) {
	if err := authorize(actor, entities.ActionAddDailyUpdate); err != nil {
		return entities.Project{}, err
	}
	now := u.now()
	if err := cmd.normalize(now); err != nil {
		return entities.Project{}, err
	}
	p, m, err := u.loadMilestone(ctx, projectID, milestoneID)
	if err != nil {
		return entities.Project{}, err
	}
	if actor.Role == entities.RoleFreelancer && p.AssignedFreelancer != actor.ID {
		return entities.Project{}, ErrNotAssignedFreelancer
	}
	if actor.Role == entities.RoleSupervisor && p.AssignedSupervisor != actor.ID {
		return entities.Project{}, ErrResourceForbidden
	}
	if !m.Status.AcceptsDailyUpdates() {
		return entities.Project{}, ErrMilestoneClosed
	}

	du := entities.DailyUpdate{
		ID:             uuid.NewString(),
		Date:           cmd.Date.UTC(),
		WorkDone:       cmd.WorkDone,
		Photos:         cmd.Photos,
		PostedBy:       actor.ID,
		ApprovalStatus: entities.ApprovalStatusPending,
		CreatedAt:      now,
	}
	m.DailyUpdates = append(m.DailyUpdates, du)
	if m.Status == entities.MilestoneStatusPending {
		m.Status = entities.MilestoneStatusInProgress
	}

	updated, err := u.save(ctx, p, "add daily update",
		zap.String("milestone_id", m.ID),
		zap.String("daily_update_id", du.ID))
	if err != nil {
		return entities.Project{}, err
	}
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventDailyUpdateAdded,
		ResourceType: "milestone",
		ResourceID:   milestoneID,
		ActorID:      actor.ID,
		Recipients:   nonEmpty(updated.AssignedSupervisor),
		OccurredAt:   now,
		Payload:      map[string]interface{}{"project_id": updated.ID, "daily_update_id": du.ID},
	})
	return updated, nil
}

func (u *MilestoneUseCase) ApproveDailyUpdate(ctx context.Context, actor entities.Actor, projectID, milestoneID, dailyID string, approvedProgress int) (entities.Project, error) {
	if err := authorize(actor, entities.ActionReviewDailyUpdate); err != nil {
		return entities.Project{}, err
	}
	if approvedProgress < 0 || approvedProgress > 100 {
		return entities.Project{}, ErrProgressOutOfRange
	}
	p, m, du, err := u.loadPendingUpdate(ctx, actor, projectID, milestoneID, dailyID)
	if err != nil {
		return entities.Project{}, err
	}

	now := u.now()
	du.ApprovalStatus = entities.ApprovalStatusApproved
	du.ApprovedProgress = approvedProgress
	du.ReviewedBy = actor.ID
	du.ApprovedAt = &now
	m.ApplyReview()

	updated, err := u.save(ctx, p, "approve daily update",
		zap.String("milestone_id", m.ID),
		zap.String("daily_update_id", du.ID),
		zap.Int("progress", m.Progress))
	if err != nil {
		return entities.Project{}, err
	}
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventDailyUpdateApproved,
		ResourceType: "milestone",
		ResourceID:   milestoneID,
		ActorID:      actor.ID,
		Recipients:   nonEmpty(updated.AssignedFreelancer),
		OccurredAt:   now,
		Payload:      map[string]interface{}{"daily_update_id": dailyID, "approved_progress": approvedProgress},
	})
	return updated, nil
}

func (u *MilestoneUseCase) RejectDailyUpdate(ctx context.Context, actor entities.Actor, projectID, milestoneID, dailyID, reason string) (entities.Project, error) {
	if err := authorize(actor, entities.ActionReviewDailyUpdate); err != nil {
		return entities.Project{}, err
	}
	p, m, du, err := u.loadPendingUpdate(ctx, actor, projectID, milestoneID, dailyID)
	if err != nil {
		return entities.Project{}, err
	}

	now := u.now()
	du.ApprovalStatus = entities.ApprovalStatusRejected
	du.ReviewedBy = actor.ID
	du.RejectedAt = &now
	du.RejectionReason = strings.TrimSpace(reason)
	m.ApplyReview()

	updated, err := u.save(ctx, p, "reject daily update",
		zap.String("milestone_id", m.ID),
		zap.String("daily_update_id", du.ID),
		zap.Int("progress", m.Progress))
	if err != nil {
		return entities.Project{}, err
	}
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventDailyUpdateRejected,
		ResourceType: "milestone",
		ResourceID:   milestoneID,
		ActorID:      actor.ID,
		Recipients:   nonEmpty(updated.AssignedFreelancer),
		OccurredAt:   now,
		Payload:      map[string]interface{}{"daily_update_id": dailyID},
	})
	return updated, nil
}

func (u *MilestoneUseCase) RequestRelease(ctx context.Context, actor entities.Actor, projectID, milestoneID string) (entities.Project, error) {
	if err := authorize(actor, entities.ActionRequestRelease); err != nil {
		return entities.Project{}, err
	}
	p, m, err := u.loadMilestone(ctx, projectID, milestoneID)
	if err != nil {
		return entities.Project{}, err
	}
	if p.AssignedFreelancer == "" || p.AssignedFreelancer != actor.ID {
		return entities.Project{}, ErrNotAssignedFreelancer
	}
	if m.Progress != 100 {
		return entities.Project{}, ErrProgressIncomplete
	}
	if !m.Status.CanRequestRelease() {
		return entities.Project{}, ErrReleaseNotAllowed
	}

	now := u.now()
	m.Status = entities.MilestoneStatusReleaseRequested
	m.ReleaseRequestedAt = &now
	m.ReleaseRequestedBy = actor.ID

	updated, err := u.save(ctx, p, "request release", zap.String("milestone_id", m.ID))
	if err != nil {
		return entities.Project{}, err
	}
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventReleaseRequested,
		ResourceType: "milestone",
		ResourceID:   milestoneID,
		ActorID:      actor.ID,
		Recipients:   nonEmpty(updated.AssignedSupervisor),
		OccurredAt:   now,
		Payload:      map[string]interface{}{"project_id": updated.ID},
	})
	return updated, nil
}

func (u *MilestoneUseCase) ApproveMilestone(ctx context.Context, actor entities.Actor, projectID, milestoneID string) (entities.Project, error) {
	if err := authorize(actor, entities.ActionApproveMilestone); err != nil {
		return entities.Project{}, err
	}
	p, m, err := u.loadMilestone(ctx, projectID, milestoneID)
	if err != nil {
		return entities.Project{}, err
	}
	if actor.Role == entities.RoleSupervisor && p.AssignedSupervisor != actor.ID {
		return entities.Project{}, ErrResourceForbidden
	}
	if m.Status != entities.MilestoneStatusReleaseRequested {
		return entities.Project{}, ErrReleaseNotRequested
	}
	if m.Progress != 100 {
		return entities.Project{}, ErrProgressIncomplete
	}

	now := u.now()
	m.Status = entities.MilestoneStatusApproved
	m.ApprovedAt = &now
	m.ApprovedBy = actor.ID
	p.RecomputeOverallProgress()

	updated, err := u.save(ctx, p, "approve milestone",
		zap.String("milestone_id", m.ID),
		zap.Int("overall_progress", p.OverallProgress))
	if err != nil {
		return entities.Project{}, err
	}
	u.events.publish(ctx, entities.Event{
		Type:         entities.EventMilestoneApproved,
		ResourceType: "milestone",
		ResourceID:   milestoneID,
		ActorID:      actor.ID,
		Recipients:   nonEmpty(updated.CustomerID, updated.AssignedFreelancer),
		OccurredAt:   now,
		Payload:      map[string]interface{}{"project_id": updated.ID, "overall_progress": updated.OverallProgress},
	})
	return updated, nil
}

func (u *MilestoneUseCase) CancelMilestone(ctx context.Context, actor entities.Actor, projectID, milestoneID, reason string) (entities.Project, error) {
	if err := authorize(actor, entities.ActionCancelMilestone); err != nil {
		return entities.Project{}, err
	}
	p, m, err := u.loadMilestone(ctx, projectID, milestoneID)
	if err != nil {
		return entities.Project{}, err
	}
	if actor.Role == entities.RoleSupervisor && p.AssignedSupervisor != actor.ID {
		return entities.Project{}, ErrResourceForbidden
	}
	if m.Status != entities.MilestoneStatusPending && m.Status != entities.MilestoneStatusInProgress {
		return entities.Project{}, ErrMilestoneNotCancellable
	}

	now := u.now()
	m.Status = entities.MilestoneStatusCancelled
	m.CancelledAt = &now
	m.CancellationReason = strings.TrimSpace(reason)
	p.RecomputeOverallProgress()

	return u.save(ctx, p, "cancel milestone", zap.String("milestone_id", m.ID))
}

// loadMilestone returns the project and a pointer to the milestone inside it.
func (u *MilestoneUseCase) loadMilestone(ctx context.Context, projectID, milestoneID string) (*entities.Project, *entities.Milestone, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return nil, nil, err
	}
	m := p.Milestone(strings.TrimSpace(milestoneID))
	if m == nil {
		return nil, nil, ErrMilestoneNotFound
	}
	return &p, m, nil
}

func (u *MilestoneUseCase) loadPendingUpdate(ctx context.Context, actor entities.Actor, projectID, milestoneID, dailyID string) (*entities.Project, *entities.Milestone, *entities.DailyUpdate, error) {
	p, m, err := u.loadMilestone(ctx, projectID, milestoneID)
	if err != nil {
		return nil, nil, nil, err
	}
	if actor.Role == entities.RoleSupervisor && p.AssignedSupervisor != actor.ID {
		return nil, nil, nil, ErrResourceForbidden
	}
	du := m.DailyUpdate(strings.TrimSpace(dailyID))
	if du == nil {
		return nil, nil, nil, ErrDailyUpdateNotFound
	}
	if du.ApprovalStatus != entities.ApprovalStatusPending {
		return nil, nil, nil, ErrDailyUpdateNotPending
	}
	if m.Status == entities.MilestoneStatusApproved || m.Status == entities.MilestoneStatusCancelled {
		return nil, nil, nil, ErrMilestoneClosed
	}
	return p, m, du, nil
}

func (u *MilestoneUseCase) save(ctx context.Context, p *entities.Project, op string, fields ...zap.Field) (entities.Project, error) {
	p.UpdatedAt = u.now()
	updated, err := u.repo.Update(ctx, *p)
	if err != nil {
		u.logger.Warn("[milestone][usecase] "+op+" failed", append(fields, zap.String("project_id", p.ID), zap.Error(err))...)
		return entities.Project{}, storageError(op, err)
	}
	u.logger.Info("[milestone][usecase] "+op, append(fields, zap.String("project_id", updated.ID))...)
	return updated, nil
}

func loadProject(ctx context.Context, repo interfaces.IProjectRepository, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, storageError("load project", err)
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func canSeeProject(actor entities.Actor, p entities.Project) bool {
	switch actor.Role {
	case entities.RoleCustomer:
		return p.CustomerID == actor.ID
	case entities.RoleFreelancer:
		return p.AssignedFreelancer == actor.ID
	case entities.RoleSupervisor, entities.RoleSuperAdmin:
		return true
	}
	return false
}
