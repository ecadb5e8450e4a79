package interfaces

import (
	"context"

	"dealflow/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project. Projects are
// created through IEstimateRepository.Commit during deal conversion.
type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
}

// IMilestonePaymentRepository abstracts DynamoDB persistence for MilestonePayment.
type IMilestonePaymentRepository interface {
	Create(ctx context.Context, p entities.MilestonePayment) (entities.MilestonePayment, error)
	ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.MilestonePayment, error)
}
