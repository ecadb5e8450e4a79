package interfaces

import (
	"context"
	"errors"

	"dealflow/internal/domain/entities"
)

// ErrVersionConflict is returned by repositories when the stored version no
// longer matches the version the caller read.
var ErrVersionConflict = errors.New("version conflict")

// EstimateTransition is one atomic write of an estimate transition: the estimate
// itself plus the quotations and project created or changed by the same step.
//
// Estimate.Version and the version of every UpdatedQuotations entry must be the
// versions that were read; the repository writes version+1.
type EstimateTransition struct {
	Estimate          entities.Estimate
	NewQuotation      *entities.Quotation
	UpdatedQuotations []entities.Quotation
	NewProject        *entities.Project
}

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Read methods return a zero Estimate (empty ID) when nothing is found.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Commit(ctx context.Context, t EstimateTransition) (entities.Estimate, error)
}

// IQuotationRepository abstracts DynamoDB reads for Quotation. Quotations are
// written through IEstimateRepository.Commit.
type IQuotationRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Quotation, error)
}
