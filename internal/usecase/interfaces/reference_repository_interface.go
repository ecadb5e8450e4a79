package interfaces

import (
	"context"

	"dealflow/internal/domain/entities"
)

// ICustomerRepository resolves customers by email when requests are submitted.
type ICustomerRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
}

// IFreelancerRepository is a read-only lookup of freelancer profiles. Unknown
// ids are omitted from the result.
type IFreelancerRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]entities.Freelancer, error)
}

// ICatalogRepository is a read-only lookup of service types.
type ICatalogRepository interface {
	GetServiceType(ctx context.Context, id string) (entities.ServiceType, error)
}
