package interfaces

import (
	"context"

	"dealflow/internal/domain/entities"
)

// INotifier dispatches workflow events. Implementations must not block the
// caller on delivery and never report delivery failures.
type INotifier interface {
	Notify(ctx context.Context, event entities.Event)
}
