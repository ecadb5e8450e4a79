package usecase

import (
	"context"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// authorize rejects anonymous callers and roles outside the action's grant.
func authorize(actor entities.Actor, action entities.Action) error {
	if actor.IsZero() {
		return ErrMissingActor
	}
	if !actor.Role.Can(action) {
		return ErrActionNotAllowed
	}
	return nil
}

// publisher sends workflow events without ever failing the caller.
type publisher struct {
	notifier interfaces.INotifier
	logger   *zap.Logger
}

func (p publisher) publish(ctx context.Context, event entities.Event) {
	if p.notifier == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	p.notifier.Notify(ctx, event)
	p.logger.Debug("[notify][usecase] event dispatched",
		zap.String("event", string(event.Type)),
		zap.String("resource_id", event.ResourceID))
}

func nopIfNil(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func systemClock() time.Time { return time.Now().UTC() }
