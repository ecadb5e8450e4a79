package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dealflow/internal/domain/entities"
	"dealflow/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const DefaultSubjectPrefix = "notifications.dealflow"

// publisher is the subset of *nats.Conn the notifier needs.
type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSNotifier publishes workflow events on <prefix>.<event_type>.
//
// Publishing is non-fatal: failures are logged and never reach the caller, so
// a broken broker never interrupts a workflow transition.
type NATSNotifier struct {
	conn   publisher
	prefix string
	logger *zap.Logger
}

var _ interfaces.INotifier = (*NATSNotifier)(nil)

func NewNATSNotifier(conn publisher, prefix string, logger *zap.Logger) *NATSNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSNotifier{conn: conn, prefix: prefix, logger: logger}
}

func (n *NATSNotifier) Notify(_ context.Context, event entities.Event) {
	if n == nil || n.conn == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("[notification][nats] failed to marshal event",
			zap.String("event_type", string(event.Type)), zap.Error(err))
		return
	}

	subject := n.Subject(event.Type)
	if err := n.conn.Publish(subject, data); err != nil {
		n.logger.Warn("[notification][nats] failed to publish event (non-fatal)",
			zap.String("subject", subject),
			zap.String("resource_id", event.ResourceID),
			zap.Error(err))
		return
	}

	n.logger.Debug("[notification][nats] event published",
		zap.String("subject", subject),
		zap.String("resource_id", event.ResourceID),
		zap.Int("recipients", len(event.Recipients)))
}

// Subject returns the subject an event type is published on.
func (n *NATSNotifier) Subject(t entities.EventType) string {
	return fmt.Sprintf("%s.%s", n.prefix, t)
}

// Connect dials NATS with unlimited reconnects; disconnects are logged.
func Connect(url string, logger *zap.Logger) (*nats.Conn, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return nats.Connect(url,
		nats.Name("dealflow"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("[notification][nats] disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("[notification][nats] reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
}

// NopNotifier drops every event. It is used when NATS_URL is not configured.
type NopNotifier struct{}

var _ interfaces.INotifier = NopNotifier{}

func (NopNotifier) Notify(context.Context, entities.Event) {}
