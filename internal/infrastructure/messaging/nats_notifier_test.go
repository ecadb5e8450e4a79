package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dealflow/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func TestNATSNotifier_Notify(t *testing.T) {
	t.Run("publishes on prefixed subject", func(t *testing.T) {
		pub := &recordingPublisher{}
		n := NewNATSNotifier(pub, "notifications.dealflow.", nil)

		n.Notify(context.Background(), entities.Event{
			Type:         entities.EventDealCreated,
			ResourceType: "project",
			ResourceID:   "prj-1",
			Recipients:   []string{"cus-1"},
			OccurredAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		})

		require.Len(t, pub.subjects, 1)
		assert.Equal(t, "notifications.dealflow.deal_created", pub.subjects[0])

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(pub.payloads[0], &body))
		assert.Equal(t, "deal_created", body["event_type"])
		assert.Equal(t, "prj-1", body["resource_id"])
	})

	t.Run("empty prefix falls back to default", func(t *testing.T) {
		n := NewNATSNotifier(&recordingPublisher{}, " ", nil)
		assert.Equal(t, "notifications.dealflow.milestone_paid", n.Subject(entities.EventMilestonePaid))
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		n := NewNATSNotifier(&recordingPublisher{err: errors.New("no responders")}, "", nil)
		assert.NotPanics(t, func() {
			n.Notify(context.Background(), entities.Event{Type: entities.EventEstimateSubmitted})
		})
	})

	t.Run("nil connection is a no-op", func(t *testing.T) {
		n := NewNATSNotifier(nil, "", nil)
		assert.NotPanics(t, func() {
			n.Notify(context.Background(), entities.Event{Type: entities.EventEstimateSubmitted})
		})
	})
}
