package entities

import "time"

// EventType names a notification emitted on a workflow transition.
type EventType string

const (
	EventEstimateSubmitted      EventType = "estimate_submitted"
	EventEstimateAssigned       EventType = "estimate_assigned"
	EventQuotationRequested     EventType = "quotation_requested"
	EventQuotationSubmitted     EventType = "quotation_submitted"
	EventFinalQuotationCreated  EventType = "final_quotation_created"
	EventFinalQuotationApproved EventType = "final_quotation_approved"
	EventCustomerResponded      EventType = "customer_responded"
	EventEstimateCancelled      EventType = "estimate_cancelled"
	EventDealCreated            EventType = "deal_created"
	EventDailyUpdateAdded       EventType = "daily_update_added"
	EventDailyUpdateApproved    EventType = "daily_update_approved"
	EventDailyUpdateRejected    EventType = "daily_update_rejected"
	EventReleaseRequested       EventType = "release_requested"
	EventMilestoneApproved      EventType = "milestone_approved"
	EventMilestonePaid          EventType = "milestone_paid"
)

// Event is the payload handed to the notification sink.
type Event struct {
	Type         EventType              `json:"event_type"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	ActorID      string                 `json:"actor_id,omitempty"`
	Recipients   []string               `json:"recipients,omitempty"`
	OccurredAt   time.Time              `json:"occurred_at"`
	Payload      map[string]interface{} `json:"payload,omitempty"`
}
