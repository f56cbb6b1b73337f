package domain

import (
	"encoding/json"
	"time"

	sharedDomain "github.com/felixgeelhaar/minutes/internal/shared/domain"
	"github.com/google/uuid"
)

// Entity names used in routing keys.
const (
	EntityMeeting    = "meeting"
	EntityAttendee   = "attendee"
	EntityAttendance = "attendance"
)

// Change verbs used in routing keys.
const (
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
	ActionDuplicated = "duplicated"
	ActionAdded      = "added"
	ActionRemoved    = "removed"
)

// RoutingKey builds the routing key for a change, e.g. "minutes.meeting.created".
func RoutingKey(entity, action string) string {
	return "minutes." + entity + "." + action
}

// ChangeEvent is emitted after a successful write.
type ChangeEvent struct {
	sharedDomain.BaseEvent
	Entity string
	Action string
	// Data is the written record, or nil for deletions.
	Data any
}

// NewChangeEvent creates a ChangeEvent for the record with the given id.
func NewChangeEvent(entity, action string, id uuid.UUID, data any) *ChangeEvent {
	return &ChangeEvent{
		BaseEvent: sharedDomain.NewBaseEvent(id, entity, RoutingKey(entity, action)),
		Entity:    entity,
		Action:    action,
		Data:      data,
	}
}

type changePayload struct {
	EventID       uuid.UUID `json:"event_id"`
	Entity        string    `json:"entity"`
	Action        string    `json:"action"`
	ID            uuid.UUID `json:"id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
	Data          any       `json:"data"`
}

// MarshalJSON renders the event as the message body sent to subscribers.
func (e *ChangeEvent) MarshalJSON() ([]byte, error) {
	p := changePayload{
		EventID:    e.EventID(),
		Entity:     e.Entity,
		Action:     e.Action,
		ID:         e.AggregateID(),
		OccurredAt: e.OccurredAt(),
		Data:       e.Data,
	}
	md := e.Metadata()
	p.CorrelationID = md.CorrelationID
	p.RequestID = md.RequestID
	return json.Marshal(p)
}
