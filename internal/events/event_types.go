package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/agora-voto/campaign-service/internal/domain"
)

// EventType enumerates the analytics events the service emits.
type EventType string

const (
	EventActionDispatched EventType = "action_dispatched"
	EventBotInteraction   EventType = "bot_interaction"
	EventCredentialRepair EventType = "credential_repair"
	EventUserLogin        EventType = "user_login"
)

// Event is a fire-and-forget analytics record. Attributes are free-form;
// consumers must tolerate missing keys.
type Event struct {
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	Role       domain.Role    `json:"role,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// New stamps an event with an ID and the current time.
func New(eventType EventType, role domain.Role, attributes map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Role:       role,
		Timestamp:  time.Now(),
		Attributes: attributes,
	}
}
