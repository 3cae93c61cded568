package events

import "time"

const (
	ContactMessageReceivedTopic = "contact.message.received"
	ContactMessageReceivedType  = "contact_message_received"
)

type ContactMessageReceivedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	MessageID  string    `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
