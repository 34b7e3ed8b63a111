// Package events defines the domain events published to the message broker.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TypeLeadCreated is published after a contact, schedule or quote is stored
const TypeLeadCreated = "lead.created"

// Event is the broker envelope. Key selects the partition.
type Event struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Key        string                 `json:"-"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data"`
}

// New creates an event with a fresh id and the current time
func New(eventType, key string, data map[string]interface{}) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Publisher sends events to a broker
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}
