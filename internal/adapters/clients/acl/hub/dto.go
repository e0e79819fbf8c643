// Package hub implements the Anti-Corruption Layer translators for the
// downstream catalog hub's notification resources.
package hub

import "encoding/json"

// MessageDTO matches the hub's Message schema. The hub fans each message
// out to the subscribers of its topic.
type MessageDTO struct {
	Topic      string          `json:"topic"`
	Event      string          `json:"event"`
	Version    uint64          `json:"version"`
	EntityID   string          `json:"entity_id,omitempty"`
	OccurredAt string          `json:"occurred_at"`
	Source     string          `json:"source,omitempty"`
	Data       json.RawMessage `json:"data"`
}

// PublishRequestDTO matches the hub's PublishRequest schema.
type PublishRequestDTO struct {
	Messages []MessageDTO `json:"messages"`
}

// PublishResponseDTO matches the hub's PublishResponse schema.
type PublishResponseDTO struct {
	Accepted int `json:"accepted"`
}
