package hub

import (
	"time"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/notify"
)

// SourceAnnotation is the event annotation copied into MessageDTO.Source.
const SourceAnnotation = "source"

// TopicFor returns the hub topic that carries an item's events.
func TopicFor(aggregateID string) string {
	return "items." + aggregateID
}

// ToMessage converts a notification to a hub MessageDTO. Timestamps are
// formatted as RFC3339 with nanoseconds in UTC.
func ToMessage(n *notify.Notification) MessageDTO {
	return MessageDTO{
		Topic:      TopicFor(n.AggregateID),
		Event:      n.Type,
		Version:    n.Sequence,
		EntityID:   n.EntityID,
		OccurredAt: n.OccurredAt.UTC().Format(time.RFC3339Nano),
		Source:     n.Annotations[SourceAnnotation],
		Data:       n.Payload,
	}
}

// ToPublishRequest converts a batch of notifications, preserving order.
func ToPublishRequest(notes []notify.Notification) PublishRequestDTO {
	msgs := make([]MessageDTO, len(notes))
	for i := range notes {
		msgs[i] = ToMessage(&notes[i])
	}
	return PublishRequestDTO{Messages: msgs}
}
