package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/clients/acl/hub"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/codec"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/notify"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/httpclient"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EventPublisher = (*HubClient)(nil)
	_ ports.HealthChecker  = (*HubClient)(nil)
)

// notificationsPath is the hub endpoint that accepts message batches.
const notificationsPath = "/api/v1/notifications"

// HubClient is the outbound adapter for the downstream catalog hub. It
// implements [ports.EventPublisher] by posting every committed batch as one
// request to POST /api/v1/notifications.
//
// Events are encoded through the codec registry into [notify.Notification]
// values and translated to the hub's schema by the [hub] subpackage. HTTP
// errors are mapped to domain errors by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides rate limiting, circuit
// breaking, retry with exponential backoff, and OpenTelemetry tracing.
type HubClient struct {
	req      *Requester
	registry *codec.Registry
	logger   *slog.Logger
}

// NewHubClient creates a HubClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the hub root
// (e.g. "https://catalog-hub.example.com").
func NewHubClient(client *httpclient.Client, registry *codec.Registry, logger *slog.Logger) *HubClient {
	return &HubClient{
		req:      NewRequester(client, logger),
		registry: registry,
		logger:   logger,
	}
}

// Publish posts the events as a single batch. An empty batch sends nothing.
// Returns [domain.ErrUnavailable] if the hub acknowledges fewer messages
// than were sent.
func (c *HubClient) Publish(ctx context.Context, events []aggregate.Event) error {
	if len(events) == 0 {
		return nil
	}

	notes, err := notify.Build(c.registry, events)
	if err != nil {
		return err
	}

	var resp hub.PublishResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, notificationsPath, hub.ToPublishRequest(notes), &resp); err != nil {
		return err
	}
	if resp.Accepted < len(notes) {
		return fmt.Errorf("hub accepted %d of %d messages: %w", resp.Accepted, len(notes), domain.ErrUnavailable)
	}
	return nil
}
