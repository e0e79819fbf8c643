// Package redis publishes committed events as JSON notifications on a Redis
// pub/sub channel.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/codec"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/notify"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
)

var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.HealthChecker  = (*Publisher)(nil)
)

// Publisher sends one message per event. A batch is written in a single
// pipeline so subscribers observe the events in sequence order.
type Publisher struct {
	client   *goredis.Client
	channel  string
	registry *codec.Registry
	logger   *slog.Logger
}

// NewClient builds a go-redis client for addr. An empty password disables
// AUTH.
func NewClient(addr, password string) *goredis.Client {
	return goredis.NewClient(&goredis.Options{Addr: addr, Password: password})
}

// NewPublisher creates a Publisher writing to channel.
func NewPublisher(client *goredis.Client, channel string, registry *codec.Registry, logger *slog.Logger) *Publisher {
	return &Publisher{
		client:   client,
		channel:  channel,
		registry: registry,
		logger:   logger,
	}
}

// Publish implements ports.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, events []aggregate.Event) error {
	if len(events) == 0 {
		return nil
	}

	notes, err := notify.Build(p.registry, events)
	if err != nil {
		return err
	}

	pipe := p.client.Pipeline()
	for i := range notes {
		payload, err := json.Marshal(&notes[i])
		if err != nil {
			return fmt.Errorf("marshaling notification: %w", err)
		}
		pipe.Publish(ctx, p.channel, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publishing to %s: %w: %w", p.channel, domain.ErrUnavailable, err)
	}

	p.logger.DebugContext(ctx, "events published",
		slog.String("channel", p.channel),
		slog.Int("count", len(notes)),
	)
	return nil
}

// Name implements ports.HealthChecker.
func (p *Publisher) Name() string {
	return "redis"
}

// HealthCheck sends PING.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (p *Publisher) Close() error {
	return p.client.Close()
}
