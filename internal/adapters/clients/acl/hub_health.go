package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value "catalog-hub" matches the service name
// used by the underlying [httpclient.Client] for tracing and metrics.
func (c *HubClient) Name() string {
	return "catalog-hub"
}

// HealthCheck reports the hub's availability based on the circuit breaker
// state. No network call is made.
//
// State mapping:
//   - "closed"    -- hub is operating normally; returns nil.
//   - "half-open" -- circuit breaker is probing recovery; returns a
//     descriptive error indicating degraded state.
//   - "open"      -- hub is unavailable and the breaker is rejecting
//     requests; returns a descriptive error indicating failure.
//
// Notifications are best effort, so a failing hub degrades readiness
// reporting but never blocks commands.
func (c *HubClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("catalog-hub: degraded (circuit breaker half-open)")
	case "open":
		return fmt.Errorf("catalog-hub: failing (circuit breaker open)")
	default:
		return fmt.Errorf("catalog-hub: unknown circuit breaker state %q", state)
	}
}
