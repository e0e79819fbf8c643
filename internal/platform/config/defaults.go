package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultHubBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver":      StoreDriverMemory,
		"store.sqlite_path": "data/events.sqlite",

		"events.source": "catalog-api",

		"notify.redis.enabled":  false,
		"notify.redis.addr":     "localhost:6379",
		"notify.redis.password": "",
		"notify.redis.channel":  "catalog.events",

		"notify.hub.enabled":                                false,
		"notify.hub.client.base_url":                        "http://localhost:8081",
		"notify.hub.client.api_key":                         "",
		"notify.hub.client.timeout":                         "5s",
		"notify.hub.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"notify.hub.client.retry.initial_interval":          "100ms",
		"notify.hub.client.retry.max_interval":              "2s",
		"notify.hub.client.retry.multiplier":                defaultRetryMultiplier,
		"notify.hub.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"notify.hub.client.circuit_breaker.timeout":         "30s",
		"notify.hub.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"notify.hub.client.rate_limit.requests_per_second":  0,
		"notify.hub.client.rate_limit.burst_size":           defaultHubBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "eventsourced-catalog",
	}
}
