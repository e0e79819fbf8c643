package ports

import "context"

// HealthChecker reports whether one dependency of the service is usable.
// The event store and both publishers implement it.
type HealthChecker interface {
	// Name keys the checker in readiness output ("eventstore", "redis",
	// "catalog-hub"). The readiness handler also uses it to decide
	// whether a failure is critical.
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must
	// return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered checker and returns the results by
	// name. A nil error marks a healthy dependency.
	CheckAll(ctx context.Context) map[string]error
}
