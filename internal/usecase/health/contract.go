package health

import "context"

// CatalogPinger checks catalog store availability.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}

// CircuitChecker reports an error while the catalog circuit is open.
type CircuitChecker interface {
	HealthCheck(ctx context.Context) error
}
