package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// DefaultPingTimeout bounds each catalog ping.
const DefaultPingTimeout = 2 * time.Second

// Service coordinates health checks.
type Service struct {
	catalog     CatalogPinger
	circuit     CircuitChecker
	pingTimeout time.Duration
}

// Option configures the Service.
type Option func(*Service)

// WithPingTimeout overrides DefaultPingTimeout.
func WithPingTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.pingTimeout = d
		}
	}
}

// New creates a Service. circuit can be nil.
func New(catalog CatalogPinger, circuit CircuitChecker, opts ...Option) *Service {
	s := &Service{catalog: catalog, circuit: circuit, pingTimeout: DefaultPingTimeout}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Check runs health checks against all components. An unreachable catalog
// is unhealthy; an open circuit alone is degraded.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, 2)

	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	err := s.catalog.Ping(pingCtx)
	cancel()
	if err != nil {
		checks["catalog"] = CheckError
	} else {
		checks["catalog"] = CheckOK
	}

	if s.circuit != nil {
		if err := s.circuit.HealthCheck(ctx); err != nil {
			checks["circuit"] = CheckError
		} else {
			checks["circuit"] = CheckOK
		}
	}

	status := Healthy
	switch {
	case checks["catalog"] == CheckError:
		status = Unhealthy
	case checks["circuit"] == CheckError:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
