package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"

	"github.com/kailas-cloud/vitrine/internal/domain/search/result"
	"github.com/kailas-cloud/vitrine/internal/usecase/search"
)

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vitrine",
			Name:      "search_requests_total",
			Help:      "Total number of searches by outcome",
		},
		[]string{"outcome"}, // "hit" / "empty" / "error"
	)

	SearchResultsFound = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vitrine",
			Name:      "search_results_found",
			Help:      "Matching products per search before pagination",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	SearchCatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "vitrine",
			Name:      "search_catalog_size",
			Help:      "Products scored by the most recent search",
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vitrine",
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds, catalog fetch included",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	CatalogBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "vitrine",
			Name:      "catalog_breaker_state",
			Help:      "Catalog circuit breaker state: 0 closed, 1 half-open, 2 open",
		},
		[]string{"name"},
	)
)

func init() {
	prometheus.MustRegister(
		SearchRequestsTotal,
		SearchResultsFound,
		SearchCatalogSize,
		SearchDuration,
		CatalogBreakerState,
	)
}

// Search outcomes.
const (
	OutcomeHit   = "hit"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// SearchObserver records search metrics. It implements search.Observer.
type SearchObserver struct{}

var _ search.Observer = SearchObserver{}

// SearchStarted implements search.Observer.
func (SearchObserver) SearchStarted(context.Context, search.Started) {}

// CandidatesFiltered implements search.Observer.
func (SearchObserver) CandidatesFiltered(_ context.Context, catalogSize int, _ []result.Candidate) {
	SearchCatalogSize.Set(float64(catalogSize))
}

// SearchFinished implements search.Observer.
func (SearchObserver) SearchFinished(_ context.Context, f search.Finished) {
	SearchDuration.Observe(f.Elapsed.Seconds())
	switch {
	case f.Err != nil:
		SearchRequestsTotal.WithLabelValues(OutcomeError).Inc()
		return
	case f.ResultsFound == 0:
		SearchRequestsTotal.WithLabelValues(OutcomeEmpty).Inc()
	default:
		SearchRequestsTotal.WithLabelValues(OutcomeHit).Inc()
	}
	SearchResultsFound.Observe(float64(f.ResultsFound))
}

// ObserveBreakerState records a circuit breaker transition.
func ObserveBreakerState(name string, _, to gobreaker.State) {
	CatalogBreakerState.WithLabelValues(name).Set(float64(to))
}
