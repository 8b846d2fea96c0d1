// Package breaker guards catalog reads with a circuit breaker so a failing
// store is not hammered by every search.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vitrine/internal/domain"
	"github.com/kailas-cloud/vitrine/internal/domain/product"
)

// Catalog is every read the services make against the store.
type Catalog interface {
	FetchAllProjected(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id int64) (product.Product, error)
	ListReviews(ctx context.Context, productID int64) ([]product.Review, error)
	ListCollections(ctx context.Context) ([]product.Collection, error)
}

// StateListener is told about every state transition.
type StateListener func(name string, from, to gobreaker.State)

// Config tunes the breaker.
type Config struct {
	Name        string
	MaxFailures uint32
	OpenTimeout time.Duration
	Logger      *zap.Logger
	OnChange    StateListener
}

// Repo decorates a Catalog. While open, calls fail fast with
// domain.ErrCatalogUnavailable.
type Repo struct {
	next Catalog
	cb   *gobreaker.CircuitBreaker
}

// New wraps next.
func New(next Catalog, cfg Config) *Repo {
	if cfg.Name == "" {
		cfg.Name = "catalog"
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				zap.String("name", name), zap.String("from", from.String()), zap.String("to", to.String()))
			if cfg.OnChange != nil {
				cfg.OnChange(name, from, to)
			}
		},
	}
	return &Repo{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// State returns the current breaker state.
func (r *Repo) State() gobreaker.State {
	return r.cb.State()
}

// HealthCheck fails while the circuit is open.
func (r *Repo) HealthCheck(_ context.Context) error {
	if r.cb.State() == gobreaker.StateOpen {
		return fmt.Errorf("circuit %s open: %w", r.cb.Name(), domain.ErrCatalogUnavailable)
	}
	return nil
}

func call[T any](r *Repo, fn func() (T, error)) (T, error) {
	res, err := r.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		}
		return zero, err
	}
	return res.(T), nil
}

// FetchAllProjected implements Catalog.
func (r *Repo) FetchAllProjected(ctx context.Context) ([]product.Product, error) {
	return call(r, func() ([]product.Product, error) { return r.next.FetchAllProjected(ctx) })
}

// Get implements Catalog.
func (r *Repo) Get(ctx context.Context, id int64) (product.Product, error) {
	return call(r, func() (product.Product, error) { return r.next.Get(ctx, id) })
}

// ListReviews implements Catalog.
func (r *Repo) ListReviews(ctx context.Context, productID int64) ([]product.Review, error) {
	return call(r, func() ([]product.Review, error) { return r.next.ListReviews(ctx, productID) })
}

// ListCollections implements Catalog.
func (r *Repo) ListCollections(ctx context.Context) ([]product.Collection, error) {
	return call(r, func() ([]product.Collection, error) { return r.next.ListCollections(ctx) })
}
