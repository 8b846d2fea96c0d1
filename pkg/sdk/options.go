package vitrine

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/vitrine/internal/config"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalog config.CatalogConfig

	breakerFailures uint32
	breakerTimeout  time.Duration

	now func() time.Time

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCatalogFile serves the catalog from a YAML or JSON fixture.
// The file is re-read on every call.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverFile
		c.catalog.Path = path
	})
}

// WithRedis reads the catalog from a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverRedis
		c.catalog.Addrs = []string{addr}
		c.catalog.Password = password
	})
}

// WithValkey reads the catalog from a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverValkey
		c.catalog.Addrs = []string{addr}
		c.catalog.Password = password
	})
}

// WithKeyPrefix namespaces catalog keys in Redis or Valkey.
// Default: "vitrine:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.KeyPrefix = prefix
	})
}

// WithPostgres reads the catalog from PostgreSQL.
func WithPostgres(dsn string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverPostgres
		c.catalog.DSN = dsn
	})
}

// WithSQLite reads the catalog from a SQLite database.
func WithSQLite(dsn string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.Driver = config.DriverSQLite
		c.catalog.DSN = dsn
	})
}

// WithReadinessTimeout bounds how long New waits for the store.
// Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalog.ReadinessTimeout = int(d.Round(time.Second) / time.Second)
	})
}

// WithCircuitBreaker fails catalog reads fast after maxFailures consecutive
// store errors, for openTimeout. Disabled by default.
func WithCircuitBreaker(maxFailures uint32, openTimeout time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.breakerFailures = maxFailures
		c.breakerTimeout = openTimeout
	})
}

// WithClock overrides the reference time used for "new arrivals" scoring.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *clientConfig) {
		c.now = now
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
