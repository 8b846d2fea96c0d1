package product

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/vitrine/internal/config"
	dbRedis "github.com/kailas-cloud/vitrine/internal/db/redis"
	"github.com/kailas-cloud/vitrine/internal/db/sqldb"
	domprod "github.com/kailas-cloud/vitrine/internal/domain/product"
)

// Reader is every catalog read the services make.
type Reader interface {
	FetchAllProjected(ctx context.Context) ([]domprod.Product, error)
	Get(ctx context.Context, id int64) (domprod.Product, error)
	ListReviews(ctx context.Context, productID int64) ([]domprod.Review, error)
	ListCollections(ctx context.Context) ([]domprod.Collection, error)
}

type seeder interface {
	Seed(ctx context.Context, c *domprod.Catalog) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Backend is an opened catalog store of any driver.
type Backend struct {
	Reader
	driver string
	seeder seeder
	pinger pinger
	close  func()
}

// Driver returns the configured driver name.
func (b *Backend) Driver() string { return b.driver }

// Ping checks the underlying store.
func (b *Backend) Ping(ctx context.Context) error {
	if err := b.pinger.Ping(ctx); err != nil {
		return fmt.Errorf("ping %s catalog: %w", b.driver, err)
	}
	return nil
}

// Seed writes c into the store, replacing records with the same ids.
func (b *Backend) Seed(ctx context.Context, c *domprod.Catalog) error {
	if err := b.seeder.Seed(ctx, c); err != nil {
		return fmt.Errorf("seed %s catalog: %w", b.driver, err)
	}
	return nil
}

// Close releases connections.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open connects the catalog store selected by cfg.Driver and waits until it
// answers. SQL schemas are created if absent.
func Open(ctx context.Context, cfg config.CatalogConfig) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err //nolint:wrapcheck // config errors name the field
	}
	readiness := time.Duration(cfg.ReadinessTimeout) * time.Second
	if readiness <= 0 {
		readiness = 10 * time.Second
	}

	switch cfg.Driver {
	case config.DriverFile:
		repo := NewFile(cfg.Path)
		return &Backend{Reader: repo, driver: cfg.Driver, seeder: repo, pinger: repo}, nil

	case config.DriverRedis, config.DriverValkey:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
		}
		if err := store.WaitForReady(ctx, readiness); err != nil {
			store.Close()
			return nil, fmt.Errorf("%s not ready: %w", cfg.Driver, err)
		}
		repo := NewKV(store, cfg.KeyPrefix)
		return &Backend{Reader: repo, driver: cfg.Driver, seeder: repo, pinger: store, close: store.Close}, nil

	case config.DriverPostgres, config.DriverSQLite:
		sc := sqldb.Config{Dialect: sqldb.Postgres, DSN: cfg.DSN}
		if cfg.Driver == config.DriverSQLite {
			sc.Dialect = sqldb.SQLite
			sc.MaxOpenConns = 1
		}
		conn, err := sqldb.Open(sc)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
		}
		if err := conn.WaitForReady(ctx, readiness); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s not ready: %w", cfg.Driver, err)
		}
		repo := NewSQL(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		return &Backend{Reader: repo, driver: cfg.Driver, seeder: repo, pinger: conn, close: conn.Close}, nil
	}
	return nil, fmt.Errorf("unknown catalog driver %q", cfg.Driver)
}
