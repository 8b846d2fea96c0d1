package vitrine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/search/page"
	"github.com/kailas-cloud/vitrine/internal/domain/search/request"
	"github.com/kailas-cloud/vitrine/internal/repository/breaker"
	productrepo "github.com/kailas-cloud/vitrine/internal/repository/product"
	cataloguc "github.com/kailas-cloud/vitrine/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/vitrine/internal/usecase/health"
	searchuc "github.com/kailas-cloud/vitrine/internal/usecase/search"
)

// Internal interfaces, swapped for mocks in tests.
type searchUseCase interface {
	Search(ctx context.Context, req *request.Request) (searchuc.Response, error)
}

type catalogUseCase interface {
	List(ctx context.Context, q cataloguc.ListQuery) (page.Page[product.Product], error)
	Get(ctx context.Context, id int64) (cataloguc.Detail, error)
	Colors(ctx context.Context) ([]string, error)
}

type catalogStore interface {
	Ping(ctx context.Context) error
	Seed(ctx context.Context, c *product.Catalog) error
	Close()
}

// Client is the vitrine SDK entry point.
type Client struct {
	store      catalogStore
	searchSvc  searchUseCase
	catalogSvc catalogUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New opens the configured catalog and wires the engine.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.catalog.Driver == "" {
		return nil, errors.New("vitrine: catalog required (use WithCatalogFile, WithRedis, WithPostgres or WithSQLite)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	backend, err := productrepo.Open(ctx, cfg.catalog)
	if err != nil {
		return nil, fmt.Errorf("vitrine: open catalog: %w", err)
	}
	return wireClient(backend, cfg, obs), nil
}

func wireClient(backend *productrepo.Backend, cfg *clientConfig, obs *observer) *Client {
	// Nil interface, not a typed nil, when the breaker is off.
	var reader productrepo.Reader = backend
	var circuit healthuc.CircuitChecker
	if cfg.breakerFailures > 0 {
		cb := breaker.New(backend, breaker.Config{
			Name:        "sdk-catalog",
			MaxFailures: cfg.breakerFailures,
			OpenTimeout: cfg.breakerTimeout,
		})
		reader = cb
		circuit = cb
	}

	var searchOpts []searchuc.Option
	if cfg.now != nil {
		searchOpts = append(searchOpts, searchuc.WithClock(cfg.now))
	}

	return &Client{
		store:      backend,
		searchSvc:  searchuc.New(reader, searchOpts...),
		catalogSvc: cataloguc.New(reader, reader, reader),
		healthSvc:  healthuc.New(backend, circuit),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks catalog connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// SearchOption tunes a search.
type SearchOption func(*searchParams)

type searchParams struct {
	page  int
	limit int
}

// Page selects the 1-based result page. Default: 1.
func Page(n int) SearchOption {
	return func(p *searchParams) { p.page = n }
}

// Limit sets the page size. Default: 10, max 100.
func Limit(n int) SearchOption {
	return func(p *searchParams) { p.limit = n }
}

// Search ranks the catalog against a free-text query. Products that match
// nothing are left out; an unmatched query returns an empty page.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) (_ *SearchResult, err error) {
	start := time.Now()
	found := 0
	defer func() { c.obs.observeSearch(query, start, found, err) }()

	p := searchParams{page: request.DefaultPage, limit: request.DefaultLimit}
	for _, o := range opts {
		o(&p)
	}

	req, err := request.New(query, p.page, p.limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	resp, err := c.searchSvc.Search(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	found = resp.ResultsFound

	products, pg := fromInternalPage(resp.Page)
	return &SearchResult{
		Query:           resp.Query,
		NormalizedQuery: resp.NormalizedQuery,
		Keywords:        resp.Keywords,
		ResultsFound:    resp.ResultsFound,
		Products:        products,
		Pagination:      pg,
	}, nil
}

// Products returns the catalog browsing service.
func (c *Client) Products() *ProductService {
	return &ProductService{svc: c.catalogSvc, obs: c.obs}
}

// Seed loads a YAML or JSON catalog fixture into the store, replacing
// records with the same ids.
func (c *Client) Seed(ctx context.Context, r io.Reader) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("seed", start, err) }()

	cat, err := productrepo.DecodeCatalog(r)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err = c.store.Seed(ctx, &cat); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// SeedFile is Seed for a fixture on disk.
func (c *Client) SeedFile(ctx context.Context, path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer f.Close()
	return c.Seed(ctx, f)
}
