package vitrine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/vitrine/internal/config"
	"github.com/kailas-cloud/vitrine/internal/domain/product"
	healthuc "github.com/kailas-cloud/vitrine/internal/usecase/health"
)

const catalogFixture = `
collections:
  - id: 1
    title: Verão
products:
  - id: 1
    name: Vestido Floral
    category: vestido
    color: Azul
    price: 159.9
    size: [P, M]
    image1: vestido-1.jpg
    image3: vestido-3.jpg
    collectionId: 1
    createdAt: 2026-06-10T10:00:00Z
  - id: 2
    name: Sandália Couro
    category: sandalia
    material: Couro
    color: Marrom
    price: 89.9
    createdAt: 2026-03-01T10:00:00Z
  - id: 3
    name: Biquíni Tropical
    category: biquini
    price: 49.9
    new: true
    collectionId: 1
    createdAt: 2026-06-12T10:00:00Z
reviews:
  - id: 1
    productId: 1
    stars: 5
    comment: Lindo
    publishedAt: 2026-06-11T10:00:00Z
    user: {id: 9, name: Bia, username: bia}
`

var refNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newFileClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(catalogFixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	opts = append([]Option{WithCatalogFile(path), WithClock(func() time.Time { return refNow })}, opts...)
	c, err := New(context.Background(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestNew_NoCatalog(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no catalog configured")
	}
}

func TestNew_InvalidCatalog(t *testing.T) {
	_, err := New(context.Background(), WithSQLite(""))
	if err == nil || !strings.Contains(err.Error(), "catalog.dsn") {
		t.Fatalf("expected dsn error, got %v", err)
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}
	WithValkey("localhost:6379", "secret").apply(cfg)
	if cfg.catalog.Driver != config.DriverValkey || cfg.catalog.Addrs[0] != "localhost:6379" || cfg.catalog.Password != "secret" {
		t.Errorf("valkey catalog = %+v", cfg.catalog)
	}

	cfg = &clientConfig{}
	WithRedis("localhost:6380", "pass").apply(cfg)
	WithKeyPrefix("shop:").apply(cfg)
	if cfg.catalog.Driver != config.DriverRedis || cfg.catalog.KeyPrefix != "shop:" {
		t.Errorf("redis catalog = %+v", cfg.catalog)
	}

	cfg = &clientConfig{}
	WithPostgres("postgres://localhost/vitrine").apply(cfg)
	WithReadinessTimeout(3 * time.Second).apply(cfg)
	if cfg.catalog.Driver != config.DriverPostgres || cfg.catalog.ReadinessTimeout != 3 {
		t.Errorf("postgres catalog = %+v", cfg.catalog)
	}

	WithCircuitBreaker(3, time.Minute).apply(cfg)
	if cfg.breakerFailures != 3 || cfg.breakerTimeout != time.Minute {
		t.Errorf("breaker = (%d, %v)", cfg.breakerFailures, cfg.breakerTimeout)
	}

	logger := slog.Default()
	WithLogger(logger).apply(cfg)
	if cfg.logger != logger {
		t.Error("expected logger to be set")
	}

	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg)
	if cfg.metricsReg != reg {
		t.Error("expected metricsReg to be set")
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	// Close на клиенте с nil store не паникует.
	c := &Client{store: nil}
	c.Close()
}

func TestClient_EndToEnd_File(t *testing.T) {
	c := newFileClient(t)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	res, err := c.Search(ctx, "Vestido")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.ResultsFound != 1 || res.Products[0].ID != 1 {
		t.Fatalf("search = %+v", res)
	}
	p := res.Products[0]
	if p.Color != "Azul" || len(p.Images) != 2 || p.Images[1] != "vestido-3.jpg" {
		t.Errorf("product = %+v", p)
	}
	if p.Collection == nil || p.Collection.Title != "Verão" {
		t.Errorf("collection = %+v", p.Collection)
	}

	news, err := c.Search(ctx, "novidades")
	if err != nil {
		t.Fatalf("Search novidades: %v", err)
	}
	if len(news.Products) == 0 || news.Products[0].ID != 3 {
		t.Errorf("new arrivals = %+v", news.Products)
	}

	list, err := c.Products().List(ctx, ListOptions{Collection: "verao"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Products) != 2 || list.Products[0].ID != 3 || list.Products[1].ID != 1 {
		t.Errorf("list = %+v", list.Products)
	}

	d, err := c.Products().Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(d.Reviews) != 1 || d.Reviews[0].Author != "bia" || d.Stats.AverageStars != 5 {
		t.Errorf("detail = %+v", d)
	}

	colors, err := c.Products().Colors(ctx)
	if err != nil || len(colors) != 2 || colors[0] != "Azul" {
		t.Errorf("colors = %v, %v", colors, err)
	}

	if h := c.Health(ctx); !h.OK() || h.Checks["catalog"] != "ok" {
		t.Errorf("health = %+v", h)
	}
}

func TestClient_Search_Validation(t *testing.T) {
	c := newFileClient(t)

	_, err := c.Search(context.Background(), "vestido", Limit(150))
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("limit 150: expected ErrInvalidQuery, got %v", err)
	}
	_, err = c.Search(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("blank query: expected ErrInvalidQuery, got %v", err)
	}
	_, err = c.Search(context.Background(), "vestido", Page(0))
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("page 0: expected ErrInvalidQuery, got %v", err)
	}
}

func TestClient_Get_NotFound(t *testing.T) {
	c := newFileClient(t)

	_, err := c.Products().Get(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_SeedFile(t *testing.T) {
	c := newFileClient(t)
	ctx := context.Background()

	src := filepath.Join(t.TempDir(), "seed.json")
	seed := `{"products":[{"id":7,"name":"Canga Listrada","category":"canga","createdAt":"2026-06-01T00:00:00Z"}]}`
	if err := os.WriteFile(src, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := c.SeedFile(ctx, src); err != nil {
		t.Fatalf("SeedFile: %v", err)
	}

	res, err := c.Search(ctx, "canga")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.ResultsFound != 1 || res.Products[0].ID != 7 {
		t.Errorf("after seed = %+v", res.Products)
	}
}

func TestClient_Seed_InvalidFixture(t *testing.T) {
	store := &mockStore{seedFn: func(context.Context, *product.Catalog) error {
		t.Fatal("store must not be called")
		return nil
	}}
	c := &Client{store: store}

	if err := c.Seed(context.Background(), strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestClient_Seed_StoreError(t *testing.T) {
	store := &mockStore{seedFn: func(context.Context, *product.Catalog) error {
		return errors.New("read-only replica")
	}}
	c := &Client{store: store}

	err := c.Seed(context.Background(), bytes.NewBufferString("products: []\n"))
	if err == nil || !strings.Contains(err.Error(), "read-only replica") {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestClient_Ping_Error(t *testing.T) {
	store := &mockStore{pingFn: func(context.Context) error { return errors.New("down") }}
	c := &Client{store: store}

	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
	c.Close()
	if !store.closed {
		t.Error("expected store to be closed")
	}
}

func TestClient_Health(t *testing.T) {
	c := &Client{healthSvc: &mockHealthUC{report: healthuc.Report{
		Status: healthuc.Degraded,
		Checks: map[string]healthuc.CheckResult{"catalog": healthuc.CheckOK, "circuit": healthuc.CheckError},
	}}}

	h := c.Health(context.Background())
	if h.OK() || h.Status != "degraded" || h.Checks["circuit"] != "error" {
		t.Errorf("health = %+v", h)
	}
}

func TestClient_WithCircuitBreaker(t *testing.T) {
	c := newFileClient(t, WithCircuitBreaker(2, time.Minute))

	h := c.Health(context.Background())
	if h.Checks["circuit"] != "ok" {
		t.Errorf("expected circuit check, got %+v", h.Checks)
	}
}

func TestObserver_NilSafe(t *testing.T) {
	// nil observer should not panic.
	var obs *observer
	obs.observe("test", time.Now(), nil)
	obs.observeSearch("q", time.Now(), 3, errors.New("err"))
}

func TestObserver_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("product.get", time.Now().Add(-10*time.Millisecond), nil)
	obs.observe("product.get", time.Now(), errors.New("fail"))
	obs.observeSearch("vestido", time.Now(), 4, nil)

	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("product.get", "ok")); got != 1 {
		t.Errorf("product.get ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("product.get", "error")); got != 1 {
		t.Errorf("product.get error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("search", "ok")); got != 1 {
		t.Errorf("search ok = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(obs.metrics.resultsFound); n != 1 {
		t.Errorf("results histogram series = %d, want 1", n)
	}
}

func TestObserver_ReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.metrics.operations != second.metrics.operations {
		t.Error("expected the registered counter to be reused")
	}
}

func TestObserver_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs, err := newObserver(logger, nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observeSearch("vestido azul", time.Now(), 2, nil)
	obs.observe("seed", time.Now(), errors.New("disk full"))

	out := buf.String()
	if !strings.Contains(out, `query="vestido azul"`) || !strings.Contains(out, "results_found=2") {
		t.Errorf("search log missing attributes: %s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "disk full") {
		t.Errorf("failure not logged at warn: %s", out)
	}
}
