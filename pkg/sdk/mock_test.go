package vitrine

import (
	"context"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/search/page"
	"github.com/kailas-cloud/vitrine/internal/domain/search/request"
	cataloguc "github.com/kailas-cloud/vitrine/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/vitrine/internal/usecase/health"
	searchuc "github.com/kailas-cloud/vitrine/internal/usecase/search"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, req *request.Request) (searchuc.Response, error)
}

func (m *mockSearchUC) Search(ctx context.Context, req *request.Request) (searchuc.Response, error) {
	return m.searchFn(ctx, req)
}

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	listFn   func(ctx context.Context, q cataloguc.ListQuery) (page.Page[product.Product], error)
	getFn    func(ctx context.Context, id int64) (cataloguc.Detail, error)
	colorsFn func(ctx context.Context) ([]string, error)
}

func (m *mockCatalogUC) List(ctx context.Context, q cataloguc.ListQuery) (page.Page[product.Product], error) {
	return m.listFn(ctx, q)
}

func (m *mockCatalogUC) Get(ctx context.Context, id int64) (cataloguc.Detail, error) {
	return m.getFn(ctx, id)
}

func (m *mockCatalogUC) Colors(ctx context.Context) ([]string, error) {
	return m.colorsFn(ctx)
}

// --- catalogStore mock ---

type mockStore struct {
	pingFn func(ctx context.Context) error
	seedFn func(ctx context.Context, c *product.Catalog) error
	closed bool
}

func (m *mockStore) Ping(ctx context.Context) error { return m.pingFn(ctx) }

func (m *mockStore) Seed(ctx context.Context, c *product.Catalog) error { return m.seedFn(ctx, c) }

func (m *mockStore) Close() { m.closed = true }

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }
