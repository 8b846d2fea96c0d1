package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain"
	"github.com/kailas-cloud/vitrine/internal/domain/product"
	catalogsvc "github.com/kailas-cloud/vitrine/internal/usecase/catalog"
	healthsvc "github.com/kailas-cloud/vitrine/internal/usecase/health"
	searchsvc "github.com/kailas-cloud/vitrine/internal/usecase/search"
)

var now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

// memCatalog is an in-memory catalog store. err, when set, fails every call.
type memCatalog struct {
	products    []product.Product
	reviews     []product.Review
	collections []product.Collection
	err         error
}

func (m *memCatalog) Ping(context.Context) error { return m.err }

func (m *memCatalog) FetchAllProjected(context.Context) ([]product.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]product.Product(nil), m.products...), nil
}

func (m *memCatalog) Get(_ context.Context, id int64) (product.Product, error) {
	if m.err != nil {
		return product.Product{}, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, domain.ErrNotFound
}

func (m *memCatalog) ListReviews(_ context.Context, productID int64) ([]product.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []product.Review
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memCatalog) ListCollections(context.Context) ([]product.Collection, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.collections, nil
}

func strPtr(s string) *string { return &s }

func fixture() *memCatalog {
	summer := &product.Collection{ID: 1, Title: "Verão", Description: "Coleção de verão"}
	return &memCatalog{
		collections: []product.Collection{*summer, {ID: 2, Title: "Inverno"}},
		products: []product.Product{
			{
				ID: 1, Name: "Vestido Floral", Description: "Vestido leve", Category: "vestido",
				Color: strPtr("Azul"), Price: 120, Size: []string{"P", "M"}, Available: true,
				Images:     [product.ImageSlots]string{"vestido-1.jpg", "vestido-2.jpg"},
				Collection: summer, CreatedAt: now.AddDate(0, -2, 0),
			},
			{
				ID: 2, Name: "Sandália Couro", Category: "sandalia", Color: strPtr("Marrom"),
				Material: "Couro", Price: 80, Size: []string{"37", "38"}, Available: true,
				CreatedAt: now.AddDate(0, -1, 0),
			},
			{
				ID: 3, Name: "Biquíni Tropical", Category: "biquini", Material: "Lycra",
				Price: 45, Size: []string{"M"}, Available: true, New: true,
				Collection: summer, CreatedAt: now.Add(-48 * time.Hour),
			},
		},
		reviews: []product.Review{
			{ID: 10, ProductID: 1, Stars: 5, Comment: "Lindo", PublishedAt: now.AddDate(0, 0, -10),
				User: product.ReviewUser{ID: 7, Name: "Ana", Username: "ana"}},
			{ID: 11, ProductID: 1, Stars: 4, Comment: "Bom", PublishedAt: now.AddDate(0, 0, -1),
				User: product.ReviewUser{ID: 8, Name: "Bia", Username: "bia"}},
		},
	}
}

func newTestServer(t *testing.T, store *memCatalog) http.Handler {
	t.Helper()
	search := searchsvc.New(store, searchsvc.WithClock(func() time.Time { return now }))
	catalog := catalogsvc.New(store, store, store)
	health := healthsvc.New(store, nil)
	return NewServer(search, catalog, health, nil).Handler()
}

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
	return v
}

func productIDs(ps []ProjectedProduct) []int64 {
	out := make([]int64, len(ps))
	for i := range ps {
		out[i] = ps[i].ID
	}
	return out
}
