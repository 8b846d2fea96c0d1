package search

import (
	"context"
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/search/result"
)

type mockCatalog struct {
	fetchFn func(ctx context.Context) ([]product.Product, error)
	calls   int
}

func (m *mockCatalog) FetchAllProjected(ctx context.Context) ([]product.Product, error) {
	m.calls++
	return m.fetchFn(ctx)
}

func staticCatalog(ps []product.Product) *mockCatalog {
	return &mockCatalog{fetchFn: func(context.Context) ([]product.Product, error) {
		return ps, nil
	}}
}

type recordingObserver struct {
	started     []Started
	catalogSize int
	ranked      []result.Candidate
	finished    []Finished
}

func (r *recordingObserver) SearchStarted(_ context.Context, s Started) {
	r.started = append(r.started, s)
}

func (r *recordingObserver) CandidatesFiltered(_ context.Context, size int, ranked []result.Candidate) {
	r.catalogSize = size
	r.ranked = append([]result.Candidate(nil), ranked...)
}

func (r *recordingObserver) SearchFinished(_ context.Context, f Finished) {
	r.finished = append(r.finished, f)
}

func fixedClock() time.Time { return refNow }

func fixtureCatalog() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Vestido Azul", Category: "vestido", Color: strPtr("Azul"), CreatedAt: refNow.AddDate(0, -3, 0)},
		{ID: 2, Name: "Sandália", Category: "sandalia", Color: strPtr("Preto"), CreatedAt: refNow.AddDate(0, -2, 0)},
		{ID: 3, Name: "Vestido Floral", Category: "vestido", New: true, CreatedAt: refNow.Add(-24 * time.Hour)},
		{ID: 4, Name: "Saia Jeans", Category: "saia", CreatedAt: refNow.AddDate(-1, 0, 0)},
		{ID: 5, Name: "Biquíni Tropical", Category: "biquini", Material: "Lycra", CreatedAt: refNow.AddDate(0, -1, -5)},
	}
}
