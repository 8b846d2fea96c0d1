package product

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/kailas-cloud/vitrine/internal/db"
	domprod "github.com/kailas-cloud/vitrine/internal/domain/product"
)

// mockKV implements the consumer interface for tests.
type mockKV struct {
	getFn      func(ctx context.Context, key string) ([]byte, error)
	getMultiFn func(ctx context.Context, keys []string) ([][]byte, error)
	setMultiFn func(ctx context.Context, items []db.SetItem) error
	scanFn     func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKV) GetMulti(ctx context.Context, keys []string) ([][]byte, error) {
	if m.getMultiFn != nil {
		return m.getMultiFn(ctx, keys)
	}
	return make([][]byte, len(keys)), nil
}

func (m *mockKV) SetMulti(ctx context.Context, items []db.SetItem) error {
	if m.setMultiFn != nil {
		return m.setMultiFn(ctx, items)
	}
	return nil
}

func (m *mockKV) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

// memKV is a map-backed store: seeded through SetMulti, read through the rest.
func memKV() (*mockKV, map[string][]byte) {
	data := make(map[string][]byte)
	m := &mockKV{
		getFn: func(_ context.Context, key string) ([]byte, error) {
			v, ok := data[key]
			if !ok {
				return nil, db.ErrKeyNotFound
			}
			return v, nil
		},
		getMultiFn: func(_ context.Context, keys []string) ([][]byte, error) {
			out := make([][]byte, len(keys))
			for i, k := range keys {
				out[i] = data[k]
			}
			return out, nil
		},
		setMultiFn: func(_ context.Context, items []db.SetItem) error {
			for _, it := range items {
				data[it.Key] = it.Value
			}
			return nil
		},
		scanFn: func(_ context.Context, pattern string) ([]string, error) {
			prefix := strings.TrimSuffix(pattern, "*")
			var keys []string
			for k := range data {
				if strings.HasPrefix(k, prefix) {
					keys = append(keys, k)
				}
			}
			// Redis SCAN order is arbitrary; reverse-sort to make sure callers sort.
			sort.Sort(sort.Reverse(sort.StringSlice(keys)))
			return keys, nil
		},
	}
	return m, data
}

func strPtr(s string) *string { return &s }

var created = time.Date(2026, time.May, 10, 9, 30, 0, 0, time.UTC)

func sampleCatalog() domprod.Catalog {
	verao := domprod.Collection{ID: 1, Title: "Verão", Description: "Coleção de verão"}
	return domprod.Catalog{
		Collections: []domprod.Collection{verao},
		Products: []domprod.Product{
			{
				ID: 2, Name: "Saia Jeans", Category: "saia", Material: "Jeans", Price: 89.9,
				Color: strPtr("Azul"), Size: []string{"P", "M"}, Available: true,
				Images: [domprod.ImageSlots]string{"saia-1.jpg", "saia-2.jpg"}, CreatedAt: created,
			},
			{
				ID: 1, Name: "Vestido Floral", Category: "vestido", Price: 159, New: true,
				Available: true, Collection: &verao, CreatedAt: created.Add(time.Hour),
			},
		},
		Reviews: []domprod.Review{
			{ID: 7, ProductID: 1, Comment: "Lindo", Stars: 5, PublishedAt: created,
				User: domprod.ReviewUser{ID: 3, Name: "Ana", Username: "ana"}},
			{ID: 8, ProductID: 1, Comment: "Ok", Stars: 3, PublishedAt: created.Add(24 * time.Hour)},
		},
	}
}
