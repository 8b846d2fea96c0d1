package catalog

import (
	"context"
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain"
	"github.com/kailas-cloud/vitrine/internal/domain/product"
)

type mockProducts struct {
	fetchFn func(ctx context.Context) ([]product.Product, error)
	getFn   func(ctx context.Context, id int64) (product.Product, error)
}

func (m *mockProducts) FetchAllProjected(ctx context.Context) ([]product.Product, error) {
	return m.fetchFn(ctx)
}

func (m *mockProducts) Get(ctx context.Context, id int64) (product.Product, error) {
	return m.getFn(ctx, id)
}

type mockReviews struct {
	listFn func(ctx context.Context, productID int64) ([]product.Review, error)
}

func (m *mockReviews) ListReviews(ctx context.Context, productID int64) ([]product.Review, error) {
	return m.listFn(ctx, productID)
}

type mockCollections struct {
	listFn func(ctx context.Context) ([]product.Collection, error)
	calls  int
}

func (m *mockCollections) ListCollections(ctx context.Context) ([]product.Collection, error) {
	m.calls++
	return m.listFn(ctx)
}

var base = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

var (
	verao   = product.Collection{ID: 1, Title: "Verão Tropical"}
	inverno = product.Collection{ID: 2, Title: "Inverno"}
)

func fixtureProducts() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Vestido Azul", Category: "vestido", Price: 120, Color: strPtr("Azul"),
			Size: []string{"P", "M"}, Material: "Algodão", Collection: &verao, CreatedAt: base},
		{ID: 2, Name: "Saia Jeans", Category: "saia", Price: 80, Color: strPtr("Azul"),
			Size: []string{"G"}, Material: "Jeans", Collection: &inverno, CreatedAt: base.AddDate(0, 0, 2)},
		{ID: 3, Name: "Biquíni", Category: "biquini", Price: 49.9, Color: strPtr("Vermelho"),
			Size: []string{"P"}, Material: "Lycra", Collection: &verao, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: 4, Name: "Canga", Category: "acessorios", Price: 250, Material: "Algodão", CreatedAt: base.AddDate(0, 0, 1)},
	}
}

func newService(ps []product.Product, reviews map[int64][]product.Review) (*Service, *mockCollections) {
	products := &mockProducts{
		fetchFn: func(context.Context) ([]product.Product, error) { return ps, nil },
		getFn: func(_ context.Context, id int64) (product.Product, error) {
			for _, p := range ps {
				if p.ID == id {
					return p, nil
				}
			}
			return product.Product{}, domain.ErrNotFound
		},
	}
	revs := &mockReviews{listFn: func(_ context.Context, id int64) ([]product.Review, error) {
		return reviews[id], nil
	}}
	cols := &mockCollections{listFn: func(context.Context) ([]product.Collection, error) {
		return []product.Collection{verao, inverno}, nil
	}}
	return New(products, revs, cols), cols
}
