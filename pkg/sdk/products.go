package vitrine

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain/product/filter"
	"github.com/kailas-cloud/vitrine/internal/domain/search/request"
	cataloguc "github.com/kailas-cloud/vitrine/internal/usecase/catalog"
)

// ProductService browses the catalog.
type ProductService struct {
	svc catalogUseCase
	obs *observer
}

// List returns a filtered page of products, newest first.
func (s *ProductService) List(ctx context.Context, opts ListOptions) (_ *ProductPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("product.list", start, err) }()

	q := cataloguc.ListQuery{
		Page:  opts.Page,
		Limit: opts.Limit,
		Filter: filter.Filter{
			Category: opts.Category,
			Price:    filter.PriceBucket(opts.Price),
			Material: opts.Material,
			Sizes:    opts.Sizes,
			Colors:   opts.Colors,
		},
		Collection: opts.Collection,
	}
	if q.Page == 0 {
		q.Page = request.DefaultPage
	}
	if q.Limit == 0 {
		q.Limit = request.DefaultLimit
	}

	pg, err := s.svc.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products, pagination := fromInternalPage(pg)
	return &ProductPage{Products: products, Pagination: pagination}, nil
}

// Get returns a product with its reviews.
func (s *ProductService) Get(ctx context.Context, id int64) (_ *ProductDetail, err error) {
	start := time.Now()
	defer func() { s.obs.observe("product.get", start, err) }()

	d, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &ProductDetail{
		Product: fromInternalProduct(d.Product),
		Reviews: fromInternalReviews(d.Reviews),
		Stats: ReviewStats{
			Total:        d.Stats.Total,
			AverageStars: d.Stats.AverageStars,
			Distribution: d.Stats.Distribution,
		},
	}, nil
}

// Colors returns the distinct product colors, sorted.
func (s *ProductService) Colors(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { s.obs.observe("product.colors", start, err) }()

	colors, err := s.svc.Colors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	return colors, nil
}
