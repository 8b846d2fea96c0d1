package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/vitrine/internal/domain"
	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/product/filter"
	"github.com/kailas-cloud/vitrine/internal/domain/search/page"
	"github.com/kailas-cloud/vitrine/internal/domain/search/request"
	"github.com/kailas-cloud/vitrine/internal/domain/search/text"
)

// Service handles catalog browsing: listing, detail and facets.
type Service struct {
	products    ProductReader
	reviews     ReviewReader
	collections CollectionReader
}

// New creates a catalog service.
func New(products ProductReader, reviews ReviewReader, collections CollectionReader) *Service {
	return &Service{products: products, reviews: reviews, collections: collections}
}

// ListQuery selects a page of the catalog.
type ListQuery struct {
	Page   int
	Limit  int
	Filter filter.Filter
	// Collection is a collection title, matched case and accent insensitively.
	Collection string
}

// Detail is a product with its reviews, newest first.
type Detail struct {
	Product product.Product
	Reviews []product.Review
	Stats   product.ReviewStats
}

// List returns a filtered page of products, newest first.
func (s *Service) List(ctx context.Context, q ListQuery) (page.Page[product.Product], error) {
	if err := request.ValidatePaging(q.Page, q.Limit); err != nil {
		return page.Page[product.Product]{}, err
	}

	f := q.Filter
	if q.Collection != "" {
		id, err := s.resolveCollection(ctx, q.Collection)
		if err != nil {
			return page.Page[product.Product]{}, err
		}
		f.CollectionID = &id
	}

	all, err := s.products.FetchAllProjected(ctx)
	if err != nil {
		return page.Page[product.Product]{}, fmt.Errorf("list products: %w", err)
	}

	matched := f.Apply(all)
	slices.SortStableFunc(matched, func(a, b product.Product) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return page.Paginate(matched, q.Page, q.Limit), nil
}

func (s *Service) resolveCollection(ctx context.Context, title string) (int64, error) {
	cols, err := s.collections.ListCollections(ctx)
	if err != nil {
		return 0, fmt.Errorf("list collections: %w", err)
	}
	want := text.Normalize(title)
	for _, c := range cols {
		if text.Normalize(c.Title) == want {
			return c.ID, nil
		}
	}
	return 0, fmt.Errorf("collection %q: %w", title, domain.ErrNotFound)
}

// Get returns a product with its reviews and review statistics.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	var (
		p       product.Product
		reviews []product.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = s.products.Get(gctx, id)
		if err != nil {
			return fmt.Errorf("get product: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reviews, err = s.reviews.ListReviews(gctx, id)
		if err != nil {
			return fmt.Errorf("list reviews: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Detail{}, err
	}

	if reviews == nil {
		reviews = []product.Review{}
	}
	slices.SortStableFunc(reviews, func(a, b product.Review) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return Detail{Product: p, Reviews: reviews, Stats: product.Stats(reviews)}, nil
}

// Colors returns the distinct product colors, sorted.
func (s *Service) Colors(ctx context.Context) ([]string, error) {
	all, err := s.products.FetchAllProjected(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	seen := make(map[string]struct{})
	colors := []string{}
	for i := range all {
		c := all[i].Color
		if c == nil || *c == "" {
			continue
		}
		if _, ok := seen[*c]; ok {
			continue
		}
		seen[*c] = struct{}{}
		colors = append(colors, *c)
	}
	slices.Sort(colors)
	return colors, nil
}
