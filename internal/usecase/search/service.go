package search

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/search/page"
	"github.com/kailas-cloud/vitrine/internal/domain/search/request"
	"github.com/kailas-cloud/vitrine/internal/domain/search/result"
	"github.com/kailas-cloud/vitrine/internal/domain/search/text"
)

// Service ranks the catalog against free-text queries.
type Service struct {
	catalog  CatalogReader
	observer Observer
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithObserver attaches diagnostics hooks.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// WithClock overrides the reference clock used for recency scoring.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a search service.
func New(catalog CatalogReader, opts ...Option) *Service {
	s := &Service{catalog: catalog, observer: nopObserver{}, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Response is a ranked page plus the echo of how the query was understood.
type Response struct {
	Query           string
	NormalizedQuery string
	Keywords        []string
	ResultsFound    int
	Page            page.Page[product.Product]
}

// Search scores the whole catalog snapshot and returns the requested page.
// The request is already validated by request.New.
func (s *Service) Search(ctx context.Context, req *request.Request) (Response, error) {
	start := time.Now()
	normalized := text.Normalize(req.Text())
	keywords := text.ExtractKeywords(req.Text())

	s.observer.SearchStarted(ctx, Started{
		Query:           req.Text(),
		NormalizedQuery: normalized,
		Keywords:        keywords,
		Page:            req.Page(),
		Limit:           req.Limit(),
	})

	catalog, err := s.catalog.FetchAllProjected(ctx)
	if err != nil {
		err = fmt.Errorf("fetch catalog: %w", err)
		s.observer.SearchFinished(ctx, Finished{Elapsed: time.Since(start), Err: err})
		return Response{}, err
	}

	ranked := Rank(catalog, keywords, normalized, Scorer{Now: s.now()})
	s.observer.CandidatesFiltered(ctx, len(catalog), ranked)

	pg := page.Paginate(ranked, req.Page(), req.Limit())
	resp := Response{
		Query:           req.Text(),
		NormalizedQuery: normalized,
		Keywords:        keywords,
		ResultsFound:    len(ranked),
		Page: page.Map(pg, func(c result.Candidate) product.Product {
			return c.Product()
		}),
	}

	s.observer.SearchFinished(ctx, Finished{
		ResultsFound: resp.ResultsFound,
		Returned:     len(resp.Page.Items),
		Elapsed:      time.Since(start),
	})
	return resp, nil
}

// Rank scores every product, drops zero scores and orders the rest by score
// descending. Equal scores keep their catalog order.
func Rank(catalog []product.Product, keywords []string, normalizedQuery string, scorer Scorer) []result.Candidate {
	ranked := make([]result.Candidate, 0, len(catalog))
	for i := range catalog {
		c := result.New(catalog[i], scorer.Score(&catalog[i], keywords, normalizedQuery))
		if c.Matched() {
			ranked = append(ranked, c)
		}
	}
	slices.SortStableFunc(ranked, func(a, b result.Candidate) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	return ranked
}
