package vitrine

import (
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/product/filter"
	"github.com/kailas-cloud/vitrine/internal/domain/search/page"
)

// PriceBucket is a named, inclusive price range used by listings.
type PriceBucket string

// Price buckets.
const (
	PriceUpTo50     PriceBucket = PriceBucket(filter.PriceUpTo50)
	Price50To100    PriceBucket = PriceBucket(filter.Price50To100)
	Price100To150   PriceBucket = PriceBucket(filter.Price100To150)
	Price150To200   PriceBucket = PriceBucket(filter.Price150To200)
	Price200AndMore PriceBucket = PriceBucket(filter.Price200AndMore)
)

// Collection is a product grouping.
type Collection struct {
	ID          int64
	Title       string
	Description string
}

// Product is a catalog item.
type Product struct {
	ID                  int64
	Name                string
	Description         string
	DetailedDescription string
	Category            string
	Material            string
	Color               string // empty when unset
	Price               float64
	Sizes               []string
	Available           bool
	New                 bool
	Images              []string // non-empty image references, in slot order
	Collection          *Collection
	CreatedAt           time.Time
}

// Review is a customer rating.
type Review struct {
	ID          int64
	Comment     string
	Stars       int
	PublishedAt time.Time
	Author      string // username
}

// ReviewStats summarizes a product's reviews.
type ReviewStats struct {
	Total        int
	AverageStars float64
	Distribution map[int]int // stars 1..5 -> count
}

// ProductDetail is a product with its reviews, newest first.
type ProductDetail struct {
	Product
	Reviews []Review
	Stats   ReviewStats
}

// Pagination describes a returned page.
type Pagination struct {
	Page            int
	Limit           int
	Total           int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// SearchResult is one page of ranked products.
type SearchResult struct {
	Query           string
	NormalizedQuery string
	Keywords        []string
	ResultsFound    int
	Products        []Product
	Pagination      Pagination
}

// ProductPage is one page of a listing.
type ProductPage struct {
	Products   []Product
	Pagination Pagination
}

// ListOptions filters and pages a listing. Zero values do not constrain.
type ListOptions struct {
	Page       int // default 1
	Limit      int // default 10, max 100
	Category   string
	Collection string // title, case and accent insensitive
	Price      PriceBucket
	Material   string
	Sizes      []string // any of
	Colors     []string // any of
}

func fromInternalProduct(p product.Product) Product {
	out := Product{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		DetailedDescription: p.DetailedDescription,
		Category:            p.Category,
		Material:            p.Material,
		Color:               p.ColorValue(),
		Price:               p.Price,
		Sizes:               p.Size,
		Available:           p.Available,
		New:                 p.New,
		CreatedAt:           p.CreatedAt,
	}
	for _, img := range p.Images {
		if img != "" {
			out.Images = append(out.Images, img)
		}
	}
	if p.Collection != nil {
		out.Collection = &Collection{
			ID:          p.Collection.ID,
			Title:       p.Collection.Title,
			Description: p.Collection.Description,
		}
	}
	return out
}

func fromInternalPage(p page.Page[product.Product]) ([]Product, Pagination) {
	return page.Map(p, fromInternalProduct).Items, Pagination{
		Page:            p.Page,
		Limit:           p.Limit,
		Total:           p.Total,
		TotalPages:      p.TotalPages,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	}
}

func fromInternalReviews(rs []product.Review) []Review {
	out := make([]Review, len(rs))
	for i, r := range rs {
		out[i] = Review{
			ID:          r.ID,
			Comment:     r.Comment,
			Stars:       r.Stars,
			PublishedAt: r.PublishedAt,
			Author:      r.User.Username,
		}
	}
	return out
}
