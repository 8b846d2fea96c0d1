// Package product holds the read-only catalog projection consumed by search and listing.
package product

import (
	"math"
	"time"
)

// ImageSlots is the number of image references a product carries.
const ImageSlots = 5

// Collection is the optional grouping a product belongs to.
type Collection struct {
	ID          int64
	Title       string
	Description string
}

// Product is a projected catalog item. Values are fetched per request and never mutated.
type Product struct {
	ID                  int64
	Name                string
	Description         string
	DetailedDescription string
	Category            string
	Material            string
	Color               *string
	Price               float64
	Size                []string
	Available           bool
	New                 bool
	Images              [ImageSlots]string
	CreatedAt           time.Time
	Collection          *Collection
}

// ColorValue returns the color or "" when unset.
func (p *Product) ColorValue() string {
	if p.Color == nil {
		return ""
	}
	return *p.Color
}

// HasSize reports whether any of the given sizes is offered.
func (p *Product) HasSize(sizes ...string) bool {
	for _, have := range p.Size {
		for _, want := range sizes {
			if have == want {
				return true
			}
		}
	}
	return false
}

// ReviewUser is the public projection of a review author.
type ReviewUser struct {
	ID       int64
	Name     string
	Username string
}

// Review is a customer rating attached to a product.
type Review struct {
	ID          int64
	ProductID   int64
	Comment     string
	Stars       int
	PublishedAt time.Time
	User        ReviewUser
}

// ReviewStats summarizes reviews of one product.
type ReviewStats struct {
	Total        int
	AverageStars float64
	Distribution map[int]int
}

// Stats computes totals, the one-decimal average and the 1..5 star distribution.
// Zero-star reviews count towards the total and average only.
func Stats(reviews []Review) ReviewStats {
	st := ReviewStats{
		Total:        len(reviews),
		Distribution: map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0},
	}
	if len(reviews) == 0 {
		return st
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Stars
		if _, ok := st.Distribution[r.Stars]; ok {
			st.Distribution[r.Stars]++
		}
	}
	avg := float64(sum) / float64(len(reviews))
	st.AverageStars = math.Round(avg*10) / 10
	return st
}

// Catalog is a full fixture: what a store holds and what seeding writes.
type Catalog struct {
	Collections []Collection
	Products    []Product
	Reviews     []Review
}

// Merge upserts in into c by id. Existing records keep their position and
// are replaced in place; new records are appended in input order.
func (c *Catalog) Merge(in *Catalog) {
	c.Collections = upsert(c.Collections, in.Collections, func(x Collection) int64 { return x.ID })
	c.Products = upsert(c.Products, in.Products, func(x Product) int64 { return x.ID })
	c.Reviews = upsert(c.Reviews, in.Reviews, func(x Review) int64 { return x.ID })
}

func upsert[T any](dst, src []T, id func(T) int64) []T {
	pos := make(map[int64]int, len(dst))
	for i, x := range dst {
		pos[id(x)] = i
	}
	for _, x := range src {
		if i, ok := pos[id(x)]; ok {
			dst[i] = x
			continue
		}
		pos[id(x)] = len(dst)
		dst = append(dst, x)
	}
	return dst
}
