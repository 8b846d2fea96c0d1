// Package filter holds the conventional listing filters applied to a catalog snapshot.
package filter

import (
	"strings"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
)

// PriceBucket is a named price range.
type PriceBucket string

// Known price buckets. Bounds are inclusive.
const (
	PriceUpTo50     PriceBucket = "ate50"
	Price50To100    PriceBucket = "50a100"
	Price100To150   PriceBucket = "100a150"
	Price150To200   PriceBucket = "150a200"
	Price200AndMore PriceBucket = "200mais"
)

type priceRange struct {
	min, max float64
	hasMin   bool
	hasMax   bool
}

var priceRanges = map[PriceBucket]priceRange{
	PriceUpTo50:     {max: 50, hasMax: true},
	Price50To100:    {min: 50, max: 100, hasMin: true, hasMax: true},
	Price100To150:   {min: 100, max: 150, hasMin: true, hasMax: true},
	Price150To200:   {min: 150, max: 200, hasMin: true, hasMax: true},
	Price200AndMore: {min: 200, hasMin: true},
}

// IsValid reports whether b names a known bucket.
func (b PriceBucket) IsValid() bool {
	_, ok := priceRanges[b]
	return ok
}

// Contains reports whether price falls in the bucket. Unknown buckets accept everything.
func (b PriceBucket) Contains(price float64) bool {
	r, ok := priceRanges[b]
	if !ok {
		return true
	}
	if r.hasMin && price < r.min {
		return false
	}
	if r.hasMax && price > r.max {
		return false
	}
	return true
}

// Filter narrows a listing. Zero-valued fields do not constrain.
type Filter struct {
	Category     string
	CollectionID *int64
	Price        PriceBucket
	Material     string
	Sizes        []string
	Colors       []string
}

// IsEmpty reports whether no constraint is set.
func (f *Filter) IsEmpty() bool {
	return f.Category == "" && f.CollectionID == nil && f.Price == "" &&
		f.Material == "" && len(f.Sizes) == 0 && len(f.Colors) == 0
}

// Match reports whether p satisfies every constraint.
func (f *Filter) Match(p *product.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.CollectionID != nil && (p.Collection == nil || p.Collection.ID != *f.CollectionID) {
		return false
	}
	if f.Price != "" && !f.Price.Contains(p.Price) {
		return false
	}
	if f.Material != "" && p.Material != f.Material {
		return false
	}
	if len(f.Sizes) > 0 && !p.HasSize(f.Sizes...) {
		return false
	}
	if len(f.Colors) > 0 && !colorIn(p.Color, f.Colors) {
		return false
	}
	return true
}

// Apply returns the matching products, keeping input order.
func (f *Filter) Apply(ps []product.Product) []product.Product {
	out := make([]product.Product, 0, len(ps))
	for i := range ps {
		if f.Match(&ps[i]) {
			out = append(out, ps[i])
		}
	}
	return out
}

// SplitList splits a comma-separated parameter, dropping blanks.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func colorIn(c *string, colors []string) bool {
	if c == nil {
		return false
	}
	for _, want := range colors {
		if *c == want {
			return true
		}
	}
	return false
}
