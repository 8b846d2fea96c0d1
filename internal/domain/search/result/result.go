package result

import "github.com/kailas-cloud/vitrine/internal/domain/product"

// Candidate is a catalog item paired with its relevance score for the
// duration of a single search. It is never serialized with its score.
type Candidate struct {
	product product.Product
	score   int
}

// New creates a candidate. Negative scores are clamped to zero.
func New(p product.Product, score int) Candidate {
	if score < 0 {
		score = 0
	}
	return Candidate{product: p, score: score}
}

// Product returns the scored catalog item.
func (c *Candidate) Product() product.Product { return c.product }

// Score returns the relevance score.
func (c *Candidate) Score() int { return c.score }

// Matched reports whether the candidate belongs in the result set.
func (c *Candidate) Matched() bool { return c.score > 0 }

// Products strips scores, keeping candidate order.
func Products(cs []Candidate) []product.Product {
	out := make([]product.Product, len(cs))
	for i := range cs {
		out[i] = cs[i].product
	}
	return out
}
