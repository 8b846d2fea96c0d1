package result

import (
	"testing"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
)

func TestNew(t *testing.T) {
	p := product.Product{ID: 7, Name: "Vestido Azul"}
	c := New(p, 180)

	if c.Product().ID != 7 {
		t.Errorf("Product().ID = %d", c.Product().ID)
	}
	if c.Score() != 180 {
		t.Errorf("Score() = %d", c.Score())
	}
	if !c.Matched() {
		t.Error("expected Matched() = true")
	}
}

func TestNew_NegativeScoreClamped(t *testing.T) {
	c := New(product.Product{ID: 1}, -5)
	if c.Score() != 0 {
		t.Errorf("Score() = %d, want 0", c.Score())
	}
	if c.Matched() {
		t.Error("zero-score candidate must not match")
	}
}

func TestProducts_KeepsOrder(t *testing.T) {
	cs := []Candidate{
		New(product.Product{ID: 3}, 10),
		New(product.Product{ID: 1}, 5),
		New(product.Product{ID: 2}, 5),
	}
	ps := Products(cs)
	if len(ps) != 3 {
		t.Fatalf("len = %d", len(ps))
	}
	for i, want := range []int64{3, 1, 2} {
		if ps[i].ID != want {
			t.Errorf("ps[%d].ID = %d, want %d", i, ps[i].ID, want)
		}
	}
}
