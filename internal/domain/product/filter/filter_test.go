package filter

import (
	"testing"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

// --- PriceBucket tests ---

func TestPriceBucket_Contains(t *testing.T) {
	tests := []struct {
		bucket PriceBucket
		price  float64
		want   bool
	}{
		{PriceUpTo50, 49.9, true},
		{PriceUpTo50, 50, true},
		{PriceUpTo50, 50.01, false},
		{Price50To100, 50, true},
		{Price50To100, 100, true},
		{Price50To100, 100.5, false},
		{Price100To150, 99.99, false},
		{Price150To200, 199, true},
		{Price200AndMore, 200, true},
		{Price200AndMore, 199.99, false},
		{PriceBucket("bogus"), 1e6, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			if got := tt.bucket.Contains(tt.price); got != tt.want {
				t.Errorf("%s.Contains(%v) = %v, want %v", tt.bucket, tt.price, got, tt.want)
			}
		})
	}
}

func TestPriceBucket_IsValid(t *testing.T) {
	for _, b := range []PriceBucket{PriceUpTo50, Price50To100, Price100To150, Price150To200, Price200AndMore} {
		if !b.IsValid() {
			t.Errorf("%q should be valid", b)
		}
	}
	if PriceBucket("cheap").IsValid() {
		t.Error("unknown bucket should be invalid")
	}
}

// --- Filter tests ---

func testProducts() []product.Product {
	return []product.Product{
		{ID: 1, Category: "vestido", Material: "Linho", Price: 129.9, Color: strPtr("Azul"),
			Size: []string{"P", "M"}, Collection: &product.Collection{ID: 1, Title: "Verão"}},
		{ID: 2, Category: "biquini", Material: "Lycra", Price: 89, Color: strPtr("Coral"),
			Size: []string{"M"}},
		{ID: 3, Category: "vestido", Material: "Seda", Price: 249, Color: nil,
			Collection: &product.Collection{ID: 2, Title: "Inverno"}},
	}
}

func ids(ps []product.Product) []int64 {
	out := make([]int64, len(ps))
	for i := range ps {
		out[i] = ps[i].ID
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want []int64
	}{
		{"empty", Filter{}, []int64{1, 2, 3}},
		{"category", Filter{Category: "vestido"}, []int64{1, 3}},
		{"collection", Filter{CollectionID: int64Ptr(2)}, []int64{3}},
		{"price", Filter{Price: Price50To100}, []int64{2}},
		{"material", Filter{Material: "Lycra"}, []int64{2}},
		{"sizes any-of", Filter{Sizes: []string{"P", "GG"}}, []int64{1}},
		{"colors in", Filter{Colors: []string{"Coral", "Azul"}}, []int64{1, 2}},
		{"combined", Filter{Category: "vestido", Price: Price200AndMore}, []int64{3}},
		{"no match", Filter{Category: "saia"}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.f.Apply(testProducts()))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	if !(&Filter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if (&Filter{Colors: []string{"Azul"}}).IsEmpty() {
		t.Error("filter with colors should not be empty")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" P, M ,,G ")
	want := []string{"P", "M", "G"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if SplitList("   ") != nil {
		t.Error("blank input should yield nil")
	}
}
