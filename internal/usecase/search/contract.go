package search

import (
	"context"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
)

// CatalogReader provides the full projected catalog snapshot. No filtering or
// ordering is pushed down; the returned order is the tie-break order.
type CatalogReader interface {
	FetchAllProjected(ctx context.Context) ([]product.Product, error)
}
