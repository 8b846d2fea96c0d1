package catalog

import (
	"context"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
)

// ProductReader reads products from the catalog store.
type ProductReader interface {
	FetchAllProjected(ctx context.Context) ([]product.Product, error)
	Get(ctx context.Context, id int64) (product.Product, error)
}

// ReviewReader lists reviews of one product.
type ReviewReader interface {
	ListReviews(ctx context.Context, productID int64) ([]product.Review, error)
}

// CollectionReader lists product collections.
type CollectionReader interface {
	ListCollections(ctx context.Context) ([]product.Collection, error)
}
