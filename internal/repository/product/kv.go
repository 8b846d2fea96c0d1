package product

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/kailas-cloud/vitrine/internal/db"
	"github.com/kailas-cloud/vitrine/internal/domain"
	domprod "github.com/kailas-cloud/vitrine/internal/domain/product"
)

// DefaultKeyPrefix namespaces catalog keys in a shared keyspace.
const DefaultKeyPrefix = "vitrine:"

// kvStore is the consumer interface for the key-value catalog (ISP).
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	SetMulti(ctx context.Context, items []db.SetItem) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// KVRepo stores the catalog as JSON values in Redis or Valkey:
// <prefix>product:<id>, <prefix>collection:<id>, <prefix>reviews:<productID>.
type KVRepo struct {
	store  kvStore
	prefix string
}

// NewKV creates a key-value repository. An empty prefix uses DefaultKeyPrefix.
func NewKV(s kvStore, prefix string) *KVRepo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &KVRepo{store: s, prefix: prefix}
}

func (r *KVRepo) productKey(id int64) string {
	return r.prefix + "product:" + strconv.FormatInt(id, 10)
}

func (r *KVRepo) collectionKey(id int64) string {
	return r.prefix + "collection:" + strconv.FormatInt(id, 10)
}

func (r *KVRepo) reviewsKey(productID int64) string {
	return r.prefix + "reviews:" + strconv.FormatInt(productID, 10)
}

// FetchAllProjected returns every product ordered by id.
func (r *KVRepo) FetchAllProjected(ctx context.Context) ([]domprod.Product, error) {
	records, err := loadAll[productRecord](ctx, r.store, r.prefix+"product:*")
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	cols, err := r.collectionsByID(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domprod.Product, len(records))
	for i := range records {
		out[i] = records[i].toDomain(lookup(cols, records[i].CollectionID))
	}
	slices.SortFunc(out, func(a, b domprod.Product) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// Get returns a product by id with its collection resolved.
func (r *KVRepo) Get(ctx context.Context, id int64) (domprod.Product, error) {
	key := r.productKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domprod.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		}
		return domprod.Product{}, fmt.Errorf("get %s: %w", key, err)
	}
	var rec productRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domprod.Product{}, fmt.Errorf("decode %s: %w", key, err)
	}

	var col *domprod.Collection
	if rec.CollectionID != nil {
		c, err := r.getCollection(ctx, *rec.CollectionID)
		if err != nil {
			return domprod.Product{}, err
		}
		col = c
	}
	return rec.toDomain(col), nil
}

func (r *KVRepo) getCollection(ctx context.Context, id int64) (*domprod.Collection, error) {
	key := r.collectionKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	var rec collectionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	c := rec.toDomain()
	return &c, nil
}

// ListReviews returns the reviews stored for one product.
func (r *KVRepo) ListReviews(ctx context.Context, productID int64) ([]domprod.Review, error) {
	key := r.reviewsKey(productID)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return []domprod.Review{}, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	var recs []reviewRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	out := make([]domprod.Review, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}

// ListCollections returns every collection ordered by id.
func (r *KVRepo) ListCollections(ctx context.Context) ([]domprod.Collection, error) {
	records, err := loadAll[collectionRecord](ctx, r.store, r.prefix+"collection:*")
	if err != nil {
		return nil, fmt.Errorf("load collections: %w", err)
	}
	out := make([]domprod.Collection, len(records))
	for i := range records {
		out[i] = records[i].toDomain()
	}
	slices.SortFunc(out, func(a, b domprod.Collection) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *KVRepo) collectionsByID(ctx context.Context) (map[int64]*domprod.Collection, error) {
	cols, err := r.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[int64]*domprod.Collection, len(cols))
	for i := range cols {
		m[cols[i].ID] = &cols[i]
	}
	return m, nil
}

// Seed writes the whole catalog in one pipelined round-trip. Existing keys
// are overwritten; keys absent from c are left alone.
func (r *KVRepo) Seed(ctx context.Context, c *domprod.Catalog) error {
	f := catalogToFixture(c)
	items := make([]db.SetItem, 0, len(f.Collections)+len(f.Products)+len(f.Reviews))

	for i := range f.Collections {
		item, err := jsonItem(r.collectionKey(f.Collections[i].ID), &f.Collections[i])
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	for i := range f.Products {
		item, err := jsonItem(r.productKey(f.Products[i].ID), &f.Products[i])
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	byProduct := make(map[int64][]reviewRecord)
	var order []int64
	for _, rv := range f.Reviews {
		if _, ok := byProduct[rv.ProductID]; !ok {
			order = append(order, rv.ProductID)
		}
		byProduct[rv.ProductID] = append(byProduct[rv.ProductID], rv)
	}
	for _, pid := range order {
		item, err := jsonItem(r.reviewsKey(pid), byProduct[pid])
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	if err := r.store.SetMulti(ctx, items); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

// loadAll scans keys matching pattern and decodes each JSON value. Keys that
// vanish between SCAN and GET are skipped.
func loadAll[T any](ctx context.Context, s kvStore, pattern string) ([]T, error) {
	keys, err := s.Scan(ctx, pattern)
	if err != nil {
		return nil, err
	}
	values, err := s.GetMulti(ctx, keys)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		var rec T
		if err := json.Unmarshal(v, &rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func jsonItem(key string, v any) (db.SetItem, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return db.SetItem{}, fmt.Errorf("marshal %s: %w", key, err)
	}
	return db.SetItem{Key: key, Value: data}, nil
}

func lookup(m map[int64]*domprod.Collection, id *int64) *domprod.Collection {
	if id == nil {
		return nil
	}
	return m[*id]
}
