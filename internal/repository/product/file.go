package product

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/vitrine/internal/domain"
	domprod "github.com/kailas-cloud/vitrine/internal/domain/product"
)

// DecodeCatalog reads a YAML or JSON catalog fixture. A document starting
// with '{' is decoded as JSON.
func DecodeCatalog(r io.Reader) (domprod.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domprod.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var f fixture
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		err = json.Unmarshal(trimmed, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return domprod.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return f.toCatalog(), nil
}

// EncodeCatalog writes c as a YAML fixture that DecodeCatalog accepts.
func EncodeCatalog(w io.Writer, c *domprod.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalogToFixture(c)); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

// ReadCatalogFile decodes the fixture at path.
func ReadCatalogFile(path string) (domprod.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return domprod.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return DecodeCatalog(f)
}

// FileRepo serves the catalog from a fixture file. The file is re-read on
// every call so edits show up without a restart.
type FileRepo struct {
	path string
}

// NewFile creates a file-backed repository.
func NewFile(path string) *FileRepo {
	return &FileRepo{path: path}
}

// Ping checks that the fixture is readable.
func (r *FileRepo) Ping(_ context.Context) error {
	if _, err := os.Stat(r.path); err != nil {
		return fmt.Errorf("stat catalog: %w", err)
	}
	return nil
}

func (r *FileRepo) load(ctx context.Context) (domprod.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domprod.Catalog{}, err
	}
	return ReadCatalogFile(r.path)
}

// FetchAllProjected returns every product in file order.
func (r *FileRepo) FetchAllProjected(ctx context.Context) ([]domprod.Product, error) {
	c, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Products, nil
}

// Get returns a product by id.
func (r *FileRepo) Get(ctx context.Context, id int64) (domprod.Product, error) {
	c, err := r.load(ctx)
	if err != nil {
		return domprod.Product{}, err
	}
	for i := range c.Products {
		if c.Products[i].ID == id {
			return c.Products[i], nil
		}
	}
	return domprod.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
}

// ListReviews returns the reviews of one product in file order.
func (r *FileRepo) ListReviews(ctx context.Context, productID int64) ([]domprod.Review, error) {
	c, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := []domprod.Review{}
	for _, rv := range c.Reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

// ListCollections returns every collection in file order.
func (r *FileRepo) ListCollections(ctx context.Context) ([]domprod.Collection, error) {
	c, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Collections, nil
}

// Seed merges c into the fixture by id, creating the file if absent. The
// file is swapped atomically so readers never see a partial catalog.
func (r *FileRepo) Seed(ctx context.Context, c *domprod.Catalog) error {
	cur, err := r.load(ctx)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	cur.Merge(c)

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".catalog-*.yaml")
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if err := EncodeCatalog(tmp, &cur); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
