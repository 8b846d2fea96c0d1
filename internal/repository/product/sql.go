package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/vitrine/internal/db/sqldb"
	"github.com/kailas-cloud/vitrine/internal/domain"
	domprod "github.com/kailas-cloud/vitrine/internal/domain/product"
)

// schema is portable between PostgreSQL and SQLite. Sizes are stored
// comma-joined; timestamps are written in UTC.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS collections (
		id          BIGINT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id                   BIGINT PRIMARY KEY,
		name                 TEXT NOT NULL,
		description          TEXT NOT NULL DEFAULT '',
		detailed_description TEXT NOT NULL DEFAULT '',
		category             TEXT NOT NULL DEFAULT '',
		material             TEXT NOT NULL DEFAULT '',
		color                TEXT,
		price                DOUBLE PRECISION NOT NULL DEFAULT 0,
		size                 TEXT,
		available            BOOLEAN NOT NULL DEFAULT TRUE,
		is_new               BOOLEAN NOT NULL DEFAULT FALSE,
		image1               TEXT NOT NULL DEFAULT '',
		image2               TEXT NOT NULL DEFAULT '',
		image3               TEXT NOT NULL DEFAULT '',
		image4               TEXT NOT NULL DEFAULT '',
		image5               TEXT NOT NULL DEFAULT '',
		collection_id        BIGINT REFERENCES collections (id),
		created_at           TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id            BIGINT PRIMARY KEY,
		product_id    BIGINT NOT NULL REFERENCES products (id),
		comment       TEXT NOT NULL DEFAULT '',
		stars         INTEGER NOT NULL,
		published_at  TIMESTAMP NOT NULL,
		user_id       BIGINT NOT NULL DEFAULT 0,
		user_name     TEXT NOT NULL DEFAULT '',
		user_username TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_product_id_idx ON reviews (product_id)`,
}

const productColumns = `p.id, p.name, p.description, p.detailed_description, p.category,
	p.material, p.color, p.price, p.size, p.available, p.is_new,
	p.image1, p.image2, p.image3, p.image4, p.image5, p.created_at,
	c.id, c.title, c.description`

const productFrom = ` FROM products p LEFT JOIN collections c ON c.id = p.collection_id`

// sqlStore is the consumer interface for relational catalogs (ISP).
type sqlStore interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	InTx(ctx context.Context, fn func(tx *sqldb.Tx) error) error
}

// SQLRepo reads the catalog from PostgreSQL or SQLite.
type SQLRepo struct {
	db sqlStore
}

// NewSQL creates a relational repository.
func NewSQL(db sqlStore) *SQLRepo {
	return &SQLRepo{db: db}
}

// EnsureSchema creates the catalog tables if they do not exist.
func (r *SQLRepo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// FetchAllProjected returns every product ordered by id.
func (r *SQLRepo) FetchAllProjected(ctx context.Context) ([]domprod.Product, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+productColumns+productFrom+" ORDER BY p.id")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	out := []domprod.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

// Get returns a product by id.
func (r *SQLRepo) Get(ctx context.Context, id int64) (domprod.Product, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+productColumns+productFrom+" WHERE p.id = ?", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domprod.Product{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		}
		return domprod.Product{}, err
	}
	return p, nil
}

// ListReviews returns the reviews of one product, newest first.
func (r *SQLRepo) ListReviews(ctx context.Context, productID int64) ([]domprod.Review, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, product_id, comment, stars, published_at,
		user_id, user_name, user_username
		FROM reviews WHERE product_id = ? ORDER BY published_at DESC, id DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	out := []domprod.Review{}
	for rows.Next() {
		var rv domprod.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.Comment, &rv.Stars, &rv.PublishedAt,
			&rv.User.ID, &rv.User.Name, &rv.User.Username); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return out, nil
}

// ListCollections returns every collection ordered by id.
func (r *SQLRepo) ListCollections(ctx context.Context) ([]domprod.Collection, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, description FROM collections ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	out := []domprod.Collection{}
	for rows.Next() {
		var c domprod.Collection
		if err := rows.Scan(&c.ID, &c.Title, &c.Description); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return out, nil
}

// Seed creates the schema and upserts the whole catalog in one transaction.
func (r *SQLRepo) Seed(ctx context.Context, c *domprod.Catalog) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}
	f := catalogToFixture(c)

	err := r.db.InTx(ctx, func(tx *sqldb.Tx) error {
		for _, col := range f.Collections {
			if _, err := tx.ExecContext(ctx, `INSERT INTO collections (id, title, description)
				VALUES (?, ?, ?)
				ON CONFLICT (id) DO UPDATE SET title = excluded.title, description = excluded.description`,
				col.ID, col.Title, col.Description); err != nil {
				return fmt.Errorf("upsert collection %d: %w", col.ID, err)
			}
		}
		for i := range f.Products {
			if err := upsertProduct(ctx, tx, &f.Products[i]); err != nil {
				return err
			}
		}
		for _, rv := range f.Reviews {
			if _, err := tx.ExecContext(ctx, `INSERT INTO reviews
				(id, product_id, comment, stars, published_at, user_id, user_name, user_username)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO UPDATE SET product_id = excluded.product_id,
					comment = excluded.comment, stars = excluded.stars,
					published_at = excluded.published_at, user_id = excluded.user_id,
					user_name = excluded.user_name, user_username = excluded.user_username`,
				rv.ID, rv.ProductID, rv.Comment, rv.Stars, rv.PublishedAt,
				rv.User.ID, rv.User.Name, rv.User.Username); err != nil {
				return fmt.Errorf("upsert review %d: %w", rv.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

func upsertProduct(ctx context.Context, tx *sqldb.Tx, p *productRecord) error {
	var size any
	if len(p.Size) > 0 {
		size = strings.Join(p.Size, ",")
	}
	available := true
	if p.Available != nil {
		available = *p.Available
	}

	_, err := tx.ExecContext(ctx, `INSERT INTO products
		(id, name, description, detailed_description, category, material, color, price, size,
		 available, is_new, image1, image2, image3, image4, image5, collection_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, description = excluded.description,
			detailed_description = excluded.detailed_description, category = excluded.category,
			material = excluded.material, color = excluded.color, price = excluded.price,
			size = excluded.size, available = excluded.available, is_new = excluded.is_new,
			image1 = excluded.image1, image2 = excluded.image2, image3 = excluded.image3,
			image4 = excluded.image4, image5 = excluded.image5,
			collection_id = excluded.collection_id, created_at = excluded.created_at`,
		p.ID, p.Name, p.Description, p.DetailedDescription, p.Category, p.Material, p.Color,
		p.Price, size, available, p.New, p.Image1, p.Image2, p.Image3, p.Image4, p.Image5,
		p.CollectionID, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert product %d: %w", p.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domprod.Product, error) {
	var (
		p         domprod.Product
		color     sql.NullString
		size      sql.NullString
		createdAt time.Time
		colID     sql.NullInt64
		colTitle  sql.NullString
		colDesc   sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.DetailedDescription, &p.Category,
		&p.Material, &color, &p.Price, &size, &p.Available, &p.New,
		&p.Images[0], &p.Images[1], &p.Images[2], &p.Images[3], &p.Images[4], &createdAt,
		&colID, &colTitle, &colDesc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domprod.Product{}, err
		}
		return domprod.Product{}, fmt.Errorf("scan product: %w", err)
	}

	if color.Valid && strings.TrimSpace(color.String) != "" {
		c := color.String
		p.Color = &c
	}
	if size.Valid {
		p.Size = cleanSizes(strings.Split(size.String, ","))
	}
	p.CreatedAt = createdAt
	if colID.Valid {
		p.Collection = &domprod.Collection{ID: colID.Int64, Title: colTitle.String, Description: colDesc.String}
	}
	return p, nil
}
