package product

import (
	"strings"
	"time"

	domprod "github.com/kailas-cloud/vitrine/internal/domain/product"
)

// productRecord is the stored shape of a product (Redis JSON value, fixture entry).
type productRecord struct {
	ID                  int64     `json:"id" yaml:"id"`
	Name                string    `json:"name" yaml:"name"`
	Description         string    `json:"description" yaml:"description"`
	DetailedDescription string    `json:"detailedDescription" yaml:"detailedDescription"`
	Category            string    `json:"category" yaml:"category"`
	Material            string    `json:"material" yaml:"material"`
	Color               *string   `json:"color" yaml:"color"`
	Price               float64   `json:"price" yaml:"price"`
	Size                []string  `json:"size" yaml:"size"`
	Available           *bool     `json:"available" yaml:"available"`
	New                 bool      `json:"new" yaml:"new"`
	Image1              string    `json:"image1" yaml:"image1"`
	Image2              string    `json:"image2" yaml:"image2"`
	Image3              string    `json:"image3" yaml:"image3"`
	Image4              string    `json:"image4" yaml:"image4"`
	Image5              string    `json:"image5" yaml:"image5"`
	CollectionID        *int64    `json:"collectionId" yaml:"collectionId"`
	CreatedAt           time.Time `json:"createdAt" yaml:"createdAt"`
}

type collectionRecord struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type reviewUserRecord struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Username string `json:"username" yaml:"username"`
}

type reviewRecord struct {
	ID          int64            `json:"id" yaml:"id"`
	ProductID   int64            `json:"productId" yaml:"productId"`
	Comment     string           `json:"comment" yaml:"comment"`
	Stars       int              `json:"stars" yaml:"stars"`
	PublishedAt time.Time        `json:"publishedAt" yaml:"publishedAt"`
	User        reviewUserRecord `json:"user" yaml:"user"`
}

// fixture is the seed file layout: {collections, products, reviews}.
type fixture struct {
	Collections []collectionRecord `json:"collections" yaml:"collections"`
	Products    []productRecord    `json:"products" yaml:"products"`
	Reviews     []reviewRecord     `json:"reviews" yaml:"reviews"`
}

// toDomain converts a record. Blank colors and sizes become unset; available
// defaults to true.
func (r *productRecord) toDomain(col *domprod.Collection) domprod.Product {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return domprod.Product{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		DetailedDescription: r.DetailedDescription,
		Category:            r.Category,
		Material:            r.Material,
		Color:               nullIfBlank(r.Color),
		Price:               r.Price,
		Size:                cleanSizes(r.Size),
		Available:           available,
		New:                 r.New,
		Images:              [domprod.ImageSlots]string{r.Image1, r.Image2, r.Image3, r.Image4, r.Image5},
		CreatedAt:           r.CreatedAt,
		Collection:          col,
	}
}

func productToRecord(p *domprod.Product) productRecord {
	available := p.Available
	rec := productRecord{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		DetailedDescription: p.DetailedDescription,
		Category:            p.Category,
		Material:            p.Material,
		Color:               nullIfBlank(p.Color),
		Price:               p.Price,
		Size:                cleanSizes(p.Size),
		Available:           &available,
		New:                 p.New,
		Image1:              p.Images[0],
		Image2:              p.Images[1],
		Image3:              p.Images[2],
		Image4:              p.Images[3],
		Image5:              p.Images[4],
		CreatedAt:           p.CreatedAt.UTC(),
	}
	if p.Collection != nil {
		id := p.Collection.ID
		rec.CollectionID = &id
	}
	return rec
}

func (r *collectionRecord) toDomain() domprod.Collection {
	return domprod.Collection{ID: r.ID, Title: r.Title, Description: r.Description}
}

func collectionToRecord(c *domprod.Collection) collectionRecord {
	return collectionRecord{ID: c.ID, Title: c.Title, Description: c.Description}
}

func (r *reviewRecord) toDomain() domprod.Review {
	return domprod.Review{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Comment:     r.Comment,
		Stars:       r.Stars,
		PublishedAt: r.PublishedAt,
		User:        domprod.ReviewUser{ID: r.User.ID, Name: r.User.Name, Username: r.User.Username},
	}
}

func reviewToRecord(rv *domprod.Review) reviewRecord {
	return reviewRecord{
		ID:          rv.ID,
		ProductID:   rv.ProductID,
		Comment:     rv.Comment,
		Stars:       rv.Stars,
		PublishedAt: rv.PublishedAt.UTC(),
		User:        reviewUserRecord{ID: rv.User.ID, Name: rv.User.Name, Username: rv.User.Username},
	}
}

// toCatalog resolves collection references. Unknown collection ids are dropped.
func (f *fixture) toCatalog() domprod.Catalog {
	cat := domprod.Catalog{
		Collections: make([]domprod.Collection, 0, len(f.Collections)),
		Products:    make([]domprod.Product, 0, len(f.Products)),
		Reviews:     make([]domprod.Review, 0, len(f.Reviews)),
	}
	byID := make(map[int64]*domprod.Collection, len(f.Collections))
	for i := range f.Collections {
		c := f.Collections[i].toDomain()
		cat.Collections = append(cat.Collections, c)
		byID[c.ID] = &c
	}
	for i := range f.Products {
		var col *domprod.Collection
		if id := f.Products[i].CollectionID; id != nil {
			col = byID[*id]
		}
		cat.Products = append(cat.Products, f.Products[i].toDomain(col))
	}
	for i := range f.Reviews {
		cat.Reviews = append(cat.Reviews, f.Reviews[i].toDomain())
	}
	return cat
}

func catalogToFixture(c *domprod.Catalog) fixture {
	f := fixture{
		Collections: make([]collectionRecord, len(c.Collections)),
		Products:    make([]productRecord, len(c.Products)),
		Reviews:     make([]reviewRecord, len(c.Reviews)),
	}
	for i := range c.Collections {
		f.Collections[i] = collectionToRecord(&c.Collections[i])
	}
	for i := range c.Products {
		f.Products[i] = productToRecord(&c.Products[i])
	}
	for i := range c.Reviews {
		f.Reviews[i] = reviewToRecord(&c.Reviews[i])
	}
	return f
}

func nullIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func cleanSizes(sizes []string) []string {
	var out []string
	for _, s := range sizes {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
