package chi

import (
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/search/page"
	catalogsvc "github.com/kailas-cloud/vitrine/internal/usecase/catalog"
	searchsvc "github.com/kailas-cloud/vitrine/internal/usecase/search"
)

// Collection is the collection summary embedded in products.
type Collection struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectedProduct is a catalog item as returned by search and listing.
type ProjectedProduct struct {
	ID                  int64       `json:"id"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	DetailedDescription string      `json:"detailedDescription"`
	Price               float64     `json:"price"`
	Size                []string    `json:"size"`
	Color               *string     `json:"color"`
	Material            string      `json:"material"`
	Category            string      `json:"category"`
	Available           bool        `json:"available"`
	New                 bool        `json:"new"`
	Image1              *string     `json:"image1"`
	Image2              *string     `json:"image2"`
	Image3              *string     `json:"image3"`
	Collection          *Collection `json:"collection"`
	CreatedAt           time.Time   `json:"createdAt"`
}

// Pagination describes the returned page.
type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// SearchInfo echoes how a query was understood.
type SearchInfo struct {
	Query           string   `json:"query"`
	NormalizedQuery string   `json:"normalizedQuery"`
	Keywords        []string `json:"keywords"`
	ResultsFound    int      `json:"resultsFound"`
}

// SearchResponse is the body of GET /products/search.
type SearchResponse struct {
	Data       []ProjectedProduct `json:"data"`
	Search     SearchInfo         `json:"search"`
	Pagination Pagination         `json:"pagination"`
}

// ListResponse is the body of GET /products.
type ListResponse struct {
	Data       []ProjectedProduct `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// ColorsResponse is the body of GET /products/colors.
type ColorsResponse struct {
	Data []string `json:"data"`
}

// Images lists every image slot of a product.
type Images struct {
	Image1 *string `json:"image1"`
	Image2 *string `json:"image2"`
	Image3 *string `json:"image3"`
	Image4 *string `json:"image4"`
	Image5 *string `json:"image5"`
}

// ReviewUser is the public author of a review.
type ReviewUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Review is a product review.
type Review struct {
	ID          int64      `json:"id"`
	Comment     string     `json:"comment"`
	Stars       int        `json:"stars"`
	PublishedAt time.Time  `json:"publishedAt"`
	User        ReviewUser `json:"user"`
}

// ReviewStats summarizes the reviews of a product.
type ReviewStats struct {
	Total        int         `json:"total"`
	AverageStars float64     `json:"averageStars"`
	Distribution map[int]int `json:"distribution"`
}

// ProductDetail is the body of GET /products/{id}.
type ProductDetail struct {
	ID                  int64       `json:"id"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	DetailedDescription string      `json:"detailedDescription"`
	Price               float64     `json:"price"`
	Size                []string    `json:"size"`
	Color               *string     `json:"color"`
	Material            string      `json:"material"`
	Category            string      `json:"category"`
	Available           bool        `json:"available"`
	New                 bool        `json:"new"`
	Images              Images      `json:"images"`
	Collection          *Collection `json:"collection"`
	Reviews             []Review    `json:"reviews"`
	ReviewStats         ReviewStats `json:"reviewStats"`
	CreatedAt           time.Time   `json:"createdAt"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func productToProjected(p product.Product) ProjectedProduct {
	return ProjectedProduct{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		DetailedDescription: p.DetailedDescription,
		Price:               p.Price,
		Size:                p.Size,
		Color:               p.Color,
		Material:            p.Material,
		Category:            p.Category,
		Available:           p.Available,
		New:                 p.New,
		Image1:              imageRef(p.Images[0]),
		Image2:              imageRef(p.Images[1]),
		Image3:              imageRef(p.Images[2]),
		Collection:          collectionToDTO(p.Collection),
		CreatedAt:           p.CreatedAt,
	}
}

func detailToDTO(d *catalogsvc.Detail) ProductDetail {
	p := d.Product
	reviews := make([]Review, len(d.Reviews))
	for i, r := range d.Reviews {
		reviews[i] = Review{
			ID:          r.ID,
			Comment:     r.Comment,
			Stars:       r.Stars,
			PublishedAt: r.PublishedAt,
			User: ReviewUser{
				ID:       r.User.ID,
				Name:     r.User.Name,
				Username: r.User.Username,
			},
		}
	}
	return ProductDetail{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		DetailedDescription: p.DetailedDescription,
		Price:               p.Price,
		Size:                p.Size,
		Color:               p.Color,
		Material:            p.Material,
		Category:            p.Category,
		Available:           p.Available,
		New:                 p.New,
		Images: Images{
			Image1: imageRef(p.Images[0]),
			Image2: imageRef(p.Images[1]),
			Image3: imageRef(p.Images[2]),
			Image4: imageRef(p.Images[3]),
			Image5: imageRef(p.Images[4]),
		},
		Collection: collectionToDTO(p.Collection),
		Reviews:    reviews,
		ReviewStats: ReviewStats{
			Total:        d.Stats.Total,
			AverageStars: d.Stats.AverageStars,
			Distribution: d.Stats.Distribution,
		},
		CreatedAt: p.CreatedAt,
	}
}

func searchToDTO(resp *searchsvc.Response) SearchResponse {
	keywords := resp.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return SearchResponse{
		Data: projectPage(resp.Page),
		Search: SearchInfo{
			Query:           resp.Query,
			NormalizedQuery: resp.NormalizedQuery,
			Keywords:        keywords,
			ResultsFound:    resp.ResultsFound,
		},
		Pagination: paginationToDTO(resp.Page),
	}
}

func projectPage(p page.Page[product.Product]) []ProjectedProduct {
	return page.Map(p, productToProjected).Items
}

func paginationToDTO[T any](p page.Page[T]) Pagination {
	return Pagination{
		Page:            p.Page,
		Limit:           p.Limit,
		Total:           p.Total,
		TotalPages:      p.TotalPages,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	}
}

func collectionToDTO(c *product.Collection) *Collection {
	if c == nil {
		return nil
	}
	return &Collection{ID: c.ID, Title: c.Title, Description: c.Description}
}

func imageRef(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
