package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/vitrine/internal/domain/product/filter"
	"github.com/kailas-cloud/vitrine/internal/domain/search/request"
	catalogsvc "github.com/kailas-cloud/vitrine/internal/usecase/catalog"
)

// SearchParams are the query parameters of GET /products/search.
type SearchParams struct {
	Q     *string
	Page  *int
	Limit *int
}

// ListParams are the query parameters of GET /products.
type ListParams struct {
	Page      *int
	Limit     *int
	Categoria *string
	Colecao   *string
	Preco     *string
	Material  *string
	Tamanhos  *string
	Cores     *string
}

// queryParam binds one optional form-style query parameter.
type queryParam struct {
	name string
	dest any
}

func bindQuery(r *http.Request, params ...queryParam) error {
	q := r.URL.Query()
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, false, p.name, q, p.dest); err != nil {
			return err //nolint:wrapcheck // binder errors already name the parameter
		}
	}
	return nil
}

func bindSearchParams(r *http.Request) (SearchParams, error) {
	var p SearchParams
	err := bindQuery(r,
		queryParam{"q", &p.Q},
		queryParam{"page", &p.Page},
		queryParam{"limit", &p.Limit},
	)
	return p, err
}

func bindListParams(r *http.Request) (ListParams, error) {
	var p ListParams
	err := bindQuery(r,
		queryParam{"page", &p.Page},
		queryParam{"limit", &p.Limit},
		queryParam{"categoria", &p.Categoria},
		queryParam{"colecao", &p.Colecao},
		queryParam{"preco", &p.Preco},
		queryParam{"material", &p.Material},
		queryParam{"tamanhos", &p.Tamanhos},
		queryParam{"cores", &p.Cores},
	)
	return p, err
}

// bindProductID binds the {id} path segment.
func bindProductID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	return id, err //nolint:wrapcheck // binder errors already name the parameter
}

// toListQuery converts bound parameters into a catalog query. Unknown price
// buckets do not constrain the listing.
func (p *ListParams) toListQuery() catalogsvc.ListQuery {
	q := catalogsvc.ListQuery{
		Page:  derefInt(p.Page, request.DefaultPage),
		Limit: derefInt(p.Limit, request.DefaultLimit),
		Filter: filter.Filter{
			Category: derefString(p.Categoria),
			Material: derefString(p.Material),
			Sizes:    filter.SplitList(derefString(p.Tamanhos)),
			Colors:   filter.SplitList(derefString(p.Cores)),
		},
		Collection: derefString(p.Colecao),
	}
	if bucket := filter.PriceBucket(derefString(p.Preco)); bucket.IsValid() {
		q.Filter.Price = bucket
	}
	return q
}

func derefInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
