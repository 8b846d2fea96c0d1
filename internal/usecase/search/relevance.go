package search

import (
	"slices"
	"strings"
	"time"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/search/alias"
	"github.com/kailas-cloud/vitrine/internal/domain/search/text"
)

// Rule contributions. Field factors are multiplied by the field weight.
const (
	BonusCategoryExact   = 100
	BonusCategoryPartial = 80
	BonusNewFlag         = 100
	BonusRecent          = 50
	BonusNewCategory     = 25

	FactorColor     = 8
	FactorFullQuery = 10
	FactorExact     = 5
	FactorPartial   = 2
)

// NewArrivalsWindow is how far back a product still counts as recent.
const NewArrivalsWindow = 30 * 24 * time.Hour

// Field weights.
const (
	WeightName                = 5
	WeightCategory            = 4
	WeightDescription         = 2
	WeightDetailedDescription = 1
	WeightMaterial            = 3
	WeightColor               = 2
)

type scoredField struct {
	name   string
	weight int
	value  func(p *product.Product) string
}

var scoredFields = []scoredField{
	{"name", WeightName, func(p *product.Product) string { return p.Name }},
	{"category", WeightCategory, func(p *product.Product) string { return p.Category }},
	{"description", WeightDescription, func(p *product.Product) string { return p.Description }},
	{"detailedDescription", WeightDetailedDescription, func(p *product.Product) string { return p.DetailedDescription }},
	{"material", WeightMaterial, func(p *product.Product) string { return p.Material }},
	{"color", WeightColor, func(p *product.Product) string { return p.ColorValue() }},
}

var (
	newArrivalQueries    = []string{"novidades", "new", "novidade", "new arrivals"}
	newArrivalKeywords   = []string{"new", "novidades"}
	newArrivalCategories = []string{"vestido", "biquini", "maio", "short", "saia", "camiseta"}
)

// Breakdown is a score split by rule. Total() is the relevance score.
type Breakdown struct {
	Category    int
	NewArrivals int
	Fields      map[string]int
}

// Total sums every contribution.
func (b Breakdown) Total() int {
	total := b.Category + b.NewArrivals
	for _, v := range b.Fields {
		total += v
	}
	return total
}

// Scorer computes relevance. Now is captured once per request so every
// candidate is judged against the same clock reading.
type Scorer struct {
	Now time.Time
}

// Score returns the non-negative relevance of p. keywords come from
// text.ExtractKeywords and normalizedQuery from text.Normalize.
func (s Scorer) Score(p *product.Product, keywords []string, normalizedQuery string) int {
	return s.Breakdown(p, keywords, normalizedQuery).Total()
}

// Breakdown returns the per-rule contributions behind Score.
func (s Scorer) Breakdown(p *product.Product, keywords []string, normalizedQuery string) Breakdown {
	b := Breakdown{Fields: make(map[string]int, len(scoredFields))}

	if wanted, ok := CategoryIntent(keywords, normalizedQuery); ok {
		b.Category = categoryBonus(text.Normalize(p.Category), wanted)
	}

	if IsNewArrivalsIntent(keywords, normalizedQuery) {
		b.NewArrivals = s.newArrivalsBonus(p)
	}

	colors := resolveColors(keywords)
	for _, f := range scoredFields {
		b.Fields[f.name] = fieldScore(f.value(p), f.weight, keywords, colors, normalizedQuery)
	}
	return b
}

// CategoryIntent resolves the category a query asks for. The full normalized
// query is tried first, then each keyword in extraction order; the first alias
// hit wins. The canonical token is returned normalized.
func CategoryIntent(keywords []string, normalizedQuery string) (string, bool) {
	if c, ok := alias.Category(normalizedQuery); ok {
		return text.Normalize(c), true
	}
	for _, kw := range keywords {
		if c, ok := alias.Category(kw); ok {
			return text.Normalize(c), true
		}
	}
	return "", false
}

// IsNewArrivalsIntent reports whether the query asks for new arrivals.
func IsNewArrivalsIntent(keywords []string, normalizedQuery string) bool {
	if slices.Contains(newArrivalQueries, normalizedQuery) {
		return true
	}
	for _, kw := range keywords {
		if slices.Contains(newArrivalKeywords, kw) {
			return true
		}
	}
	return false
}

// categoryBonus compares a normalized product category with the wanted one.
// An empty category is a substring of any wanted token and earns the
// partial bonus.
func categoryBonus(have, wanted string) int {
	switch {
	case have == wanted:
		return BonusCategoryExact
	case strings.Contains(have, wanted) || strings.Contains(wanted, have):
		return BonusCategoryPartial
	default:
		return 0
	}
}

func (s Scorer) newArrivalsBonus(p *product.Product) int {
	bonus := 0
	if p.New {
		bonus += BonusNewFlag
	}
	if p.CreatedAt.After(s.Now.Add(-NewArrivalsWindow)) {
		bonus += BonusRecent
	}
	if slices.Contains(newArrivalCategories, strings.ToLower(p.Category)) {
		bonus += BonusNewCategory
	}
	return bonus
}

// resolveColors maps each keyword to its normalized canonical color ("" if none).
func resolveColors(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		if c, ok := alias.Color(kw); ok {
			out[i] = text.Normalize(c)
		}
	}
	return out
}

func fieldScore(value string, weight int, keywords, colors []string, normalizedQuery string) int {
	field := text.Normalize(value)
	singular := text.Singularize(field)
	score := 0

	if field == normalizedQuery || singular == normalizedQuery {
		score += weight * FactorFullQuery
	}

	for i, kw := range keywords {
		if c := colors[i]; c != "" && (strings.Contains(field, c) || strings.Contains(singular, c)) {
			score += weight * FactorColor
		}

		kwSingular := text.Singularize(kw)
		switch {
		case field == kw || field == kwSingular || singular == kw || singular == kwSingular:
			score += weight * FactorExact
		case partialMatch(field, singular, kw, kwSingular):
			score += weight * FactorPartial
		}
	}
	return score
}

// partialMatch checks substring containment in either direction between the
// field forms and the keyword forms. Empty fields never match.
func partialMatch(field, singular, kw, kwSingular string) bool {
	if field == "" {
		return false
	}
	for _, f := range [2]string{field, singular} {
		for _, k := range [2]string{kw, kwSingular} {
			if strings.Contains(f, k) || strings.Contains(k, f) {
				return true
			}
		}
	}
	return false
}
