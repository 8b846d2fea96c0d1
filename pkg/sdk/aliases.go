package vitrine

import "github.com/kailas-cloud/vitrine/internal/domain/search/alias"

// CategoryAliases returns the query terms that resolve to a category,
// keyed by normalized term.
func CategoryAliases() map[string]string {
	return alias.CategoryAliases()
}

// ColorAliases returns the English color names the engine translates.
func ColorAliases() map[string]string {
	return alias.ColorAliases()
}

// Categories returns the canonical category tokens, sorted.
func Categories() []string {
	return alias.CategoryTokens()
}

// ColorNames returns the translated English color names, sorted.
func ColorNames() []string {
	return alias.ColorNames()
}
