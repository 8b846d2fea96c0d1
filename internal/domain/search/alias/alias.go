// Package alias resolves surface forms in English and Portuguese to canonical
// category and color tokens. Tables are fixed at build time and exposed read-only.
package alias

import (
	"maps"
	"slices"
)

// Canonical category tokens.
const (
	CategoryDress       = "vestido"
	CategoryShirt       = "camiseta"
	CategoryBikini      = "biquini"
	CategorySwimsuit    = "maio"
	CategoryShorts      = "short"
	CategorySkirt       = "saia"
	CategoryBeachTowel  = "canga"
	CategorySandal      = "sandalia"
	CategoryFlipFlop    = "chinelo"
	CategoryUmbrella    = "sombrinha"
	CategoryBag         = "bolsa"
	CategoryBeachwear   = "praia"
	CategoryClothing    = "roupas"
	CategoryFootwear    = "calçados"
	CategoryAccessories = "acessorios"
	CategoryNewArrivals = "novidades"
)

// categories maps normalized aliases to canonical category tokens. Keys are
// already accent-free so lookups against normalized terms hit them.
var categories = map[string]string{
	"dress":    CategoryDress,
	"dresses":  CategoryDress,
	"vestido":  CategoryDress,
	"vestidos": CategoryDress,
	"vest":     CategoryDress,

	"shirt":     CategoryShirt,
	"tshirt":    CategoryShirt,
	"t-shirt":   CategoryShirt,
	"camiseta":  CategoryShirt,
	"camisetas": CategoryShirt,

	"bikini":   CategoryBikini,
	"biquini":  CategoryBikini,
	"biquinis": CategoryBikini,

	"swimsuit":  CategorySwimsuit,
	"swimsuits": CategorySwimsuit,
	"maio":      CategorySwimsuit,
	"maios":     CategorySwimsuit,

	"short":  CategoryShorts,
	"shorts": CategoryShorts,

	"skirt":  CategorySkirt,
	"skirts": CategorySkirt,
	"saia":   CategorySkirt,
	"saias":  CategorySkirt,

	"beach towel": CategoryBeachTowel,
	"towel":       CategoryBeachTowel,
	"beachtowel":  CategoryBeachTowel,
	"canga":       CategoryBeachTowel,
	"cangas":      CategoryBeachTowel,

	"sandal":    CategorySandal,
	"sandals":   CategorySandal,
	"sandalia":  CategorySandal,
	"sandalias": CategorySandal,

	"flip flop": CategoryFlipFlop,
	"flip-flop": CategoryFlipFlop,
	"flipflop":  CategoryFlipFlop,
	"flip":      CategoryFlipFlop,
	"chinelo":   CategoryFlipFlop,
	"chinelos":  CategoryFlipFlop,

	"umbrella":       CategoryUmbrella,
	"beach umbrella": CategoryUmbrella,
	"beachumbrella":  CategoryUmbrella,
	"sombrinha":      CategoryUmbrella,
	"sombrinhas":     CategoryUmbrella,

	"bag":       CategoryBag,
	"bags":      CategoryBag,
	"beach bag": CategoryBag,
	"beachbag":  CategoryBag,
	"bolsa":     CategoryBag,
	"bolsas":    CategoryBag,

	"beachwear": CategoryBeachwear,
	"swimwear":  CategoryBeachwear,
	"beach":     CategoryBeachwear,
	"praia":     CategoryBeachwear,

	"clothing": CategoryClothing,
	"clothes":  CategoryClothing,
	"roupas":   CategoryClothing,

	"shoes":    CategoryFootwear,
	"footwear": CategoryFootwear,
	"calcados": CategoryFootwear,

	"accessories": CategoryAccessories,
	"acessorios":  CategoryAccessories,

	"new":       CategoryNewArrivals,
	"news":      CategoryNewArrivals,
	"novelty":   CategoryNewArrivals,
	"novelties": CategoryNewArrivals,
	"novidades": CategoryNewArrivals,
}

// colors maps English color names to the localized names used in the catalog.
var colors = map[string]string{
	"red":    "Vermelho",
	"blue":   "Azul",
	"green":  "Verde",
	"yellow": "Amarelo",
	"black":  "Preto",
	"white":  "Branco",
	"pink":   "Rosa",
	"purple": "Roxo",
	"orange": "Laranja",
	"brown":  "Marrom",
	"gray":   "Cinza",
	"grey":   "Cinza",

	// palette shades
	"coral":    "Coral",
	"cinnamon": "Canela",
	"wine":     "Vinho",
	"daffodil": "Narciso",
	"lime":     "Lima",
	"moss":     "Musgo",
	"pool":     "Piscina",
	"marine":   "Marine",
	"lilac":    "Lilás",
	"beige":    "Bege",
}

// Category resolves term to its canonical category. Exact match only.
func Category(term string) (string, bool) {
	c, ok := categories[term]
	return c, ok
}

// Color resolves an English color name to its localized canonical name.
func Color(term string) (string, bool) {
	c, ok := colors[term]
	return c, ok
}

// CategoryAliases returns a copy of the category table.
func CategoryAliases() map[string]string {
	return maps.Clone(categories)
}

// ColorNames returns the English color names the table translates, sorted.
func ColorNames() []string {
	return slices.Sorted(maps.Keys(colors))
}

// ColorAliases returns a copy of the color table.
func ColorAliases() map[string]string {
	return maps.Clone(colors)
}

// CategoryTokens returns the distinct canonical category tokens, sorted.
func CategoryTokens() []string {
	seen := make(map[string]struct{}, 16)
	for _, c := range categories {
		seen[c] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}
