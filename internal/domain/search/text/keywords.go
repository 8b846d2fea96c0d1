package text

import (
	"strings"
	"unicode/utf8"
)

var stopwords = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "para": {}, "com": {}, "em": {},
	"a": {}, "o": {}, "e": {},
	"the": {}, "and": {}, "of": {}, "in": {}, "to": {},
}

// IsStopword reports whether w is a connective excluded from keywords.
// w must already be normalized.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

// ExtractKeywords returns the significant, singularized terms of query,
// deduplicated in first-occurrence order.
func ExtractKeywords(query string) []string {
	fields := strings.Fields(Normalize(query))
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= 1 || IsStopword(f) {
			continue
		}
		kw := Singularize(f)
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
