package text

import (
	"strings"
	"unicode/utf8"
)

// Singularize drops a trailing "s" from words longer than three characters.
// It is a plural heuristic, not a stemmer: irregular plurals stay as they are and
// words with a genuine terminal "s" ("lens") lose it.
func Singularize(word string) string {
	if utf8.RuneCountInString(word) > 3 && strings.HasSuffix(word, "s") {
		return word[:len(word)-1]
	}
	return word
}
