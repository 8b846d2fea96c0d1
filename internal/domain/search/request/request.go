package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/vitrine/internal/domain"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length in characters.
	MaxQueryLength = 4096
	DefaultPage    = 1
	DefaultLimit   = 10
	MaxLimit       = 100
)

// Request is a validated search query.
type Request struct {
	text  string
	page  int
	limit int
}

// New validates search parameters. Callers substitute DefaultPage and
// DefaultLimit for absent values; explicit values are never clamped.
func New(text string, page, limit int) (Request, error) {
	if strings.TrimSpace(text) == "" {
		return Request{}, fmt.Errorf(`%w: search parameter "q" is required`, domain.ErrInvalidQuery)
	}
	if utf8.RuneCountInString(text) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if err := ValidatePaging(page, limit); err != nil {
		return Request{}, err
	}
	return Request{text: text, page: page, limit: limit}, nil
}

// ValidatePaging checks page and limit bounds shared by search and listing.
func ValidatePaging(page, limit int) error {
	if page < 1 || limit < 1 {
		return fmt.Errorf("%w: page and limit must be positive numbers", domain.ErrInvalidQuery)
	}
	if limit > MaxLimit {
		return fmt.Errorf("%w: limit cannot exceed %d", domain.ErrInvalidQuery, MaxLimit)
	}
	return nil
}

// Text returns the raw query as the caller sent it.
func (r *Request) Text() string { return r.text }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }
