package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/vitrine/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	r, err := New("vestido azul", 2, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Text() != "vestido azul" {
		t.Errorf("Text() = %q", r.Text())
	}
	if r.Page() != 2 {
		t.Errorf("Page() = %d", r.Page())
	}
	if r.Limit() != 25 {
		t.Errorf("Limit() = %d", r.Limit())
	}
}

func TestNew_Defaults(t *testing.T) {
	r, err := New("dress", DefaultPage, DefaultLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Page() != 1 || r.Limit() != 10 {
		t.Errorf("got page=%d limit=%d", r.Page(), r.Limit())
	}
}

func TestNew_KeepsRawText(t *testing.T) {
	r, err := New("  Vestidos  ", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Text() != "  Vestidos  " {
		t.Errorf("Text() = %q, want untouched input", r.Text())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		page, limit int
		wantMsg     string
	}{
		{"empty query", "", 1, 10, `"q" is required`},
		{"blank query", "   \t", 1, 10, `"q" is required`},
		{"page zero", "dress", 0, 10, "positive"},
		{"negative page", "dress", -1, 10, "positive"},
		{"limit zero", "dress", 1, 0, "positive"},
		{"limit over max", "dress", 1, 150, "cannot exceed 100"},
		{"query too long", strings.Repeat("a", MaxQueryLength+1), 1, 10, "too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.text, tt.page, tt.limit)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("expected ErrInvalidQuery, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidatePaging_Boundaries(t *testing.T) {
	if err := ValidatePaging(1, MaxLimit); err != nil {
		t.Errorf("limit=%d should be valid: %v", MaxLimit, err)
	}
	if err := ValidatePaging(1, 1); err != nil {
		t.Errorf("limit=1 should be valid: %v", err)
	}
	if err := ValidatePaging(1, MaxLimit+1); err == nil {
		t.Error("limit over max should fail")
	}
}
