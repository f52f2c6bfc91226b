package service

import (
	"regexp"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"My First Post", "my-first-post"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"CamelCase Title", "camelcase-title"},
		{"multiple---hyphens & symbols!!", "multiple-hyphens-symbols"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
		{"", ""},
		{"日本語タイトル", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.title); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

// TestSlugify_Deterministic verifies deriving twice from the same title
// yields the same slug.
func TestSlugify_Deterministic(t *testing.T) {
	titles := []string{"Hello, World! 2024", "Go 1.24 Released", "a  b  c"}
	for _, title := range titles {
		first := slugify(title)
		second := slugify(title)
		if first != second {
			t.Errorf("slugify(%q) not deterministic: %q vs %q", title, first, second)
		}
	}
}

// TestSlugify_Charset verifies slugs contain only lowercase alphanumerics
// and single hyphens, with no leading/trailing hyphen.
func TestSlugify_Charset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	titles := []string{
		"Hello, World! 2024",
		"A--B--C",
		"UPPER lower 123",
		"trailing symbols ...",
		"... leading symbols",
	}
	for _, title := range titles {
		got := slugify(title)
		if got == "" {
			t.Errorf("slugify(%q) unexpectedly empty", title)
			continue
		}
		if !valid.MatchString(got) {
			t.Errorf("slugify(%q) = %q violates slug charset", title, got)
		}
	}
}

func TestFallbackSlug(t *testing.T) {
	now := time.UnixMilli(1735689600000)
	got := fallbackSlug(now)
	want := "blog-post-1735689600000"
	if got != want {
		t.Errorf("fallbackSlug = %q, want %q", got, want)
	}
}
