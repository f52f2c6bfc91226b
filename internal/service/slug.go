package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// slugify converts a title into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Returns "" when nothing survives (e.g. a title
// made only of symbols).
func slugify(title string) string {
	s := strings.ToLower(title)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// fallbackSlug builds a slug for titles that normalize to nothing.
func fallbackSlug(now time.Time) string {
	return fmt.Sprintf("blog-post-%d", now.UnixMilli())
}
