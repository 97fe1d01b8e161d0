package category

import (
	"strings"
	"unicode"
)

// normalize lower-cases text and turns every run of non-alphanumerics into
// a single space, padded on both sides.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 2)
	b.WriteByte(' ')
	space := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	if !space {
		b.WriteByte(' ')
	}
	return b.String()
}

// containsWord reports whether keyword starts a word in normalized text, so
// "toy" matches "toys" but "art" does not match "party".
func containsWord(normalized, keyword string) bool {
	return strings.Contains(normalized, " "+keyword)
}

func matchesAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if containsWord(normalized, kw) {
			return true
		}
	}
	return false
}

// searchQuery builds the similarity search query: the title plus the first
// five words of the description, capped at 100 characters.
func searchQuery(title, description string) string {
	q := title
	if words := strings.Fields(description); len(words) > 0 {
		if len(words) > 5 {
			words = words[:5]
		}
		q = strings.TrimSpace(q + " " + strings.Join(words, " "))
	}
	if r := []rune(q); len(r) > maxQueryLen {
		q = strings.TrimSpace(string(r[:maxQueryLen]))
	}
	return q
}
