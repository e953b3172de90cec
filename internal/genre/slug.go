// Package genre provides genre slugs and matches user-typed genre names to dataset labels.
package genre

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify reduces a genre label to lowercase ASCII words joined by hyphens.
// Accents are dropped and "&" reads as "and":
//
//	"Science Fiction"    -> "science-fiction"
//	"Action & Adventure" -> "action-and-adventure"
//	"Cinéma Vérité"      -> "cinema-verite"
func Slugify(s string) string {
	var b strings.Builder
	pending := false

	word := func(w string) {
		if pending && b.Len() > 0 {
			b.WriteByte('-')
		}
		pending = false
		b.WriteString(w)
	}

	for _, r := range norm.NFKD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining accent left over from decomposition
		case r == '&':
			pending = true
			word("and")
			pending = true
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			word(string(unicode.ToLower(r)))
		default:
			pending = true
		}
	}
	return b.String()
}

// Index maps the slugs of a dataset's genre labels back to the labels.
type Index map[string]string

// NewIndex indexes labels by slug. The first label wins on a slug collision.
func NewIndex(labels []string) Index {
	idx := make(Index, len(labels))
	for _, label := range labels {
		slug := Slugify(label)
		if _, seen := idx[slug]; !seen && slug != "" {
			idx[slug] = label
		}
	}
	return idx
}

// Lookup resolves name by slug, then through CanonicalAliases.
func (idx Index) Lookup(name string) (string, bool) {
	slug := Slugify(name)
	if slug == "" {
		return "", false
	}
	if label, ok := idx[slug]; ok {
		return label, true
	}
	if canonical, ok := CanonicalAliases[slug]; ok {
		label, ok := idx[canonical]
		return label, ok
	}
	return "", false
}
