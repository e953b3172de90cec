package genre

// CanonicalAliases maps common spellings to the slug of the dataset's label.
var CanonicalAliases = map[string]string{
	"sci-fi":            "science-fiction",
	"scifi":             "science-fiction",
	"sf":                "science-fiction",
	"animated":          "animation",
	"cartoon":           "animation",
	"biopic":            "biography",
	"bio":               "biography",
	"doc":               "documentary",
	"docs":              "documentary",
	"romcom":            "romance",
	"rom-com":           "romance",
	"romantic":          "romance",
	"musical":           "music",
	"kids":              "family",
	"children":          "family",
	"historical":        "history",
	"period":            "history",
	"suspense":          "thriller",
	"thrillers":         "thriller",
	"scary":             "horror",
	"slasher":           "horror",
	"whodunit":          "mystery",
	"war-film":          "war",
	"cowboy":            "western",
	"spaghetti-western": "western",
	"tv":                "tv-movie",
	"made-for-tv":       "tv-movie",
	"crime-drama":       "crime",
	"action-adventure":  "action",
}

// Resolve matches name against known labels by slug, falling back to
// CanonicalAliases. It returns the known label and whether a match was found.
func Resolve(name string, known []string) (string, bool) {
	return NewIndex(known).Lookup(name)
}

// ResolveAll resolves every name, keeping unmatched names unchanged so they
// simply select nothing.
func ResolveAll(names, known []string) []string {
	idx := NewIndex(known)
	out := make([]string, 0, len(names))
	for _, name := range names {
		if label, ok := idx.Lookup(name); ok {
			out = append(out, label)
			continue
		}
		out = append(out, name)
	}
	return out
}
