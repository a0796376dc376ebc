package query

import (
	"net/url"
	"sort"
	"strings"
)

// Params reads request parameters case-insensitively, accepting legacy aliases.
type Params struct {
	folded map[string][]string
}

// NewParams indexes the query values by lower-cased name, with "k[]" folded into "k".
// Values under the exact lower-case name come first, then aliases in sorted key order, so
// "page=3&Page=2" always resolves to 3.
func NewParams(values url.Values) Params {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := FoldKey(keys[i]) == keys[i], FoldKey(keys[j]) == keys[j]
		if ci != cj {
			return ci
		}
		return keys[i] < keys[j]
	})

	folded := make(map[string][]string, len(values))
	for _, key := range keys {
		name := FoldKey(key)
		folded[name] = append(folded[name], values[key]...)
	}
	return Params{folded: folded}
}

// FoldKey returns the normalised form of a query key.
func FoldKey(key string) string {
	return strings.ToLower(strings.TrimSuffix(key, "[]"))
}

// Get returns the first non-empty value among the given names.
func (p Params) Get(names ...string) string {
	for _, name := range names {
		for _, v := range p.folded[strings.ToLower(name)] {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// List returns every value supplied under any of the given names.
func (p Params) List(names ...string) []string {
	var out []string
	for _, name := range names {
		out = append(out, p.folded[strings.ToLower(name)]...)
	}
	return out
}

// Folded returns the values keyed by their normalised names.
func (p Params) Folded() url.Values { return url.Values(p.folded) }
