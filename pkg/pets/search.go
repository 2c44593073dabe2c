package pets

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SearchText is the text a pet is matched against.
func (p Pet) SearchText() string {
	return strings.Join([]string{p.Name, p.Breed, string(p.Species), p.Location}, " ")
}

// source adapts a pet slice to fuzzy.Source.
type source []Pet

func (s source) String(i int) string { return s[i].SearchText() }
func (s source) Len() int            { return len(s) }

// Search returns the pets matching query, best match first. An empty query
// returns all pets in their original order.
func Search(query string, all []Pet) []Pet {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]Pet(nil), all...)
	}

	matches := fuzzy.FindFrom(query, source(all))
	out := make([]Pet, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out
}
