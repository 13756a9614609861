package listing

import (
	"cmp"
	"slices"
)

// ScoredEntry pairs an entry with whether it matched the query at all.
type ScoredEntry struct {
	Entry   Entry
	Matched bool
}

// Assemble keeps the enumeration order when query is empty. Otherwise it drops
// unmatched entries and sorts the rest by ascending relevance, keeping the
// enumeration order between equal scores. There is no secondary key.
func Assemble(scored []ScoredEntry, query string) []Entry {
	entries := make([]Entry, 0, len(scored))

	if query == "" {
		for _, s := range scored {
			entries = append(entries, s.Entry)
		}
		return entries
	}

	for _, s := range scored {
		if s.Matched {
			entries = append(entries, s.Entry)
		}
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Relevance, b.Relevance)
	})

	return entries
}
