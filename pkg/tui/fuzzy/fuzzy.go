// ABOUTME: Thin wrapper over sahilm/fuzzy for fuzzy string matching
// ABOUTME: Filters and ranks candidate strings, best match first

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find fuzzy-matches pattern against items and returns the matches
// sorted by score, best first. An empty pattern matches nothing.
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
