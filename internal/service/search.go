package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"bookroom/internal/catalog"
)

// Match is one search hit with its similarity score in [0, 1].
type Match struct {
	Book  catalog.Book
	Score float64
}

// SearchService ranks books against a free-text title query.
type SearchService struct{}

// ClosestTitles returns up to n books ranked by similarity between query and
// title, best first. Comparison is case-insensitive; ranking is stable, so
// equally scored books keep pile order.
func (s *SearchService) ClosestTitles(pile []catalog.Book, query string, n int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || n <= 0 {
		return nil
	}
	matches := make([]Match, 0, len(pile))
	for _, b := range pile {
		matches = append(matches, Match{Book: b, Score: similarity(q, strings.ToLower(b.Title))})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

func similarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
