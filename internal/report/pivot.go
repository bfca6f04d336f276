package report

import (
	"sort"
	"strconv"
	"strings"

	"bookroom/internal/catalog"
)

// Pivot cross-tabulates rows: one line per shelf in encounter order, one
// column per category in case-insensitive sorted order, cells holding book
// counts, plus a per-shelf total.
func Pivot(rows []catalog.Row) string {
	if len(rows) == 0 {
		return "No data"
	}

	counts := make(map[string]map[string]int)
	var shelves []string
	var categories []string
	seenCategory := make(map[string]bool)
	for _, r := range rows {
		if _, ok := counts[r.Shelf]; !ok {
			counts[r.Shelf] = make(map[string]int)
			shelves = append(shelves, r.Shelf)
		}
		if !seenCategory[r.Category] {
			seenCategory[r.Category] = true
			categories = append(categories, r.Category)
		}
		counts[r.Shelf][r.Category]++
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return strings.ToLower(categories[i]) < strings.ToLower(categories[j])
	})

	t := Table{Headers: append(append([]string{"Shelf"}, categories...), "Total")}
	for _, shelf := range shelves {
		row := []string{shelf}
		total := 0
		for _, category := range categories {
			n := counts[shelf][category]
			total += n
			row = append(row, strconv.Itoa(n))
		}
		row = append(row, strconv.Itoa(total))
		t.Rows = append(t.Rows, row)
	}
	return t.Render()
}
