package report

import (
	"strconv"

	"bookroom/internal/catalog"
)

const maxTitleWidth = 40

// Preview renders rows as an aligned table of id, title, author, category,
// isbn and shelf. limit <= 0 renders every row.
func Preview(rows []catalog.Row, limit int) string {
	if len(rows) == 0 {
		return "No data"
	}
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}

	t := Table{Headers: []string{"ID", "Title", "Author", "Category", "ISBN", "Shelf"}}
	for _, r := range rows[:limit] {
		isbn := r.ISBN
		if isbn == "" {
			isbn = "-"
		}
		t.Rows = append(t.Rows, []string{
			r.ID,
			truncate(r.Title, maxTitleWidth),
			r.Author,
			r.Category,
			isbn,
			r.Shelf,
		})
	}

	out := t.Render()
	if limit < len(rows) {
		out += "\n… " + strconv.Itoa(len(rows)-limit) + " more"
	}
	return out
}
