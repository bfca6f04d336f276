// Package catalog assigns a pile of categorized books to the ordered shelves
// of a room. All books sharing a category land on one shelf, shelves are
// sorted by title, and the placement can be verified and projected into flat
// rows for reporting.
package catalog

import (
	"sort"
	"strings"
)

// Catalog places a pile of books onto a room's shelves so that all books of
// one category end up on the same shelf. It mutates the room it is handed
// but does not own it.
type Catalog struct {
	Room *Room
}

func New(room *Room) *Catalog {
	return &Catalog{Room: room}
}

// Organize distributes pile across the room's shelves. Books are grouped by
// category, the distinct categories are visited in case-insensitive sorted
// order, and the i-th category group lands wholesale on shelf i mod n. Every
// shelf is cleared first, so each call rebuilds the placement from scratch
// rather than merging into the previous one.
//
// Placement is round-robin over categories, not load-balanced: a shelf can
// end up with far more books than its neighbors when group sizes are uneven.
// The property being protected is one category, one shelf.
func (c *Catalog) Organize(pile []Book) error {
	if len(c.Room.Shelves) == 0 {
		return ErrNoShelves
	}

	byCategory := make(map[string][]Book)
	var order []string
	for _, b := range pile {
		if _, ok := byCategory[b.Category]; !ok {
			order = append(order, b.Category)
		}
		byCategory[b.Category] = append(byCategory[b.Category], b)
	}

	// Stable sort over first-seen key order keeps equal-fold ties
	// deterministic across runs.
	sort.SliceStable(order, func(i, j int) bool {
		return strings.ToLower(order[i]) < strings.ToLower(order[j])
	})

	for _, sh := range c.Room.Shelves {
		sh.Clear()
	}

	n := len(c.Room.Shelves)
	for i, category := range order {
		c.Room.Shelves[i%n].AddBooks(byCategory[category])
	}
	return nil
}

// SortAll sorts every shelf by title, in shelf order. Sorting an empty
// shelf is a no-op.
func (c *Catalog) SortAll() {
	for _, sh := range c.Room.Shelves {
		sh.SortByTitle()
	}
}

// VerifyInvariant checks that no category spans two shelves. Under Organize
// the invariant holds by construction; this exists to catch shelves mutated
// behind the catalog's back, e.g. manual AddBooks calls.
func (c *Catalog) VerifyInvariant() error {
	seen := make(map[string]string)
	for _, sh := range c.Room.Shelves {
		for category := range sh.Categories() {
			if first, ok := seen[category]; ok && first != sh.Name {
				return &ConstraintError{Category: category, FirstShelf: first, SecondShelf: sh.Name}
			}
			seen[category] = sh.Name
		}
	}
	return nil
}

// Dump renders every shelf as a text block, blank line between shelves.
// Informational only; not a stable format.
func (c *Catalog) Dump() string {
	blocks := make([]string, 0, len(c.Room.Shelves))
	for _, sh := range c.Room.Shelves {
		blocks = append(blocks, sh.String())
	}
	return strings.Join(blocks, "\n\n")
}

// Row is a flat projection of one placed book, for reporting.
type Row struct {
	ID       string
	Title    string
	Author   string
	Category string
	ISBN     string
	Shelf    string
}

// Rows flattens the room into reporting rows, shelves in room order and
// books in shelf order.
func (c *Catalog) Rows() []Row {
	var rows []Row
	for _, sh := range c.Room.Shelves {
		for _, b := range sh.Books {
			rows = append(rows, Row{
				ID:       b.ID,
				Title:    b.Title,
				Author:   b.Author,
				Category: b.Category,
				ISBN:     b.ISBN,
				Shelf:    sh.Name,
			})
		}
	}
	return rows
}
