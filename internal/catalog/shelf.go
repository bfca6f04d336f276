package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Shelf is a named, ordered run of books. A shelf may hold several
// categories, but every book of a category must live on the same shelf;
// Catalog.Organize is what guarantees that.
type Shelf struct {
	Name  string
	Books []Book
}

func NewShelf(name string) *Shelf {
	return &Shelf{Name: name}
}

// AddBooks appends books to the shelf, preserving their order.
func (s *Shelf) AddBooks(books []Book) {
	s.Books = append(s.Books, books...)
}

// SortByTitle orders the shelf ascending by title, case-insensitive.
// Stable: books with equal titles keep their relative order.
func (s *Shelf) SortByTitle() {
	sort.SliceStable(s.Books, func(i, j int) bool {
		return strings.ToLower(s.Books[i].Title) < strings.ToLower(s.Books[j].Title)
	})
}

// Categories returns the distinct category values currently on the shelf.
func (s *Shelf) Categories() map[string]struct{} {
	out := make(map[string]struct{}, len(s.Books))
	for _, b := range s.Books {
		out[b.Category] = struct{}{}
	}
	return out
}

// Clear empties the shelf. Organize calls this before every placement.
func (s *Shelf) Clear() {
	s.Books = nil
}

func (s *Shelf) String() string {
	cats := make([]string, 0, len(s.Books))
	for c := range s.Categories() {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	catList := strings.Join(cats, ", ")
	if catList == "" {
		catList = "-"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Shelf %q (%d books; categories: %s)", s.Name, len(s.Books), catList)
	for _, book := range s.Books {
		fmt.Fprintf(&b, "\n  - %s by %s [%s] (id=%s)", book.Title, book.Author, book.Category, book.ID)
	}
	return b.String()
}
