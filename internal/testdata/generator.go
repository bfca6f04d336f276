package testdata

import "bookroom/internal/catalog"

// SamplePile returns a small demo pile spanning five categories. Used when
// no library CSV is configured.
func SamplePile() []catalog.Book {
	return []catalog.Book{
		{ID: "b001", Title: "A Tale of Two Cities", Author: "Charles Dickens", Category: "Classic"},
		{ID: "b002", Title: "Brave New World", Author: "Aldous Huxley", Category: "Dystopian"},
		{ID: "b003", Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Category: "Programming", ISBN: "978-0135957059"},
		{ID: "b004", Title: "Clean Code", Author: "Robert C. Martin", Category: "Programming", ISBN: "978-0132350884"},
		{ID: "b005", Title: "Do Androids Dream of Electric Sheep?", Author: "Philip K. Dick", Category: "Sci-Fi"},
		{ID: "b006", Title: "I, Robot", Author: "Isaac Asimov", Category: "Sci-Fi"},
		{ID: "b007", Title: "The Name of the Rose", Author: "Umberto Eco", Category: "Mystery"},
	}
}
