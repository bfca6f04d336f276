package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func demoPile() []Book {
	return []Book{
		{ID: "b001", Title: "A Tale of Two Cities", Author: "Charles Dickens", Category: "Classic"},
		{ID: "b002", Title: "Brave New World", Author: "Aldous Huxley", Category: "Dystopian"},
		{ID: "b003", Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Category: "Programming"},
		{ID: "b004", Title: "Clean Code", Author: "Robert C. Martin", Category: "Programming"},
		{ID: "b005", Title: "Do Androids Dream of Electric Sheep?", Author: "Philip K. Dick", Category: "Sci-Fi"},
		{ID: "b006", Title: "I, Robot", Author: "Isaac Asimov", Category: "Sci-Fi"},
		{ID: "b007", Title: "The Name of the Rose", Author: "Umberto Eco", Category: "Mystery"},
	}
}

func threeShelfRoom() *Room {
	room := NewRoom("Bob")
	room.AddShelf(NewShelf("Left"))
	room.AddShelf(NewShelf("Right"))
	room.AddShelf(NewShelf("Top"))
	return room
}

func TestOrganizeRoundRobin(t *testing.T) {
	t.Parallel()

	room := threeShelfRoom()
	cat := New(room)
	require.NoError(t, cat.Organize(demoPile()))

	// Sorted categories: Classic, Dystopian, Mystery, Programming, Sci-Fi.
	// Left gets 0 and 3, Right gets 1 and 4, Top gets only 2.
	left := room.Shelves[0].Categories()
	require.Contains(t, left, "Classic")
	require.Contains(t, left, "Programming")
	require.Len(t, left, 2)

	right := room.Shelves[1].Categories()
	require.Contains(t, right, "Dystopian")
	require.Contains(t, right, "Sci-Fi")
	require.Len(t, right, 2)

	top := room.Shelves[2].Categories()
	require.Contains(t, top, "Mystery")
	require.Len(t, top, 1)
}

func TestOrganizePreservesMultiset(t *testing.T) {
	t.Parallel()

	pile := demoPile()
	// Duplicate entry on purpose: duplicates must survive verbatim.
	pile = append(pile, pile[0])

	room := threeShelfRoom()
	cat := New(room)
	require.NoError(t, cat.Organize(pile))

	placed := make(map[Book]int)
	total := 0
	for _, sh := range room.Shelves {
		for _, b := range sh.Books {
			placed[b]++
			total++
		}
	}
	require.Equal(t, len(pile), total)

	want := make(map[Book]int)
	for _, b := range pile {
		want[b]++
	}
	require.Equal(t, want, placed)
}

func TestOrganizeIdempotentFromScratch(t *testing.T) {
	t.Parallel()

	pile := demoPile()
	room := threeShelfRoom()
	cat := New(room)

	require.NoError(t, cat.Organize(pile))
	first := cat.Rows()

	require.NoError(t, cat.Organize(pile))
	second := cat.Rows()

	require.Equal(t, first, second)
}

func TestOrganizeClearsPriorPlacement(t *testing.T) {
	t.Parallel()

	room := threeShelfRoom()
	cat := New(room)
	require.NoError(t, cat.Organize(demoPile()))

	// A smaller pile must fully replace the previous one.
	require.NoError(t, cat.Organize([]Book{
		{ID: "x1", Title: "Dune", Author: "Frank Herbert", Category: "Sci-Fi"},
	}))

	require.Len(t, cat.Rows(), 1)
	require.Len(t, room.Shelves[0].Books, 1)
	require.Empty(t, room.Shelves[1].Books)
	require.Empty(t, room.Shelves[2].Books)
}

func TestOrganizeEmptyPileLeavesShelvesEmpty(t *testing.T) {
	t.Parallel()

	room := threeShelfRoom()
	cat := New(room)
	require.NoError(t, cat.Organize(demoPile()))
	require.NoError(t, cat.Organize(nil))

	for _, sh := range room.Shelves {
		require.Empty(t, sh.Books)
	}
}

func TestOrganizeNoShelves(t *testing.T) {
	t.Parallel()

	cat := New(NewRoom("Bob"))
	require.ErrorIs(t, cat.Organize(demoPile()), ErrNoShelves)
	require.ErrorIs(t, cat.Organize(nil), ErrNoShelves)
}

func TestOrganizeSingleShelfTakesEverything(t *testing.T) {
	t.Parallel()

	room := NewRoom("Bob")
	room.AddShelf(NewShelf("Only"))
	cat := New(room)
	require.NoError(t, cat.Organize(demoPile()))

	require.Len(t, room.Shelves[0].Books, len(demoPile()))
	require.NoError(t, cat.VerifyInvariant())
}

func TestOrganizeCategoryOrderIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	pile := []Book{
		{ID: "1", Title: "T1", Author: "A", Category: "zebra"},
		{ID: "2", Title: "T2", Author: "A", Category: "Apple"},
		{ID: "3", Title: "T3", Author: "A", Category: "mango"},
	}
	room := NewRoom("Bob")
	room.AddShelf(NewShelf("A"))
	room.AddShelf(NewShelf("B"))
	cat := New(room)
	require.NoError(t, cat.Organize(pile))

	// Case-insensitive order: Apple, mango, zebra. A gets Apple and zebra.
	require.Equal(t, map[string]struct{}{"Apple": {}, "zebra": {}}, room.Shelves[0].Categories())
	require.Equal(t, map[string]struct{}{"mango": {}}, room.Shelves[1].Categories())
}

func TestVerifyInvariantAfterOrganize(t *testing.T) {
	t.Parallel()

	cat := New(threeShelfRoom())
	require.NoError(t, cat.Organize(demoPile()))
	require.NoError(t, cat.VerifyInvariant())
}

func TestVerifyInvariantDetectsSplitCategory(t *testing.T) {
	t.Parallel()

	room := threeShelfRoom()
	cat := New(room)
	require.NoError(t, cat.Organize(demoPile()))

	// Sneak a Mystery book onto a shelf Organize did not pick for it.
	room.Shelves[0].AddBooks([]Book{
		{ID: "b008", Title: "The Big Sleep", Author: "Raymond Chandler", Category: "Mystery"},
	})

	err := cat.VerifyInvariant()
	require.Error(t, err)

	var cerr *ConstraintError
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, "Mystery", cerr.Category)
	require.ElementsMatch(t, []string{"Left", "Top"}, []string{cerr.FirstShelf, cerr.SecondShelf})
	require.Contains(t, err.Error(), "Mystery")
	require.Contains(t, err.Error(), "Left")
	require.Contains(t, err.Error(), "Top")
}

func TestSortAllOrdersTitlesCaseInsensitive(t *testing.T) {
	t.Parallel()

	room := threeShelfRoom()
	cat := New(room)
	require.NoError(t, cat.Organize(demoPile()))
	cat.SortAll()

	for _, sh := range room.Shelves {
		for i := 1; i < len(sh.Books); i++ {
			prev := sh.Books[i-1].Title
			cur := sh.Books[i].Title
			require.LessOrEqual(t, strings.ToLower(prev), strings.ToLower(cur), "shelf %s out of order", sh.Name)
		}
	}

	// Left holds Classic + Programming; titles interleave across categories.
	titles := make([]string, 0, len(room.Shelves[0].Books))
	for _, b := range room.Shelves[0].Books {
		titles = append(titles, b.Title)
	}
	require.Equal(t, []string{"A Tale of Two Cities", "Clean Code", "The Pragmatic Programmer"}, titles)
}

func TestRowsFlattenEveryBook(t *testing.T) {
	t.Parallel()

	room := threeShelfRoom()
	cat := New(room)
	require.NoError(t, cat.Organize(demoPile()))
	cat.SortAll()

	rows := cat.Rows()
	require.Len(t, rows, len(demoPile()))

	byID := make(map[string]Row, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	require.Equal(t, "Top", byID["b007"].Shelf)
	require.Equal(t, "The Name of the Rose", byID["b007"].Title)
	require.Equal(t, "Umberto Eco", byID["b007"].Author)
	require.Equal(t, "Mystery", byID["b007"].Category)
}

func TestDumpListsShelvesAndBooks(t *testing.T) {
	t.Parallel()

	room := threeShelfRoom()
	cat := New(room)
	require.NoError(t, cat.Organize(demoPile()))
	cat.SortAll()

	out := cat.Dump()
	require.Contains(t, out, `Shelf "Left"`)
	require.Contains(t, out, `Shelf "Right"`)
	require.Contains(t, out, `Shelf "Top"`)
	require.Contains(t, out, "categories: Mystery")
	require.Contains(t, out, "I, Robot by Isaac Asimov [Sci-Fi] (id=b006)")
}
