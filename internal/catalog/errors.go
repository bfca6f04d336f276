package catalog

import (
	"errors"
	"fmt"
)

// ErrNoShelves is returned by Organize when the room has no shelves to
// place books on. The caller must add shelves and retry.
var ErrNoShelves = errors.New("no shelves in the room")

// ConstraintError reports a category found on two differently named shelves.
// It signals mutation outside Organize, not bad data.
type ConstraintError struct {
	Category    string
	FirstShelf  string
	SecondShelf string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("category %q found on shelves %q and %q", e.Category, e.FirstShelf, e.SecondShelf)
}
