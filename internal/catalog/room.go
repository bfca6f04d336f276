package catalog

// Room is an ordered collection of shelves under one owner. Shelf order is
// significant: it fixes the round-robin targets used by Catalog.Organize.
// Shelf names are expected to be unique within a room; not enforced here.
type Room struct {
	Owner   string
	Shelves []*Shelf
}

func NewRoom(owner string) *Room {
	return &Room{Owner: owner}
}

// AddShelf appends a shelf to the room. Shelves must be added before
// Organize runs for them to participate in placement.
func (r *Room) AddShelf(s *Shelf) {
	r.Shelves = append(r.Shelves, s)
}
