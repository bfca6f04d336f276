package catalog

// Book is a single catalog entry. Plain value type: comparable, hashable,
// safe to use as a map key. Never mutated after construction.
type Book struct {
	ID       string
	Title    string
	Author   string
	Category string
	ISBN     string // optional; empty when unknown
}
