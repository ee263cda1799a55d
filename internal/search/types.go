package search

// Filter describes the behaviour required from a line filter.
// Implementations return the original lines that match, in input order.
type Filter interface {
	Filter(query string, lines []string) []string
}
