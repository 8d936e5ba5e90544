package model

// Page is a result window. Limit <= 0 means no upper bound.
type Page struct {
	Limit  int
	Offset int
}

// Apply trims an already ordered slice to the window.
func Apply[T any](items []T, p Page) []T {
	if p.Offset > 0 {
		if p.Offset >= len(items) {
			return items[:0]
		}
		items = items[p.Offset:]
	}
	if p.Limit > 0 && len(items) > p.Limit {
		items = items[:p.Limit]
	}
	return items
}
