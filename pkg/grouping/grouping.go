// Package grouping folds ordered row streams into per-parent collections and running totals.
package grouping

// Collector gathers child rows under their parent key in a single pass. Rows are expected
// ordered by key, but out-of-order keys are still merged into the existing group.
type Collector[K comparable, V any] struct {
	rows map[K][]V
}

// NewCollector returns an empty collector.
func NewCollector[K comparable, V any]() *Collector[K, V] {
	return &Collector[K, V]{rows: make(map[K][]V)}
}

// Add appends v to the group of key.
func (c *Collector[K, V]) Add(key K, v V) {
	c.rows[key] = append(c.rows[key], v)
}

// Rows returns the rows collected for key in arrival order, or an empty non-nil slice.
func (c *Collector[K, V]) Rows(key K) []V {
	if rows, ok := c.rows[key]; ok {
		return rows
	}
	return []V{}
}
