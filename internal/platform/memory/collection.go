package memory

import "slices"

// collection is an id-keyed set of records that remembers insertion order.
type collection[T any] struct {
	order []string
	byID  map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// insert adds v under id and reports false, leaving the collection
// untouched, when id is already present.
func (c *collection[T]) insert(id string, v T) bool {
	if c.has(id) {
		return false
	}
	c.byID[id] = v
	c.order = append(c.order, id)
	return true
}

func (c *collection[T]) remove(id string) bool {
	if !c.has(id) {
		return false
	}
	delete(c.byID, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return true
}

func (c *collection[T]) len() int { return len(c.order) }

// values returns every record in insertion order.
func (c *collection[T]) values() []T {
	return c.filter(func(T) bool { return true })
}

// filter returns the records matching keep in insertion order. The result
// is never nil.
func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		if v := c.byID[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}
