// Package datasync keeps the three entity collections in step with the
// server. Every collection is a cache, never a source of truth: divergence is
// resolved by taking the next server response as correct.
package datasync

// Entity is anything keyed by a server-assigned id.
type Entity interface {
	EntityID() int64
}

// Collection is an ordered, id-unique cache of one entity type. Insertion
// order is preserved for display but carries no other meaning. All three
// collections share this contract, parameterized by entity shape.
type Collection[T Entity] struct {
	items []T
}

// Replace swaps the whole collection for the given list in one transition.
func (c *Collection[T]) Replace(items []T) {
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Append adds an entity to the end.
func (c *Collection[T]) Append(item T) {
	c.items = append(c.items, item)
}

// Prepend adds an entity to the front (newest-first display).
func (c *Collection[T]) Prepend(item T) {
	c.items = append([]T{item}, c.items...)
}

// Update replaces the element whose id matches. Returns false when no entry
// matched; that is a silent inconsistency under correct operation, not an
// error.
func (c *Collection[T]) Update(item T) bool {
	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove filters the id out. Removing an absent id is a no-op.
func (c *Collection[T]) Remove(id int64) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Clear empties the collection.
func (c *Collection[T]) Clear() {
	c.items = nil
}

// Items returns a copy of the current contents.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached entities.
func (c *Collection[T]) Len() int {
	return len(c.items)
}
