package controllers

import (
	"context"
	"sync"
)

// ListCache holds a cross-referenced lookup list for one page: loaded
// once on mount next to the primary list, read when rendering labels.
type ListCache[T any] struct {
	mu    sync.Mutex
	list  ListFunc[T]
	items []T
	err   error
}

// NewListCache creates a lookup cache over the given list operation
func NewListCache[T any](list ListFunc[T]) *ListCache[T] {
	return &ListCache[T]{list: list}
}

// Load fetches the list. A failure sets the cache's own error slot and
// leaves previously loaded items in place.
func (c *ListCache[T]) Load(ctx context.Context) error {
	items, err := c.list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.err = err
		return err
	}
	c.err = nil
	c.items = items
	return nil
}

// Items returns a copy of the loaded list
func (c *ListCache[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Err returns the last load error, nil after a successful load
func (c *ListCache[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
