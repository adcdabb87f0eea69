package cacher

import "sync"

// Const defines a constant cacher which is lazy-loaded.
type Const[T any] struct {
	sync.Once
	value  T
	loaded bool
	load   func() T
}

// NewConst returns a const cacher.
func NewConst[T any](load func() T) *Const[T] {
	if load == nil {
		panic("nil loader func")
	}
	return &Const[T]{load: load}
}

// IsLoaded returns if the const is loaded.
func (c *Const[T]) IsLoaded() bool {
	return c.loaded
}

// Get returns the cached value.
func (c *Const[T]) Get() T {
	c.Do(func() {
		c.value = c.load()
		c.loaded = true
	})
	return c.value
}

// Clear clears the cached value.
func (c *Const[T]) Clear() {
	c.Once = sync.Once{}
	c.loaded = false
}
