package deque

// Iterator defines a position inside a Deque: a logical index plus a
// non-owning reference to the deque it walks. Copying an Iterator
// snapshots its position, which is how postfix increment is spelled here.
// An iterator is invalidated when its deque is cleared or grows; using it
// afterwards is unsupported. Iterators of two different deques never
// compare meaningfully, since only the index is compared.
type Iterator[T any] struct {
	d   *Deque[T]
	pos int
}

// Begin returns an iterator at logical index 0.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{d: d}
}

// End returns the sentinel iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{d: d, pos: d.count}
}

// Valid reports whether the iterator may be dereferenced.
func (it Iterator[T]) Valid() bool {
	return it.d != nil && it.pos >= 0 && it.pos < it.d.count
}

// Index returns the logical index the iterator points at.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Value returns the element under the iterator. Dereferencing the End
// sentinel or any out-of-range position panics.
func (it Iterator[T]) Value() T {
	return it.d.At(it.pos)
}

// Ptr returns a pointer to the element under the iterator, valid until
// the next mutation of the deque.
func (it Iterator[T]) Ptr() *T {
	return it.d.AtPtr(it.pos)
}

// Next advances one position and returns the mutated iterator.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.pos++
	return it
}

// Prev steps back one position and returns the mutated iterator.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.pos--
	return it
}

// Advance shifts the position by n, which may be negative.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.pos += n
	return it
}

// Equal reports whether both iterators sit at the same logical index.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos
}

// Sub returns the signed distance between the two iterators' positions.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	return it.pos - other.pos
}
