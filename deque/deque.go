// Package deque implements a double-ended queue stored as a resizable
// array of fixed-size blocks.
package deque

import "fmt"

// DefaultCellsPerBlock is the block size used when none is configured.
const DefaultCellsPerBlock = 16

// Deque defines a double-ended queue backed by an array of fixed-size
// blocks. Logical index i lives at absolute cell (front+i) modulo the
// total cell count, so the live run may wrap from the last block back to
// the first. Growth rebuilds only the block-pointer array and existing
// elements stay in their blocks. The zero value is an empty deque with
// default layout. Not safe for concurrent use.
type Deque[T any] struct {
	cells  int
	blocks [][]T
	front  int
	count  int
	alloc  Allocator[T]
}

// Option configures a Deque at construction.
type Option[T any] func(*Deque[T])

// WithCellsPerBlock sets the number of cells in each block. The value is
// fixed for the deque's lifetime.
func WithCellsPerBlock[T any](cells int) Option[T] {
	if cells < 1 {
		panic("deque: cells per block must be at least 1")
	}
	return func(d *Deque[T]) { d.cells = cells }
}

// WithAllocator sets the block allocator.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	if alloc == nil {
		panic("deque: nil allocator")
	}
	return func(d *Deque[T]) { d.alloc = alloc }
}

// New returns an empty deque with zero blocks.
func New[T any](opts ...Option[T]) *Deque[T] {
	d := &Deque[T]{cells: DefaultCellsPerBlock, alloc: makeAllocator[T]{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Deque[T]) init() {
	if d.cells == 0 {
		d.cells = DefaultCellsPerBlock
	}
	if d.alloc == nil {
		d.alloc = makeAllocator[T]{}
	}
}

func (d *Deque[T]) totalCells() int {
	return len(d.blocks) * d.cells
}

// absIndex returns the absolute cell index holding logical index i.
func (d *Deque[T]) absIndex(i int) int {
	return (d.front + i) % d.totalCells()
}

// slot returns the cell holding logical index i. The block must already
// be allocated, which holds for every live index.
func (d *Deque[T]) slot(i int) *T {
	abs := d.absIndex(i)
	return &d.blocks[abs/d.cells][abs%d.cells]
}

// ensureBlock materializes block b if it is still unallocated.
func (d *Deque[T]) ensureBlock(b int) {
	if d.blocks[b] == nil {
		d.blocks[b] = d.alloc.AllocBlock(d.cells)
	}
}

// blockOccupied reports whether any live cell maps into block b. The live
// cells form one circular run starting at front, so b is occupied when
// its first cell sits within count cells of front, or when the run's wrap
// point falls inside b.
func (d *Deque[T]) blockOccupied(b int) bool {
	if d.count == 0 {
		return false
	}
	off := b*d.cells - d.front
	if off < 0 {
		off += d.totalCells()
	}
	return off < d.count || off+d.cells > d.totalCells()
}

// releaseIfVacant returns block b to the allocator once no live cell maps
// into it. Pops zero vacated cells first, so released blocks are clean.
func (d *Deque[T]) releaseIfVacant(b int) {
	if d.blocks[b] == nil || d.blockOccupied(b) {
		return
	}
	d.alloc.FreeBlock(d.blocks[b])
	d.blocks[b] = nil
}

// reallocate installs a block-pointer array of newBlocks entries. Existing
// blocks are carried over by rotation so the block holding logical index 0
// becomes block 0; no element moves with them. The exception is a live run
// that wraps back into its own first block: its wrapped tail is moved cell
// by cell into the first fresh block and the source cells are zeroed.
// Every allocation happens before any live slot is touched, so a failed
// allocation leaves the deque exactly as it was.
func (d *Deque[T]) reallocate(newBlocks int) {
	blocks := make([][]T, newBlocks)
	if d.count == 0 {
		d.blocks = blocks
		d.front = 0
		return
	}

	old := len(d.blocks)
	firstBlock := d.front / d.cells
	frontCell := d.front % d.cells
	for i := 0; i < old; i++ {
		blocks[i] = d.blocks[(firstBlock+i)%old]
	}

	split := d.count - (old*d.cells - frontCell)
	if split > 0 {
		fresh := d.alloc.AllocBlock(d.cells)
		head := blocks[0]
		var zero T
		for c := 0; c < split; c++ {
			fresh[c] = head[c]
			head[c] = zero
		}
		blocks[old] = fresh
	}

	d.blocks = blocks
	d.front = frontCell
}

// grow doubles the block count, guaranteeing at least one free cell.
func (d *Deque[T]) grow() {
	newBlocks := len(d.blocks) * 2
	if newBlocks == 0 {
		newBlocks = 1
	}
	d.reallocate(newBlocks)
}

// PushBack inserts v as the new logical last element.
func (d *Deque[T]) PushBack(v T) {
	d.init()
	if d.count == d.totalCells() {
		d.grow()
	}
	abs := d.absIndex(d.count)
	d.ensureBlock(abs / d.cells)
	d.blocks[abs/d.cells][abs%d.cells] = v
	d.count++
}

// PushFront inserts v as the new logical first element. The destination
// block is materialized before front and count move, so a failing
// allocation leaves the live run as it was.
func (d *Deque[T]) PushFront(v T) {
	d.init()
	if d.count == d.totalCells() {
		d.grow()
	}
	abs := (d.front - 1 + d.totalCells()) % d.totalCells()
	d.ensureBlock(abs / d.cells)
	d.blocks[abs/d.cells][abs%d.cells] = v
	d.front = abs
	d.count++
}

// PushBackMoved inserts *v at the back and zeroes *v, so the deque ends up
// holding the only copy of any references the value carried.
func (d *Deque[T]) PushBackMoved(v *T) {
	d.PushBack(*v)
	var zero T
	*v = zero
}

// PushFrontMoved inserts *v at the front and zeroes *v.
func (d *Deque[T]) PushFrontMoved(v *T) {
	d.PushFront(*v)
	var zero T
	*v = zero
}

// PopFront removes and returns the logical first element. It panics on an
// empty deque; callers check Empty first.
func (d *Deque[T]) PopFront() T {
	d.mustNonEmpty("PopFront")
	abs := d.front
	b := abs / d.cells
	v := d.blocks[b][abs%d.cells]
	var zero T
	d.blocks[b][abs%d.cells] = zero
	d.front = (d.front + 1) % d.totalCells()
	d.count--
	d.releaseIfVacant(b)
	return v
}

// PopBack removes and returns the logical last element. It panics on an
// empty deque; callers check Empty first.
func (d *Deque[T]) PopBack() T {
	d.mustNonEmpty("PopBack")
	abs := d.absIndex(d.count - 1)
	b := abs / d.cells
	v := d.blocks[b][abs%d.cells]
	var zero T
	d.blocks[b][abs%d.cells] = zero
	d.count--
	d.releaseIfVacant(b)
	return v
}

// Front returns the logical first element. It panics on an empty deque.
func (d *Deque[T]) Front() T {
	d.mustNonEmpty("Front")
	return *d.slot(0)
}

// FrontPtr returns a pointer to the logical first element, valid until the
// next mutation of the deque.
func (d *Deque[T]) FrontPtr() *T {
	d.mustNonEmpty("FrontPtr")
	return d.slot(0)
}

// Back returns the logical last element. It panics on an empty deque.
func (d *Deque[T]) Back() T {
	d.mustNonEmpty("Back")
	return *d.slot(d.count - 1)
}

// BackPtr returns a pointer to the logical last element, valid until the
// next mutation of the deque.
func (d *Deque[T]) BackPtr() *T {
	d.mustNonEmpty("BackPtr")
	return d.slot(d.count - 1)
}

// At returns the element at logical index i.
func (d *Deque[T]) At(i int) T {
	d.checkIndex(i)
	return *d.slot(i)
}

// AtPtr returns a pointer to the element at logical index i, valid until
// the next mutation of the deque.
func (d *Deque[T]) AtPtr(i int) *T {
	d.checkIndex(i)
	return d.slot(i)
}

// Set stores v at logical index i.
func (d *Deque[T]) Set(i int, v T) {
	d.checkIndex(i)
	*d.slot(i) = v
}

// Clear destroys every live element and releases every block, leaving the
// deque as freshly constructed. Clearing an empty deque is a no-op.
func (d *Deque[T]) Clear() {
	var zero T
	for _, block := range d.blocks {
		if block == nil {
			continue
		}
		for c := range block {
			block[c] = zero
		}
		d.alloc.FreeBlock(block)
	}
	d.blocks = nil
	d.front = 0
	d.count = 0
}

// Clone returns a deep copy with the same layout: cells per block, block
// count and front offset. The block-pointer array and every block are
// fresh, and elements are copied by logical index, so a source whose run
// wraps its physical blocks copies correctly. The clone shares the
// allocator value, never the storage.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{cells: d.cells, front: d.front, count: d.count, alloc: d.alloc}
	if len(d.blocks) == 0 {
		return c
	}
	c.blocks = make([][]T, len(d.blocks))
	for i := 0; i < d.count; i++ {
		abs := c.absIndex(i)
		c.ensureBlock(abs / c.cells)
		c.blocks[abs/c.cells][abs%c.cells] = *d.slot(i)
	}
	return c
}

// Slice returns the elements in logical order as a new slice.
func (d *Deque[T]) Slice() []T {
	out := make([]T, d.count)
	d.copyTo(out)
	return out
}

// copyTo copies the live elements in logical order into out, one block run
// at a time. len(out) must not exceed the element count.
func (d *Deque[T]) copyTo(out []T) {
	for i := 0; i < len(out); {
		abs := d.absIndex(i)
		i += copy(out[i:], d.blocks[abs/d.cells][abs%d.cells:])
	}
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.count
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.count == 0
}

func (d *Deque[T]) checkIndex(i int) {
	if i < 0 || i >= d.count {
		panic(fmt.Sprintf("deque: index %d out of range with length %d", i, d.count))
	}
}

func (d *Deque[T]) mustNonEmpty(op string) {
	if d.count == 0 {
		panic("deque: " + op + " of empty deque")
	}
}
