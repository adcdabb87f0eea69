package deque

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// countingAllocator tracks block churn so tests can pin down exactly when
// the deque acquires and releases storage.
type countingAllocator[T any] struct {
	allocs int
	frees  int
}

func (a *countingAllocator[T]) AllocBlock(cells int) []T {
	a.allocs++
	return make([]T, cells)
}

func (a *countingAllocator[T]) FreeBlock([]T) {
	a.frees++
}

// budgetAllocator hands out a fixed number of blocks and then fails.
type budgetAllocator[T any] struct {
	remaining int
}

func (a *budgetAllocator[T]) AllocBlock(cells int) []T {
	if a.remaining == 0 {
		panic("out of blocks")
	}
	a.remaining--
	return make([]T, cells)
}

func (a *budgetAllocator[T]) FreeBlock([]T) {}

type AllocatorTestSuite struct {
	suite.Suite
}

func (s *AllocatorTestSuite) TestEagerRelease() {
	ca := &countingAllocator[int]{}
	d := New(WithCellsPerBlock[int](2), WithAllocator[int](ca))

	for i := 1; i <= 5; i++ {
		d.PushBack(i)
	}
	s.Require().Equal(3, ca.allocs)
	s.Require().Equal(0, ca.frees)

	// Each block goes back to the allocator as soon as its last live
	// cell is popped.
	s.Require().Equal(1, d.PopFront())
	s.Require().Equal(0, ca.frees)
	s.Require().Equal(2, d.PopFront())
	s.Require().Equal(1, ca.frees)
	s.Require().Equal(3, d.PopFront())
	s.Require().Equal(1, ca.frees)
	s.Require().Equal(4, d.PopFront())
	s.Require().Equal(2, ca.frees)
	s.Require().Equal(5, d.PopFront())
	s.Require().Equal(3, ca.frees)

	// The block pointer array survives; pushing allocates one block again.
	d.PushBack(6)
	s.Require().Equal(4, ca.allocs)
	s.Require().Equal(3, ca.frees)

	d.Clear()
	s.Require().Equal(4, ca.allocs)
	s.Require().Equal(4, ca.frees)
}

func (s *AllocatorTestSuite) TestCloneSharesAllocator() {
	ca := &countingAllocator[int]{}
	d := New(WithCellsPerBlock[int](2), WithAllocator[int](ca))
	for i := 1; i <= 3; i++ {
		d.PushBack(i)
	}
	s.Require().Equal(2, ca.allocs)

	c := d.Clone()
	s.Require().Equal([]int{1, 2, 3}, c.Slice())
	s.Require().Equal(4, ca.allocs)

	c.Clear()
	s.Require().Equal(4, ca.allocs)
	s.Require().Equal(2, ca.frees)
	s.Require().Equal([]int{1, 2, 3}, d.Slice())
}

// TestAllocFailureLeavesDequeIntact pins the insert ordering: a push that
// cannot obtain its destination block fails before front or count move, so
// every element stays addressable afterwards.
func (s *AllocatorTestSuite) TestAllocFailureLeavesDequeIntact() {
	ba := &budgetAllocator[int]{remaining: 1}
	d := New(WithCellsPerBlock[int](2), WithAllocator[int](ba))
	d.PushBack(1)
	d.PushBack(2)

	// Grows the block-pointer array, then fails allocating the new
	// front block.
	s.Require().PanicsWithValue("out of blocks", func() { d.PushFront(99) })
	s.Require().Equal(2, d.Len())
	s.Require().Equal(1, d.Front())
	s.Require().Equal(2, d.Back())
	s.Require().Equal([]int{1, 2}, d.Slice())

	s.Require().PanicsWithValue("out of blocks", func() { d.PushBack(99) })
	s.Require().Equal([]int{1, 2}, d.Slice())

	// With blocks available again the same pushes go through.
	ba.remaining = 2
	d.PushFront(0)
	d.PushBack(3)
	s.Require().Equal([]int{0, 1, 2, 3}, d.Slice())
}

func (s *AllocatorTestSuite) TestNilAllocatorRejected() {
	s.Require().Panics(func() { WithAllocator[int](nil) })
}

func TestAllocator(t *testing.T) {
	suite.Run(t, new(AllocatorTestSuite))
}
