// Package window maintains rolling extrema and mean over the newest
// samples of a stream.
package window

import (
	"fmt"

	"github.com/shopspring/decimal"

	cerrors "github.com/mcdexio/blockdeque/common/errors"
	"github.com/mcdexio/blockdeque/deque"
)

// Stats tracks min, max, mean and count over the last size samples.
// Three deques carry the state: samples is the window itself, minq keeps
// an ascending run whose front is the current minimum, maxq a descending
// run whose front is the current maximum. Equal samples stay duplicated
// in the extrema queues so evicting one instance never loses the other.
// Not safe for concurrent use.
type Stats struct {
	size    int
	samples *deque.Deque[decimal.Decimal]
	minq    *deque.Deque[decimal.Decimal]
	maxq    *deque.Deque[decimal.Decimal]
	sum     decimal.Decimal
}

// NewStats returns rolling statistics over a window of size samples.
func NewStats(size int) *Stats {
	if size < 1 {
		panic(fmt.Sprintf("window: size %d must be at least 1", size))
	}
	return &Stats{
		size:    size,
		samples: deque.New[decimal.Decimal](),
		minq:    deque.New[decimal.Decimal](),
		maxq:    deque.New[decimal.Decimal](),
		sum:     decimal.Zero,
	}
}

// Push adds v to the window, evicting the oldest sample once full.
func (s *Stats) Push(v decimal.Decimal) {
	if s.samples.Len() == s.size {
		s.evict()
	}
	s.samples.PushBack(v)
	s.sum = s.sum.Add(v)

	for !s.minq.Empty() && s.minq.Back().GreaterThan(v) {
		s.minq.PopBack()
	}
	s.minq.PushBack(v)

	for !s.maxq.Empty() && s.maxq.Back().LessThan(v) {
		s.maxq.PopBack()
	}
	s.maxq.PushBack(v)
}

func (s *Stats) evict() {
	old := s.samples.PopFront()
	s.sum = s.sum.Sub(old)
	if s.minq.Front().Equal(old) {
		s.minq.PopFront()
	}
	if s.maxq.Front().Equal(old) {
		s.maxq.PopFront()
	}
}

// Count returns the number of samples currently in the window.
func (s *Stats) Count() int {
	return s.samples.Len()
}

// Sum returns the sum of the window.
func (s *Stats) Sum() decimal.Decimal {
	return s.sum
}

// Min returns the smallest sample in the window. It panics when empty.
func (s *Stats) Min() decimal.Decimal {
	s.mustHaveSamples("Min")
	return s.minq.Front()
}

// Max returns the largest sample in the window. It panics when empty.
func (s *Stats) Max() decimal.Decimal {
	s.mustHaveSamples("Max")
	return s.maxq.Front()
}

// Mean returns the arithmetic mean of the window. It panics when empty.
func (s *Stats) Mean() decimal.Decimal {
	s.mustHaveSamples("Mean")
	return s.sum.Div(decimal.NewFromInt(int64(s.samples.Len())))
}

// Samples returns the window content in arrival order.
func (s *Stats) Samples() []decimal.Decimal {
	return s.samples.Slice()
}

// Reset empties the window.
func (s *Stats) Reset() {
	s.samples.Clear()
	s.minq.Clear()
	s.maxq.Clear()
	s.sum = decimal.Zero
}

func (s *Stats) mustHaveSamples(op string) {
	if s.samples.Empty() {
		panic("window: " + op + " of empty window")
	}
}

// ParseSample converts raw input into a sample, turning the assertion
// inside decimal.RequireFromString into an error.
func ParseSample(raw string) (sample decimal.Decimal, err error) {
	defer cerrors.RecoverErrorPanic(&err, &sample)
	return decimal.RequireFromString(raw), nil
}
