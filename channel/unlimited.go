// Package channel provides an unbounded channel buffered by a deque.
package channel

import (
	"context"

	"go.uber.org/atomic"

	"github.com/mcdexio/blockdeque/deque"
)

// Unlimited defines an unbounded channel. Sends to In never block for
// long: a pump goroutine drains In into a deque and feeds Out from it.
type Unlimited[T any] struct {
	in     chan T
	out    chan T
	done   chan struct{}
	buf    *deque.Deque[T]
	size   atomic.Int64
	ctx    context.Context
	cancel func()
}

// In returns input channel.
func (c *Unlimited[T]) In() chan<- T {
	return c.in
}

// Out returns output channel.
func (c *Unlimited[T]) Out() <-chan T {
	return c.out
}

// Close closes the unlimited channel.
func (c *Unlimited[T]) Close() {
	c.cancel()
}

// Done returns done channel.
func (c *Unlimited[T]) Done() <-chan struct{} {
	return c.done
}

// Len returns the number of buffered elements. The pump keeps the gauge
// up to date, so Len is safe from any goroutine.
func (c *Unlimited[T]) Len() int64 {
	return c.size.Load()
}

// Dump returns data stuck in the channel.
// There is no lock, so only call Dump after Done is closed.
func (c *Unlimited[T]) Dump() []T {
	return c.buf.Slice()
}

// NewUnlimited returns an unlimited channel object.
func NewUnlimited[T any]() *Unlimited[T] {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Unlimited[T]{
		in:     make(chan T),
		out:    make(chan T),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
		buf:    deque.New[T](),
	}
	go func() {
		defer func() {
			c.in = nil
			c.out = nil
			close(c.done)
		}()
		for {
			// Priority Done().
			select {
			case <-ctx.Done():
				return
			default:
			}

			if c.buf.Empty() {
				select {
				case <-ctx.Done():
					return
				case in := <-c.in:
					c.buf.PushBack(in)
					c.size.Inc()
				}
				continue
			}

			select {
			case <-ctx.Done():
				return
			case in := <-c.in:
				c.buf.PushBack(in)
				c.size.Inc()
			case c.out <- c.buf.Front():
				c.buf.PopFront()
				c.size.Dec()
			}
		}
	}()
	return c
}
