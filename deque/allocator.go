package deque

// Allocator controls how a Deque obtains and recycles the fixed-size
// blocks backing its storage. Implementations may pool blocks. Every cell
// of a block is zeroed by the time FreeBlock receives it.
type Allocator[T any] interface {
	// AllocBlock returns a block of exactly cells zeroed cells.
	AllocBlock(cells int) []T
	// FreeBlock takes back a block previously handed out by AllocBlock.
	FreeBlock(block []T)
}

// makeAllocator is the default Allocator: blocks come from make and freed
// blocks are left to the garbage collector.
type makeAllocator[T any] struct{}

func (makeAllocator[T]) AllocBlock(cells int) []T { return make([]T, cells) }

func (makeAllocator[T]) FreeBlock([]T) {}
