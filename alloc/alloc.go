package alloc

// Allocator issues element buffers and manages element lifetimes.
//
// Allocate returns a buffer with len == cap == n. Deallocate returns a buffer
// previously issued by the same allocator; passing anything else is a caller
// precondition violation. Construct begins the lifetime of the element at dst
// by copying v into it, and is the only fallible path besides Allocate — it
// stands in for a failing element copy. Destroy ends a lifetime and never
// fails.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
	Construct(dst *T, v T) error
	Destroy(dst *T)
}

// Default is the stateless allocator backed by the Go runtime.
//
// Two Default values are interchangeable, which is what makes raw storage
// duplication safe for trivially duplicable element types.
type Default[T any] struct{}

// NewDefault returns the stateless runtime-backed allocator.
func NewDefault[T any]() *Default[T] {
	return &Default[T]{}
}

// Allocate returns a zeroed buffer with len == cap == n.
func (*Default[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrBadCapacity
	}
	return make([]T, n), nil
}

// Deallocate drops the buffer. The Go runtime reclaims it once no live slice
// references remain.
func (*Default[T]) Deallocate(buf []T) {}

// Construct copies v into dst.
func (*Default[T]) Construct(dst *T, v T) error {
	*dst = v
	return nil
}

// Destroy zeroes the slot so anything the element referenced becomes
// collectable immediately rather than pinned by a dead buffer.
func (*Default[T]) Destroy(dst *T) {
	var zero T
	*dst = zero
}
