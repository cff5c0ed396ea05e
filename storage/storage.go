package storage

import (
	"fmt"

	"github.com/jmoss/smallvec/alloc"
)

// Mode identifies which representation currently backs a Storage.
type Mode uint8

const (
	// ModeInline means elements live in the arena embedded in the Storage.
	ModeInline Mode = iota

	// ModeHeap means elements live in an allocator-issued buffer.
	ModeHeap
)

// String returns "inline" or "heap".
func (m Mode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeHeap:
		return "heap"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// storageView is a flat snapshot of the active representation: the
// full-capacity data region plus the current size and capacity.
type storageView[T any] struct {
	data     []T
	size     int
	capacity int
}

// Storage owns one contiguous region of elements, either the inline arena or
// a heap buffer, plus the allocator that issues heap buffers and manages
// element lifetimes. Exactly one representation is live at a time: while
// inline, size <= InlineCapacity and capacity equals InlineCapacity; while
// heap, size <= capacity and capacity is whatever was last allocated.
//
// A Storage starts empty and inline. Initialize runs once to populate the
// first contents, Assign replaces all contents any number of times,
// ShrinkToFit reclaims heap slack, and Destroy ends every element lifetime
// and releases the heap buffer.
type Storage[T any] struct {
	alloc alloc.Allocator[T]

	size int
	mode Mode

	// inline is the arena, fixed for the Storage's lifetime with
	// len == cap == InlineCapacity. heap is nil unless mode == ModeHeap.
	inline []T
	heap   []T
}

// New returns an empty inline Storage whose arena holds inlineCap elements.
// The arena is created once here and never touches the element allocator.
// A nil allocator means alloc.Default.
func New[T any](inlineCap int, a alloc.Allocator[T]) (*Storage[T], error) {
	if inlineCap < 1 {
		return nil, ErrBadInlineCapacity
	}
	return NewWithArena(make([]T, inlineCap), a)
}

// NewWithArena returns an empty inline Storage backed by a caller-supplied
// arena, letting an owning container embed the arena in its own footprint:
//
//	type Vec struct {
//		arena [8]int
//		st    *storage.Storage[int]
//	}
//	v.st, _ = storage.NewWithArena(v.arena[:], nil)
//
// The full capacity of arena becomes the inline capacity. The arena must not
// be read or written by anyone else for the Storage's lifetime.
func NewWithArena[T any](arena []T, a alloc.Allocator[T]) (*Storage[T], error) {
	arena = arena[:cap(arena)]
	if len(arena) < 1 {
		return nil, ErrBadInlineCapacity
	}
	if a == nil {
		a = alloc.NewDefault[T]()
	}
	return &Storage[T]{alloc: a, inline: arena}, nil
}

// Size returns the count of live elements.
func (s *Storage[T]) Size() int {
	return s.size
}

// Mode returns the representation currently backing the Storage.
func (s *Storage[T]) Mode() Mode {
	return s.mode
}

// InlineCapacity returns the element count of the embedded arena.
func (s *Storage[T]) InlineCapacity() int {
	return len(s.inline)
}

// Capacity returns the element capacity of the active representation.
func (s *Storage[T]) Capacity() int {
	if s.mode == ModeHeap {
		return cap(s.heap)
	}
	return len(s.inline)
}

// Elements returns the live elements of the active region. The slice aliases
// the Storage's memory and is invalidated by any subsequent operation.
func (s *Storage[T]) Elements() []T {
	return s.view().data[:s.size]
}

// Allocator returns the allocator embedded at construction.
func (s *Storage[T]) Allocator() alloc.Allocator[T] {
	return s.alloc
}

func (s *Storage[T]) view() storageView[T] {
	if s.mode == ModeHeap {
		return storageView[T]{data: s.heap, size: s.size, capacity: cap(s.heap)}
	}
	return storageView[T]{data: s.inline, size: s.size, capacity: len(s.inline)}
}

func (s *Storage[T]) deallocateIfHeap() {
	if s.mode == ModeHeap {
		s.alloc.Deallocate(s.heap)
		s.heap = nil
	}
}

// Initialize populates the first contents of an empty inline Storage with
// newSize elements pulled from values. Sizes beyond the inline capacity
// allocate a heap buffer of exactly newSize and switch the mode.
//
// Strong failure guarantee: if allocation or any construction fails, the
// Storage is left exactly as it started. The construction helper destroys
// the partial prefix and the transaction releases the pending buffer.
func (s *Storage[T]) Initialize(values ValueAdapter[T], newSize int) error {
	if s.mode != ModeInline || s.size != 0 {
		return ErrInitialized
	}
	if newSize < 0 {
		return ErrBadSize
	}

	tx := NewAllocationTransaction(s.alloc)
	defer tx.Rollback()

	dst := s.inline
	if newSize > len(s.inline) {
		buf, err := tx.Allocate(newSize)
		if err != nil {
			return err
		}
		dst = buf
	}

	if err := constructElements(s.alloc, dst[:newSize], values); err != nil {
		return err
	}

	if tx.DidAllocate() {
		s.heap = tx.Commit()
		s.mode = ModeHeap
	}
	s.size = newSize
	return nil
}

// Assign replaces all contents with newSize elements pulled from values.
// Three cases, split on the current size and capacity:
//
//  1. newSize > capacity: construct everything into a fresh buffer of
//     exactly newSize, destroy the old elements, then commit — free the old
//     heap buffer (if any), adopt the new one, mode becomes heap. Strong
//     guarantee: a failure before the commit leaves the Storage untouched.
//  2. size < newSize <= capacity: assign over the existing elements, then
//     construct the remaining slots in place from the same adapter sequence.
//  3. newSize <= size: assign over the first newSize slots, then destroy the
//     trailing excess.
//
// Cases 2 and 3 mutate in place and offer only the helpers' guarantees:
// completed assignments stand if a later step fails. Assign never shrinks
// capacity.
func (s *Storage[T]) Assign(values ValueAdapter[T], newSize int) error {
	if newSize < 0 {
		return ErrBadSize
	}

	v := s.view()

	tx := NewAllocationTransaction(s.alloc)
	defer tx.Rollback()

	var assignLoop, constructLoop, destroyLoop []T

	switch {
	case newSize > v.capacity:
		buf, err := tx.Allocate(newSize)
		if err != nil {
			return err
		}
		constructLoop = buf[:newSize]
		destroyLoop = v.data[:v.size]
	case newSize > v.size:
		assignLoop = v.data[:v.size]
		constructLoop = v.data[v.size:newSize]
	default:
		assignLoop = v.data[:newSize]
		destroyLoop = v.data[newSize:v.size]
	}

	if err := assignElements(assignLoop, values); err != nil {
		return err
	}
	if err := constructElements(s.alloc, constructLoop, values); err != nil {
		return err
	}
	destroyElements(s.alloc, destroyLoop)

	if tx.DidAllocate() {
		s.deallocateIfHeap()
		s.heap = tx.Commit()
		s.mode = ModeHeap
	}
	s.size = newSize
	return nil
}

// ShrinkToFit reduces a heap Storage's footprint to match its size. When the
// elements fit the inline arena they relocate there and the mode reverts to
// inline; otherwise they relocate into a smaller heap buffer of exactly the
// current size. A Storage whose size already equals its capacity is left
// unchanged. Calling ShrinkToFit on an inline Storage returns ErrNotHeap.
//
// If relocation fails partway, the already-relocated destination prefix is
// destroyed, the heap pointer and capacity are restored as the live
// representation, and the error propagates. Source elements that were
// already moved from remain live holding the zero value; nothing is leaked
// and nothing is destroyed twice.
func (s *Storage[T]) ShrinkToFit() error {
	if s.mode != ModeHeap {
		return ErrNotHeap
	}

	old := s.heap
	size := s.size

	tx := NewAllocationTransaction(s.alloc)
	defer tx.Rollback()

	var dst []T
	switch {
	case size <= len(s.inline):
		dst = s.inline
	case size < cap(old):
		buf, err := tx.Allocate(size)
		if err != nil {
			return err
		}
		dst = buf
	default:
		// Already tight.
		return nil
	}

	move := NewMoveValues(old[:size])
	if err := constructElements(s.alloc, dst[:size], move); err != nil {
		// The old buffer must remain the live representation: restore the
		// heap fields before surfacing the failure so that exactly one
		// representation is intact.
		s.heap = old
		s.mode = ModeHeap
		return err
	}

	destroyElements(s.alloc, old[:size])
	s.alloc.Deallocate(old)

	if tx.DidAllocate() {
		s.heap = tx.Commit()
	} else {
		s.heap = nil
		s.mode = ModeInline
	}
	return nil
}

// Destroy ends every live element's lifetime, releases the heap buffer if
// one is held, and resets the Storage to empty inline. A destroyed Storage
// may be initialized again.
func (s *Storage[T]) Destroy() {
	v := s.view()
	destroyElements(s.alloc, v.data[:v.size])
	s.deallocateIfHeap()
	s.size = 0
	s.mode = ModeInline
}

// SwapSizeAndMode exchanges the size and mode fields with another Storage.
// A building block for a container-level swap; callers are responsible for
// exchanging the element data to match.
func (s *Storage[T]) SwapSizeAndMode(other *Storage[T]) {
	s.size, other.size = other.size, s.size
	s.mode, other.mode = other.mode, s.mode
}

// SwapHeap exchanges the heap buffers with another Storage. Only meaningful
// when paired with SwapSizeAndMode and both storages are heap, or when the
// caller fixes up the remaining state itself.
func (s *Storage[T]) SwapHeap(other *Storage[T]) {
	s.heap, other.heap = other.heap, s.heap
}

// MemcpyFrom duplicates other's state bits into s without running element
// construction. Valid only when one of these holds:
//
//   - other is heap: only the buffer reference and bookkeeping are copied,
//     and the caller must treat this as an ownership transfer — exactly one
//     of the two storages may be destroyed or otherwise treated as the
//     owner. TransferFrom is the safe wrapper for this case.
//   - other is inline, the element type has no identity beyond its bits,
//     the allocator is the stateless default, and s's arena is at least
//     other.Size() elements.
//
// Anything else must go through Assign with an element-wise adapter.
func (s *Storage[T]) MemcpyFrom(other *Storage[T]) {
	s.size = other.size
	s.mode = other.mode
	if other.mode == ModeHeap {
		s.heap = other.heap
		return
	}
	copy(s.inline, other.inline[:other.size])
}

// TransferFrom takes ownership of other's contents, leaving other empty and
// inline. Heap buffers move by reference; inline elements relocate by bit
// copy, which in Go preserves their lifetimes — they are subsequently
// destroyed in s, not in other.
func (s *Storage[T]) TransferFrom(other *Storage[T]) {
	s.MemcpyFrom(other)
	other.heap = nil
	other.size = 0
	other.mode = ModeInline
}
