package storage

import "github.com/jmoss/smallvec/alloc"

// AllocationTransaction holds at most one allocator-issued buffer that no
// Storage owns yet. The buffer stays with the transaction until either
// Commit hands it to its permanent owner or Rollback returns it to the
// allocator.
//
// The intended shape is the same as any Go resource guard:
//
//	tx := NewAllocationTransaction(a)
//	defer tx.Rollback()
//	buf, err := tx.Allocate(n)
//	// ... construct into buf; any early return releases it ...
//	owned := tx.Commit() // Rollback is a no-op from here on
//
// A transaction is single-use: one Allocate, then one Commit or Rollback.
type AllocationTransaction[T any] struct {
	alloc alloc.Allocator[T]
	data  []T
}

// NewAllocationTransaction returns an empty transaction drawing from a.
func NewAllocationTransaction[T any](a alloc.Allocator[T]) *AllocationTransaction[T] {
	return &AllocationTransaction[T]{alloc: a}
}

// Allocate requests a buffer of capacity n and records it as pending.
func (tx *AllocationTransaction[T]) Allocate(n int) ([]T, error) {
	if tx.data != nil {
		return nil, ErrTransactionHeld
	}
	buf, err := tx.alloc.Allocate(n)
	if err != nil {
		return nil, err
	}
	tx.data = buf
	return buf, nil
}

// DidAllocate reports whether a buffer is currently pending.
func (tx *AllocationTransaction[T]) DidAllocate() bool {
	return tx.data != nil
}

// Data returns the pending buffer, or nil.
func (tx *AllocationTransaction[T]) Data() []T {
	return tx.data
}

// Capacity returns the pending buffer's capacity, or 0.
func (tx *AllocationTransaction[T]) Capacity() int {
	return cap(tx.data)
}

// Commit transfers ownership of the pending buffer to the caller and clears
// the record, turning any later Rollback into a no-op.
func (tx *AllocationTransaction[T]) Commit() []T {
	buf := tx.data
	tx.data = nil
	return buf
}

// Rollback returns the pending buffer to the allocator, if one is still
// held. Safe to defer unconditionally and safe to call after Commit.
func (tx *AllocationTransaction[T]) Rollback() {
	if tx.data == nil {
		return
	}
	tx.alloc.Deallocate(tx.data)
	tx.data = nil
}
