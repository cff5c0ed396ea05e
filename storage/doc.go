// Package storage implements the representation underneath a small-buffer
// optimized dynamic array: up to InlineCapacity elements live in an arena
// owned by the Storage itself, and anything larger moves to a buffer issued
// by the element allocator.
//
// # Overview
//
// Storage tracks a size and a mode (inline or heap) and exposes exactly four
// lifecycle operations:
//
//   - Initialize(values, n): first population, callable once from empty
//   - Assign(values, n): replace all contents with a new size and source
//   - ShrinkToFit(): reclaim heap slack, reverting to inline when n fits
//   - Destroy(): end all element lifetimes and release the heap buffer
//
// Element values are pulled from a ValueAdapter, a cursor yielding one value
// per slot: NewCopyValue repeats a single value, NewDefaultValues yields
// fresh zero values, NewSliceValues walks a slice, NewMoveValues relocates
// out of a slice, and NewFuncValues pulls from a callback.
//
// # Failure Contract
//
// The only failure channels are allocation (Allocator.Allocate) and element
// construction (Allocator.Construct); both surface as ordinary error returns.
// Operations that allocate hold the new buffer in an AllocationTransaction
// until every construction has succeeded, so a failure on that path leaves
// the Storage exactly as it was: the half-built prefix is destroyed by the
// construction helper and the pending buffer is released by the transaction.
// In-place assignment paths offer only the helpers' guarantees; completed
// assignments are not rolled back.
//
// Element destruction and deallocation never fail. Violating that assumption
// in an Allocator implementation is a precondition violation, not a
// recoverable condition.
//
// # Usage
//
//	st, err := storage.New[int](4, nil) // nil allocator = alloc.Default
//	if err != nil {
//		return err
//	}
//	defer st.Destroy()
//
//	if err := st.Initialize(storage.NewCopyValue(7), 2); err != nil {
//		return err
//	}
//	// st.Mode() == storage.ModeInline, st.Elements() == []int{7, 7}
//
//	if err := st.Assign(storage.NewSliceValues([]int{1, 2, 3, 4, 5, 6}), 6); err != nil {
//		return err
//	}
//	// st.Mode() == storage.ModeHeap, st.Capacity() == 6
//
// # Diagnostics
//
// When the SMALLVEC_SCRUB environment variable is set, memory vacated by
// destroyed elements of pointer-free types is overwritten with 0xAB so that
// use-after-free reads become obvious. This is diagnostic only.
//
// # Thread Safety
//
// Storage instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Related Packages
//
//   - github.com/jmoss/smallvec/alloc: the allocator contract and the
//     Default and Recorder implementations
package storage
