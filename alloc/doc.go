// Package alloc defines the element allocator contract consumed by the
// storage package, plus the two implementations shipped with this module.
//
// # Overview
//
// An Allocator is responsible for four things: issuing contiguous element
// buffers, taking them back, beginning element lifetimes (Construct), and
// ending them (Destroy). The storage layer never creates or ends an element
// lifetime any other way, which is what makes its accounting auditable.
//
// # Implementations
//
// Default: the stateless allocator backed by the Go runtime
//
//   - Allocate is a plain make, Deallocate drops the buffer for the GC
//   - Construct is assignment, Destroy zeroes the slot so the GC can reclaim
//     anything the element referenced
//
// Recorder: an instrumented wrapper around any inner allocator
//
//   - Counts allocations, deallocations, constructs and destroys
//   - Tracks outstanding buffers and live elements
//   - Injects failures on the n-th Allocate or Construct call
//
// Recorder exists for tests and diagnostics: after any failed storage
// operation on the allocation path, both Outstanding and Live must read
// exactly what they read before the call.
//
// # Failure Model
//
// Allocate and Construct are the only fallible operations; they stand in for
// out-of-memory and for a failing element copy. Deallocate and Destroy never
// fail. Passing a buffer to Deallocate that the allocator did not issue is a
// caller bug, not a recoverable error.
//
// # Thread Safety
//
// Allocator implementations in this package are not thread-safe. Callers
// must synchronize externally.
package alloc
