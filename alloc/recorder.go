package alloc

// Stats is a snapshot of a Recorder's counters.
type Stats struct {
	AllocateCalls     int   // Total Allocate() calls, including failed ones
	AllocateFailures  int   // Allocate() calls that returned an error
	DeallocateCalls   int   // Total Deallocate() calls
	ConstructCalls    int   // Total Construct() calls, including failed ones
	ConstructFailures int   // Construct() calls that returned an error
	DestroyCalls      int   // Total Destroy() calls
	ElementsAllocated int64 // Sum of n over successful Allocate(n) calls

	// Outstanding is the number of issued buffers not yet returned.
	Outstanding int

	// Live is the number of element lifetimes begun and not yet ended.
	Live int

	// ForeignDeallocates counts Deallocate() calls whose buffer this
	// recorder never issued (or already took back). Always a caller bug.
	ForeignDeallocates int
}

// Recorder wraps an inner allocator and audits every call through it.
//
// It tracks outstanding buffers and live elements, and can inject a failure
// on the n-th Allocate or Construct call. A zero FailAllocateOn or
// FailConstructOn means never inject.
//
// Recorder is not thread-safe, matching the storage layer it audits.
type Recorder[T any] struct {
	inner Allocator[T]
	stats Stats

	// issued maps the first element of each outstanding buffer to the
	// capacity it was issued with, so Deallocate can verify both identity
	// and that capacity is reported back intact.
	issued map[*T]int

	// FailAllocateOn injects ErrAllocateInjected on the n-th Allocate call
	// (1-based). FailConstructOn does the same for Construct.
	FailAllocateOn  int
	FailConstructOn int
}

// NewRecorder wraps inner with call auditing. A nil inner uses Default.
func NewRecorder[T any](inner Allocator[T]) *Recorder[T] {
	if inner == nil {
		inner = NewDefault[T]()
	}
	return &Recorder[T]{
		inner:  inner,
		issued: make(map[*T]int),
	}
}

// Allocate delegates to the inner allocator, recording the buffer on success.
func (r *Recorder[T]) Allocate(n int) ([]T, error) {
	r.stats.AllocateCalls++
	if r.FailAllocateOn != 0 && r.stats.AllocateCalls == r.FailAllocateOn {
		r.stats.AllocateFailures++
		return nil, ErrAllocateInjected
	}

	buf, err := r.inner.Allocate(n)
	if err != nil {
		r.stats.AllocateFailures++
		return nil, err
	}

	r.stats.ElementsAllocated += int64(n)
	if len(buf) > 0 {
		r.issued[&buf[0]] = cap(buf)
	}
	return buf, nil
}

// Deallocate returns a buffer to the inner allocator. Buffers this recorder
// never issued are counted as foreign and not forwarded.
func (r *Recorder[T]) Deallocate(buf []T) {
	r.stats.DeallocateCalls++

	if len(buf) == 0 {
		r.stats.ForeignDeallocates++
		return
	}
	key := &buf[0]
	if _, ok := r.issued[key]; !ok {
		r.stats.ForeignDeallocates++
		return
	}
	delete(r.issued, key)
	r.inner.Deallocate(buf)
}

// Construct delegates to the inner allocator, counting the lifetime on success.
func (r *Recorder[T]) Construct(dst *T, v T) error {
	r.stats.ConstructCalls++
	if r.FailConstructOn != 0 && r.stats.ConstructCalls == r.FailConstructOn {
		r.stats.ConstructFailures++
		return ErrConstructInjected
	}

	if err := r.inner.Construct(dst, v); err != nil {
		r.stats.ConstructFailures++
		return err
	}
	return nil
}

// Destroy ends a lifetime via the inner allocator.
func (r *Recorder[T]) Destroy(dst *T) {
	r.stats.DestroyCalls++
	r.inner.Destroy(dst)
}

// Stats returns a snapshot of the counters with the derived fields filled in.
func (r *Recorder[T]) Stats() Stats {
	s := r.stats
	s.Outstanding = len(r.issued)
	s.Live = (s.ConstructCalls - s.ConstructFailures) - s.DestroyCalls
	return s
}

// IssuedCapacity reports the capacity an outstanding buffer was issued with,
// or ok = false when the buffer is not outstanding.
func (r *Recorder[T]) IssuedCapacity(buf []T) (int, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	n, ok := r.issued[&buf[0]]
	return n, ok
}
