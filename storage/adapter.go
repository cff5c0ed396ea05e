package storage

import "github.com/jmoss/smallvec/alloc"

// ValueAdapter is a cursor yielding one element value per slot during bulk
// construction or assignment.
//
// The storage layer calls ConstructNext or AssignNext exactly once per slot,
// strictly in order, never skipping a slot. ConstructNext begins a lifetime
// through the allocator; AssignNext overwrites an already-live element.
// Stateful adapters advance their cursor only after a successful yield, so a
// retried operation would resume at the failed position.
type ValueAdapter[T any] interface {
	ConstructNext(a alloc.Allocator[T], dst *T) error
	AssignNext(dst *T) error
}

// CopyValue yields the same retained value for every slot.
type CopyValue[T any] struct {
	v T
}

// NewCopyValue returns an adapter repeating v.
func NewCopyValue[T any](v T) *CopyValue[T] {
	return &CopyValue[T]{v: v}
}

func (c *CopyValue[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	return a.Construct(dst, c.v)
}

func (c *CopyValue[T]) AssignNext(dst *T) error {
	*dst = c.v
	return nil
}

// DefaultValues yields a fresh zero value for every slot.
type DefaultValues[T any] struct{}

// NewDefaultValues returns an adapter yielding zero values.
func NewDefaultValues[T any]() *DefaultValues[T] {
	return &DefaultValues[T]{}
}

func (*DefaultValues[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	var zero T
	return a.Construct(dst, zero)
}

func (*DefaultValues[T]) AssignNext(dst *T) error {
	var zero T
	*dst = zero
	return nil
}

// SliceValues is a forward cursor over a source slice. The source is read,
// never modified.
type SliceValues[T any] struct {
	src []T
	i   int
}

// NewSliceValues returns an adapter walking src from the front. The caller
// must request no more elements than len(src).
func NewSliceValues[T any](src []T) *SliceValues[T] {
	return &SliceValues[T]{src: src}
}

func (s *SliceValues[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	if err := a.Construct(dst, s.src[s.i]); err != nil {
		return err
	}
	s.i++
	return nil
}

func (s *SliceValues[T]) AssignNext(dst *T) error {
	*dst = s.src[s.i]
	s.i++
	return nil
}

// MoveValues relocates values out of a source slice: after a slot is
// yielded, the source position is overwritten with the zero value. The
// source elements stay live in their moved-from state; their lifetimes still
// end wherever they always would.
type MoveValues[T any] struct {
	src []T
	i   int
}

// NewMoveValues returns a relocating adapter over src. Yielded source
// positions are invalidated (zeroed), so the caller must not read them back.
func NewMoveValues[T any](src []T) *MoveValues[T] {
	return &MoveValues[T]{src: src}
}

func (m *MoveValues[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	if err := a.Construct(dst, m.src[m.i]); err != nil {
		return err
	}
	var zero T
	m.src[m.i] = zero
	m.i++
	return nil
}

func (m *MoveValues[T]) AssignNext(dst *T) error {
	*dst = m.src[m.i]
	var zero T
	m.src[m.i] = zero
	m.i++
	return nil
}

// FuncValues pulls each value from a callback, for sources that are neither
// a constant nor a slice. An error from the callback aborts the operation
// before the slot's lifetime begins.
type FuncValues[T any] struct {
	next func() (T, error)
}

// NewFuncValues returns an adapter pulling values from next.
func NewFuncValues[T any](next func() (T, error)) *FuncValues[T] {
	return &FuncValues[T]{next: next}
}

func (f *FuncValues[T]) ConstructNext(a alloc.Allocator[T], dst *T) error {
	v, err := f.next()
	if err != nil {
		return err
	}
	return a.Construct(dst, v)
}

func (f *FuncValues[T]) AssignNext(dst *T) error {
	v, err := f.next()
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
