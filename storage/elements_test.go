package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoss/smallvec/alloc"
	"github.com/jmoss/smallvec/internal/scrub"
)

// TestConstructElements_AllOrNothing tests that a mid-batch failure destroys
// the already-constructed prefix before the error surfaces.
func TestConstructElements_AllOrNothing(t *testing.T) {
	rec := alloc.NewRecorder[int](nil)
	rec.FailConstructOn = 3

	dst := make([]int, 5)
	err := constructElements(rec, dst, NewCopyValue(9))
	require.ErrorIs(t, err, alloc.ErrConstructInjected)

	s := rec.Stats()
	assert.Equal(t, 3, s.ConstructCalls, "construction stops at the failed slot")
	assert.Equal(t, 2, s.DestroyCalls, "the two completed slots are rolled back")
	assert.Zero(t, s.Live)
}

// TestConstructElements_Success tests the happy path leaves every slot live.
func TestConstructElements_Success(t *testing.T) {
	rec := alloc.NewRecorder[int](nil)

	dst := make([]int, 4)
	require.NoError(t, constructElements(rec, dst, NewSliceValues([]int{1, 2, 3, 4})))
	assert.Equal(t, []int{1, 2, 3, 4}, dst)
	assert.Equal(t, 4, rec.Stats().Live)
}

// TestAssignElements_NoRollback tests that completed assignments stand when a
// later one fails.
func TestAssignElements_NoRollback(t *testing.T) {
	dst := []int{1, 2, 3}

	calls := 0
	values := NewFuncValues(func() (int, error) {
		calls++
		if calls == 3 {
			return 0, assert.AnError
		}
		return calls * 10, nil
	})

	err := assignElements(dst, values)
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []int{10, 20, 3}, dst, "completed assignments are not undone")
}

// TestDestroyElements_ScrubsWhenEnabled tests the debug sentinel overwrite.
func TestDestroyElements_ScrubsWhenEnabled(t *testing.T) {
	prev := scrubFreed
	scrubFreed = true
	t.Cleanup(func() { scrubFreed = prev })

	rec := alloc.NewRecorder[uint32](nil)
	s := []uint32{1, 2, 3}
	destroyElements(rec, s)

	assert.Equal(t, 3, rec.Stats().DestroyCalls)
	sentinel := uint32(scrub.Pattern)<<24 | uint32(scrub.Pattern)<<16 |
		uint32(scrub.Pattern)<<8 | uint32(scrub.Pattern)
	for i, v := range s {
		assert.Equal(t, sentinel, v, "freed slot %d should carry the sentinel", i)
	}
}

// TestDestroyElements_NoScrubByDefault tests that the contract behavior is
// plain destruction (zeroing via the default allocator).
func TestDestroyElements_NoScrubByDefault(t *testing.T) {
	prev := scrubFreed
	scrubFreed = false
	t.Cleanup(func() { scrubFreed = prev })

	a := alloc.NewDefault[uint32]()
	s := []uint32{1, 2, 3}
	destroyElements(a, s)
	assert.Equal(t, []uint32{0, 0, 0}, s)
}
