package storage

import (
	"os"

	"github.com/jmoss/smallvec/alloc"
	"github.com/jmoss/smallvec/internal/scrub"
)

// Freed-memory scribbling is a diagnostic aid, gated at process start by the
// SMALLVEC_SCRUB environment variable.
var scrubFreed = os.Getenv("SMALLVEC_SCRUB") != ""

// destroyElements ends the lifetime of every element in s, front to back.
// Destruction never fails.
func destroyElements[T any](a alloc.Allocator[T], s []T) {
	for i := range s {
		a.Destroy(&s[i])
	}
	if scrubFreed {
		scrub.Slice(s)
	}
}

// constructElements constructs every slot of dst in order, pulling one value
// per slot from values. If slot i fails, slots [0, i) constructed by this
// call are destroyed before the error is returned, so the batch is
// all-or-nothing.
func constructElements[T any](a alloc.Allocator[T], dst []T, values ValueAdapter[T]) error {
	for i := range dst {
		if err := values.ConstructNext(a, &dst[i]); err != nil {
			destroyElements(a, dst[:i])
			return err
		}
	}
	return nil
}

// assignElements overwrites already-live elements in place. No rollback:
// assignment mutates existing lifetimes rather than creating new ones, and
// completed assignments stand even when a later one fails.
func assignElements[T any](dst []T, values ValueAdapter[T]) error {
	for i := range dst {
		if err := values.AssignNext(&dst[i]); err != nil {
			return err
		}
	}
	return nil
}
