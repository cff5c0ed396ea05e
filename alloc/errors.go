package alloc

import "errors"

var (
	// ErrBadCapacity indicates an Allocate request for a non-positive element count.
	ErrBadCapacity = errors.New("alloc: capacity must be positive")

	// ErrAllocateInjected is returned by a Recorder whose FailAllocateOn call was reached.
	ErrAllocateInjected = errors.New("alloc: injected allocate failure")

	// ErrConstructInjected is returned by a Recorder whose FailConstructOn call was reached.
	ErrConstructInjected = errors.New("alloc: injected construct failure")
)
