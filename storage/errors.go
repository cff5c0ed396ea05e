package storage

import "errors"

var (
	// ErrInitialized indicates Initialize was called on a non-empty Storage.
	ErrInitialized = errors.New("storage: already initialized")

	// ErrBadSize indicates a negative element count.
	ErrBadSize = errors.New("storage: size must be non-negative")

	// ErrBadInlineCapacity indicates an inline arena with no room for even one element.
	ErrBadInlineCapacity = errors.New("storage: inline capacity must be positive")

	// ErrNotHeap indicates ShrinkToFit was called on an inline Storage.
	ErrNotHeap = errors.New("storage: shrink requires heap mode")

	// ErrTransactionHeld indicates Allocate was called on a transaction already holding a buffer.
	ErrTransactionHeld = errors.New("storage: allocation transaction already holds a buffer")
)
