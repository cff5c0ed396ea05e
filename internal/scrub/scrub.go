// Package scrub overwrites freed element memory with a sentinel byte so that
// use-after-free reads surface as obviously corrupt values instead of stale
// but plausible ones. It is a diagnostic aid only, never part of the storage
// contract.
package scrub

import (
	"reflect"
	"sync"
	"unsafe"
)

// Pattern is the sentinel written over freed element bytes.
const Pattern = 0xAB

var pointerFree sync.Map // reflect.Type -> bool

// Slice fills the memory backing s with the sentinel pattern.
//
// Types containing pointers are skipped: scribbling over a live pointer word
// would hand the garbage collector an invalid reference. The pointer-free
// check is cached per element type.
func Slice[T any](s []T) {
	if len(s) == 0 {
		return
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	ok, hit := pointerFree.Load(t)
	if !hit {
		ok = isPointerFree(t)
		pointerFree.Store(t, ok)
	}
	if !ok.(bool) {
		return
	}

	size := unsafe.Sizeof(s[0]) * uintptr(len(s))
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), size)
	for i := range bytes {
		bytes[i] = Pattern
	}
}

// isPointerFree reports whether values of t contain no pointer words.
func isPointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, slices, maps, chans, funcs, strings, interfaces.
		return false
	}
}
