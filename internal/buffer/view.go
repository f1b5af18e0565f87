// Package buffer implements the growable-buffer abstractions the codec
// reads and writes through: a non-owning view, an owning contiguous
// buffer with a read/write split, and a non-contiguous sequence of such
// buffers (see spec.md §3/§4.1).
package buffer

// View is a non-owning reference to a contiguous run of T, grounded on
// original_source/libs/mysql/containers/buffers/buffer_view.h. Unlike the
// C++ Buffer_view this is just a named slice type: Go slices already
// carry pointer+length+(capacity), so there is nothing to wrap.
type View[T any] []T

// Null reports whether the view has no backing storage.
func (v View[T]) Null() bool {
	return v == nil
}

// Size is the number of elements in the view.
func (v View[T]) Size() int {
	return len(v)
}
