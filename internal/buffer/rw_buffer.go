package buffer

// RwBuffer is a non-owning read/write manager over a fixed backing
// slice, split at a movable position into a read part and a write part.
// Grounded on
// original_source/libs/mysql/binlog/event/compression/buffer/rw_buffer.h.
//
// Unlike the source's two independently-viewed Buffer_view halves, this
// keeps one backing slice and a position: ReadPart/WritePart are computed
// by reslicing, which is both simpler and guarantees the two views always
// agree on the split point.
type RwBuffer[T any] struct {
	buf []T
	pos int
}

// NewRwBuffer wraps buf with the read part empty and the write part
// equal to the whole buffer.
func NewRwBuffer[T any](buf []T) RwBuffer[T] {
	return RwBuffer[T]{buf: buf}
}

// ReadPart returns the bytes already written and committed by
// SetPosition/IncreasePosition/MovePosition.
func (b *RwBuffer[T]) ReadPart() View[T] { return View[T](b.buf[:b.pos]) }

// WritePart returns the remaining, not-yet-committed capacity.
func (b *RwBuffer[T]) WritePart() View[T] { return View[T](b.buf[b.pos:]) }

// Capacity is the combined size of the read and write parts.
func (b *RwBuffer[T]) Capacity() int { return len(b.buf) }

// Position is the current split point, equal to len(ReadPart()).
func (b *RwBuffer[T]) Position() int { return b.pos }

// full returns the whole backing slice, read part and write part
// combined. Unexported: only ManagedBuffer, in the same package, needs
// access to the raw backing array to hand it to a MemoryResource.
func (b *RwBuffer[T]) full() []T { return b.buf }

// SetPosition moves the split point to an absolute offset.
//
// REQUIRES: 0 <= newPosition <= Capacity().
func (b *RwBuffer[T]) SetPosition(newPosition int) {
	if newPosition < 0 || newPosition > len(b.buf) {
		panic("buffer: SetPosition out of range")
	}
	b.pos = newPosition
}

// IncreasePosition moves the split point forward by increment.
//
// REQUIRES: increment <= len(WritePart()).
func (b *RwBuffer[T]) IncreasePosition(increment int) {
	b.SetPosition(b.pos + increment)
}

// MovePosition moves the split point by a signed delta, left or right.
//
// REQUIRES: the resulting position stays within [0, Capacity()].
func (b *RwBuffer[T]) MovePosition(delta int) {
	newPosition := b.pos + delta
	if newPosition < 0 {
		newPosition = 0
	}
	b.SetPosition(newPosition)
}
