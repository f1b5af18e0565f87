package buffer

import "github.com/aalhour/binlogevents/internal/resource"

// ManagedBufferSequence is an owned, growable, non-contiguous buffer
// sequence. Grounded on spec.md §3/§4.1
// (Managed_buffer_sequence) and
// original_source/libs/mysql/containers/buffers/managed_buffer_sequence.h.
//
// Unlike ManagedBuffer, growing never moves existing data: a new trailing
// buffer is appended to hold the additional capacity. This is the type
// streaming Compressor implementations write their output into
// (internal/compression), since it lets them request more space without
// invalidating slices they already handed to a caller.
type ManagedBufferSequence[T any] struct {
	rw       RwBufferSequence[T]
	grow     GrowCalculator
	resource resource.MemoryResource[T]
}

// NewManagedBufferSequence returns an empty sequence.
func NewManagedBufferSequence[T any](res resource.MemoryResource[T]) *ManagedBufferSequence[T] {
	return &ManagedBufferSequence[T]{
		grow:     NewGrowCalculator(),
		resource: res,
	}
}

func (s *ManagedBufferSequence[T]) ReadParts() []View[T]  { return s.rw.ReadParts() }
func (s *ManagedBufferSequence[T]) WriteParts() []View[T] { return s.rw.WriteParts() }
func (s *ManagedBufferSequence[T]) Capacity() int         { return s.rw.Capacity() }
func (s *ManagedBufferSequence[T]) Position() int         { return s.rw.Position() }

func (s *ManagedBufferSequence[T]) SetPosition(n int)      { s.rw.SetPosition(n) }
func (s *ManagedBufferSequence[T]) IncreasePosition(d int) { s.rw.IncreasePosition(d) }
func (s *ManagedBufferSequence[T]) MovePosition(d int)     { s.rw.MovePosition(d) }

func (s *ManagedBufferSequence[T]) GrowCalculator() GrowCalculator    { return s.grow }
func (s *ManagedBufferSequence[T]) SetGrowCalculator(g GrowCalculator) { s.grow = g }

// ReserveTotalSize ensures Capacity() >= requestedSize by appending one
// new trailing buffer sized to the shortfall; existing buffers, and any
// views a caller already holds into them, are left untouched.
func (s *ManagedBufferSequence[T]) ReserveTotalSize(requestedSize int) GrowStatus {
	capacity := s.rw.Capacity()
	status, newCapacity64 := s.grow.ComputeNewSize(uint64(capacity), uint64(requestedSize))
	if status != GrowSuccess {
		return status
	}
	newCapacity := int(newCapacity64)
	if newCapacity <= capacity {
		return GrowSuccess
	}
	shortfall := newCapacity - capacity
	newBuf := s.resource.Allocate(shortfall)
	if newBuf == nil || cap(newBuf) < shortfall {
		return GrowOutOfMemory
	}
	s.rw.buffers = append(s.rw.buffers, newBuf[:shortfall])
	return GrowSuccess
}

// ReserveWriteSize ensures len(concat(WriteParts())) >= requestedWriteSize.
func (s *ManagedBufferSequence[T]) ReserveWriteSize(requestedWriteSize int) GrowStatus {
	return s.ReserveTotalSize(s.rw.Position() + requestedWriteSize)
}

// Write reserves enough write capacity for src, copies it across as many
// trailing buffers as needed, and advances the position by len(src).
func (s *ManagedBufferSequence[T]) Write(src []T) GrowStatus {
	if status := s.ReserveWriteSize(len(src)); status != GrowSuccess {
		return status
	}
	s.rw.CopyWriteParts(src)
	s.rw.IncreasePosition(len(src))
	return GrowSuccess
}

// Reset moves every buffer to the write part (position 0), deallocates
// every buffer beyond the first keepBufferCount, and shrinks the
// container itself (the slice of buffer headers, not the buffers'
// payload) if its capacity exceeds twice keepContainerCapacity.
func (s *ManagedBufferSequence[T]) Reset(keepBufferCount, keepContainerCapacity int) {
	s.rw.pos = 0
	if keepBufferCount < 0 {
		keepBufferCount = 0
	}
	if keepBufferCount < len(s.rw.buffers) {
		for _, b := range s.rw.buffers[keepBufferCount:] {
			s.resource.Deallocate(b)
		}
		s.rw.buffers = s.rw.buffers[:keepBufferCount]
	}
	if cap(s.rw.buffers) > 2*keepContainerCapacity {
		shrunk := make([][]T, len(s.rw.buffers), max(len(s.rw.buffers), keepContainerCapacity))
		copy(shrunk, s.rw.buffers)
		s.rw.buffers = shrunk
	}
}

// BufferCount returns the number of physical buffers currently held.
func (s *ManagedBufferSequence[T]) BufferCount() int { return len(s.rw.buffers) }
