package buffer

import "github.com/aalhour/binlogevents/internal/resource"

// ManagedBuffer is an owned, growable, contiguous buffer split into a
// read part and a write part via RwBuffer. Grounded on
// original_source/libbinlogevents/include/buffer/managed_buffer.h
// (spec.md §4.1).
//
// The source distinguishes a caller-owned "default buffer" (to avoid
// allocation for small, short-lived instances) from a heap-allocated
// dynamic buffer, and only frees the dynamic one. This port folds both
// cases into a single resource.MemoryResource[T]: "the default buffer"
// becomes simply the first allocation, sized to defaultCapacity, and
// Reset returns it to the resource like any other — a pooled
// MemoryResource (resource.PooledBytes) gives back the allocate-small-
// first-then-reuse behavior the source achieves by hand.
type ManagedBuffer[T any] struct {
	rw              RwBuffer[T]
	grow            GrowCalculator
	resource        resource.MemoryResource[T]
	defaultCapacity int
}

// NewManagedBuffer returns an empty ManagedBuffer. No storage is
// allocated until the first ReserveTotalSize/ReserveWriteSize call.
func NewManagedBuffer[T any](res resource.MemoryResource[T], defaultCapacity int) *ManagedBuffer[T] {
	return &ManagedBuffer[T]{
		grow:            NewGrowCalculator(),
		resource:        res,
		defaultCapacity: defaultCapacity,
	}
}

func (b *ManagedBuffer[T]) ReadPart() View[T]  { return b.rw.ReadPart() }
func (b *ManagedBuffer[T]) WritePart() View[T] { return b.rw.WritePart() }
func (b *ManagedBuffer[T]) Capacity() int      { return b.rw.Capacity() }
func (b *ManagedBuffer[T]) Position() int      { return b.rw.Position() }

func (b *ManagedBuffer[T]) SetPosition(n int)      { b.rw.SetPosition(n) }
func (b *ManagedBuffer[T]) IncreasePosition(d int) { b.rw.IncreasePosition(d) }
func (b *ManagedBuffer[T]) MovePosition(d int)     { b.rw.MovePosition(d) }

func (b *ManagedBuffer[T]) GrowCalculator() GrowCalculator        { return b.grow }
func (b *ManagedBuffer[T]) SetGrowCalculator(g GrowCalculator)     { b.grow = g }

// ReserveTotalSize ensures Capacity() >= requestedSize, per spec.md
// §4.1's Managed_buffer.reserve_total_size.
func (b *ManagedBuffer[T]) ReserveTotalSize(requestedSize int) GrowStatus {
	capacity := b.rw.Capacity()
	status, newCapacity64 := b.grow.ComputeNewSize(uint64(capacity), uint64(requestedSize))
	if status != GrowSuccess {
		return status
	}
	newCapacity := int(newCapacity64)
	if newCapacity <= capacity {
		return GrowSuccess
	}
	allocSize := newCapacity
	if allocSize < b.defaultCapacity {
		allocSize = b.defaultCapacity
	}
	newBuf := b.resource.Allocate(allocSize)
	if newBuf == nil || cap(newBuf) < allocSize {
		return GrowOutOfMemory
	}
	newBuf = newBuf[:allocSize]
	readPart := b.rw.ReadPart()
	copy(newBuf, readPart)
	oldBuf := b.backing()
	b.rw = NewRwBuffer(newBuf)
	b.rw.SetPosition(len(readPart))
	if oldBuf != nil {
		b.resource.Deallocate(oldBuf)
	}
	return GrowSuccess
}

// ReserveWriteSize ensures len(WritePart()) >= requestedWriteSize.
func (b *ManagedBuffer[T]) ReserveWriteSize(requestedWriteSize int) GrowStatus {
	readSize := b.rw.ReadPart().Size()
	return b.ReserveTotalSize(readSize + requestedWriteSize)
}

// Reset returns any allocated storage to the resource, restoring the
// buffer to empty. The next reserve starts from 0 again, exactly as if
// the ManagedBuffer were new.
func (b *ManagedBuffer[T]) Reset() {
	if old := b.backing(); old != nil {
		b.resource.Deallocate(old)
	}
	b.rw = RwBuffer[T]{}
}

// backing returns the full underlying slice, or nil if nothing has been
// allocated yet.
func (b *ManagedBuffer[T]) backing() []T {
	return b.rw.full()
}
