package resource

import "sync"

// bucketSizes mirrors the teacher's internal/mempool bucket ladder: the
// buffers this module allocates are event and frame-sized rather than the
// SST block sizes the teacher tuned for, but the same bucketed-sync.Pool
// shape avoids one size class starving another.
var bucketSizes = [6]int{256, 1024, 4 * 1024, 16 * 1024, 64 * 1024, 256 * 1024}

// PooledBytes is a MemoryResource[byte] backed by per-size-class
// sync.Pool buckets, adapted from the teacher's internal/mempool.Pool.
// Its package-level instance, Default, is the allocator PayloadEventStream
// gives its event buffers; ManagedBuffer and ManagedBufferSequence use
// whichever MemoryResource their constructor is passed.
type PooledBytes struct {
	pools [len(bucketSizes)]sync.Pool
}

// NewPooledBytes constructs a ready-to-use byte pool.
func NewPooledBytes() *PooledBytes {
	p := &PooledBytes{}
	for i := range p.pools {
		size := bucketSizes[i]
		p.pools[i] = sync.Pool{
			New: func() any {
				buf := make([]byte, 0, size)
				return &buf
			},
		}
	}
	return p
}

// Allocate returns a zero-length slice with capacity >= capacity.
func (p *PooledBytes) Allocate(capacity int) []byte {
	bucket := p.bucketFor(capacity)
	if bucket < 0 {
		return make([]byte, 0, capacity)
	}
	bufPtr, _ := p.pools[bucket].Get().(*[]byte)
	if bufPtr == nil {
		return make([]byte, 0, capacity)
	}
	return (*bufPtr)[:0]
}

// Deallocate returns buf to the pool. Buffers far larger than the top
// bucket are simply dropped, like the teacher's Put.
func (p *PooledBytes) Deallocate(buf []byte) {
	if buf == nil {
		return
	}
	bucket := p.bucketFor(cap(buf))
	if bucket < 0 || cap(buf) > bucketSizes[len(bucketSizes)-1]*2 {
		return
	}
	buf = buf[:0]
	p.pools[bucket].Put(&buf)
}

func (p *PooledBytes) bucketFor(size int) int {
	for i, bucketSize := range bucketSizes {
		if size <= bucketSize {
			return i
		}
	}
	return -1
}

// Default is the package-level pooled byte resource, analogous to the
// teacher's mempool.GlobalPool.
var Default = NewPooledBytes()

var _ MemoryResource[byte] = (*PooledBytes)(nil)
