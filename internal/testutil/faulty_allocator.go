// Package testutil provides deterministic fault injection for the
// allocation-failure resilience tests required by SPEC_FULL.md §8.
package testutil

import "github.com/aalhour/binlogevents/internal/resource"

// FaultyAllocator wraps a MemoryResource and deterministically fails a
// chosen call to Allocate, returning nil as resource.MemoryResource's
// contract requires instead of panicking. Calls are counted from 1;
// FailAt == 0 disables injection and every call is forwarded.
//
// This is the counting idiom of the teacher's kill-point harness
// (count hits, fire at the Nth one) adapted from a process-killing
// side effect to a plain return value, since exercising "the Kth
// allocation fails" only requires observing how callers propagate a
// nil return, not tearing down the process.
type FaultyAllocator[T any] struct {
	Underlying resource.MemoryResource[T]
	FailAt     int

	calls int
}

// NewFaultyAllocator wraps resource.New[T]() and fails the failAt'th
// Allocate call. failAt == 0 means never fail.
func NewFaultyAllocator[T any](failAt int) *FaultyAllocator[T] {
	return &FaultyAllocator[T]{Underlying: resource.New[T](), FailAt: failAt}
}

func (f *FaultyAllocator[T]) Allocate(capacity int) []T {
	f.calls++
	if f.FailAt != 0 && f.calls == f.FailAt {
		return nil
	}
	return f.Underlying.Allocate(capacity)
}

func (f *FaultyAllocator[T]) Deallocate(buf []T) {
	f.Underlying.Deallocate(buf)
}

// Calls reports how many times Allocate has been invoked.
func (f *FaultyAllocator[T]) Calls() int {
	return f.calls
}
