// If you are AI: This file implements a bounded lock-free ring buffer used for per-subscriber delivery.
// Positions are free-running uint32 counters; only the slot index is masked.
// The writer may advance the read position when dropping the oldest entry, so the reader
// claims each slot with a compare-and-swap and retries when the writer got there first.
// Slots are atomic pointers so an overwrite never races with a read.

package bus

import "sync/atomic"

// BackpressureStrategy defines what a full ring buffer gives up.
type BackpressureStrategy uint8

const (
	// BackpressureDropOldest discards the oldest buffered entry to make room.
	BackpressureDropOldest BackpressureStrategy = iota
	// BackpressureDropNewest rejects the entry being written.
	BackpressureDropNewest
)

// RingBuffer is a bounded FIFO for one writer and one reader.
type RingBuffer[T any] struct {
	slots    []atomic.Pointer[T]
	mask     uint32
	strategy BackpressureStrategy

	head    atomic.Uint32 // next position to write
	tail    atomic.Uint32 // next position to read
	dropped atomic.Uint64
}

// NewRingBuffer creates a buffer holding at least capacity entries.
// The size is rounded up to a power of two; a zero capacity yields one slot.
func NewRingBuffer[T any](capacity uint32, strategy BackpressureStrategy) *RingBuffer[T] {
	size := uint32(1)
	for size < capacity {
		size <<= 1
	}
	return &RingBuffer[T]{
		slots:    make([]atomic.Pointer[T], size),
		mask:     size - 1,
		strategy: strategy,
	}
}

// Cap returns the number of slots.
func (rb *RingBuffer[T]) Cap() uint32 {
	return rb.mask + 1
}

// Write appends v. It returns false when v itself was dropped.
func (rb *RingBuffer[T]) Write(v T) bool {
	head := rb.head.Load()
	tail := rb.tail.Load()

	// Unsigned difference stays correct across uint32 wrap
	if head-tail > rb.mask {
		if rb.strategy == BackpressureDropNewest {
			rb.dropped.Add(1)
			return false
		}
		// A failed swap means the reader freed a slot meanwhile
		if rb.tail.CompareAndSwap(tail, tail+1) {
			rb.dropped.Add(1)
		}
	}

	rb.slots[head&rb.mask].Store(&v)
	rb.head.Store(head + 1)
	return true
}

// Read removes and returns the oldest entry.
func (rb *RingBuffer[T]) Read() (T, bool) {
	for {
		tail := rb.tail.Load()
		if tail == rb.head.Load() {
			var zero T
			return zero, false
		}
		p := rb.slots[tail&rb.mask].Load()
		if rb.tail.CompareAndSwap(tail, tail+1) {
			return *p, true
		}
	}
}

// Len returns the number of buffered entries.
func (rb *RingBuffer[T]) Len() uint32 {
	return rb.head.Load() - rb.tail.Load()
}

// Available returns the number of free slots.
func (rb *RingBuffer[T]) Available() uint32 {
	return rb.Cap() - rb.Len()
}

// Dropped returns how many entries backpressure has discarded.
func (rb *RingBuffer[T]) Dropped() uint64 {
	return rb.dropped.Load()
}
