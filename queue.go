// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"math"
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Queue is a fixed-capacity single-producer single-consumer bounded queue.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's head cursor, and vice versa,
// reducing cross-core cache line traffic: the opposite cursor is only
// re-read (with acquire ordering) when the queue appears full or empty
// against the stale cached copy.
//
// Cursors are 32-bit and monotonically increasing; they wrap via unsigned
// overflow. Each cursor has exactly one writer: tail is written only by the
// producer, head only by the consumer. Slot occupancy is implied by the two
// cursors alone; tail-head (unsigned) is always in [0, Cap].
//
// Memory: O(capacity), one allocation at construction, none on the hot path.
type Queue[T any] struct {
	_          pad
	head       atomix.Uint32 // Pop cursor, consumer writes here
	_          pad
	cachedTail uint32 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint32 // Push cursor, producer writes here
	_          pad
	cachedHead uint32 // Producer's cached view of head
	_          pad
	buffer     []T
	mask       uint32

	// Wake cells, nil unless the queue belongs to a Waitable.
	// notEmpty parks the consumer on the tail cursor,
	// notFull parks the producer on the head cursor.
	notEmpty *waitCell
	notFull  *waitCell
}

// NewQueue creates a new non-waitable queue with capacity 1<<log2Capacity.
//
// log2Capacity must be in [1, 31]: capacity is a power of two so slot
// indices reduce to a bitmask, and it must stay below 2^32 for the 32-bit
// cursor wraparound arithmetic to remain correct.
//
// Panics on an out-of-range exponent or when the backing array would not
// fit the address space. Configuration errors are rejected here, before
// the queue becomes usable.
func NewQueue[T any](log2Capacity int) *Queue[T] {
	q := &Queue[T]{}
	q.init(log2Capacity)
	return q
}

func (q *Queue[T]) init(log2Capacity int) {
	n := capacityFor(log2Capacity)

	var zero T
	if size := uint64(unsafe.Sizeof(zero)); size != 0 && uint64(n) > uint64(math.MaxInt)/size {
		panic("spscq: buffer size overflows address space")
	}

	q.buffer = make([]T, n)
	q.mask = n - 1
}

// TryPush adds an element to the queue (producer only).
// The element is copied into the reserved slot; reservation, write and
// commit happen as one inseparable step.
// Returns ErrFull if the queue is full, in which case no state changes.
func (q *Queue[T]) TryPush(elem *T) error {
	p, err := q.TryPusher()
	if err != nil {
		return err
	}
	*p.Slot() = *elem
	p.Commit()
	return nil
}

// TryPop removes and returns an element (consumer only).
// Returns (zero-value, ErrEmpty) if the queue is empty, in which case no
// state changes. The vacated slot is cleared to allow garbage collection
// of referenced objects.
func (q *Queue[T]) TryPop() (T, error) {
	p, err := q.TryPopper()
	if err != nil {
		var zero T
		return zero, err
	}
	elem := *p.Slot()
	p.Commit()
	return elem, nil
}

// Size returns the number of elements currently in the queue.
//
// Both cursors are read with relaxed ordering, so the result is advisory:
// it may be stale the instant it returns while the opposite-side goroutine
// is running. Tail is read before head, which keeps the unsigned difference
// within [0, Cap]. Intended for diagnostics and tests, not for control flow;
// the reservation protocol is the only correctness-critical path.
func (q *Queue[T]) Size() int {
	tail := q.tail.LoadRelaxed()
	head := q.head.LoadRelaxed()
	return int(tail - head)
}

// IsEmpty reports whether the queue is empty. Advisory, see Size.
func (q *Queue[T]) IsEmpty() bool {
	return q.Size() == 0
}

// IsFull reports whether the queue is full. Advisory, see Size.
func (q *Queue[T]) IsFull() bool {
	return q.Size() == q.Cap()
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return int(q.mask) + 1
}

// capacityFor validates the exponent and returns 1<<log2Capacity.
func capacityFor(log2Capacity int) uint32 {
	if log2Capacity < 1 || log2Capacity > 31 {
		panic("spscq: log2Capacity must be in [1, 31]")
	}
	return uint32(1) << log2Capacity
}
