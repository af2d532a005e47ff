// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// Pusher is an outstanding push reservation.
//
// A Pusher grants exclusive write access to one slot of the queue until
// Commit is called. At most one Pusher may be outstanding at a time;
// creating a second before the first commits violates the usage contract
// and is detected by the commit-time cursor check (panic, unless compiled
// out with the spscq_nochecks build tag).
//
// The zero Pusher is invalid; obtain one from TryPusher or Waitable.Pusher.
type Pusher[T any] struct {
	q      *Queue[T]
	cursor uint32
}

// TryPusher reserves the next slot for writing (producer only).
// Returns ErrFull if the queue is full, in which case no state changes.
//
// The push cursor is read with relaxed ordering (it has no concurrent
// writer). Fullness is first checked against the producer's cached copy of
// the head cursor; only on apparent fullness is the cached copy refreshed
// with an acquire load, which synchronizes with the consumer's release
// store and makes the slots it freed visible to this goroutine.
func (q *Queue[T]) TryPusher() (Pusher[T], error) {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead > q.mask {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead > q.mask {
			return Pusher[T]{}, ErrFull
		}
	}
	return Pusher[T]{q: q, cursor: tail}, nil
}

// Slot returns the reserved slot. The reference is valid until Commit.
func (p Pusher[T]) Slot() *T {
	return &p.q.buffer[p.cursor&p.q.mask]
}

// Commit publishes the reserved slot to the consumer and releases the
// reservation. The release store of cursor+1 is the synchronization point:
// every write to the slot that happened before Commit is visible to the
// consumer once its acquire load observes the new cursor.
//
// The stale-reservation check reads the live cursor with sequential
// consistency so that protocol misuse is caught deterministically even
// across relaxed paths.
func (p Pusher[T]) Commit() {
	q := p.q
	if checksEnabled && q.tail.Load() != p.cursor {
		panic("spscq: push commit with stale reservation: a second reservation advanced the cursor")
	}
	if q.notEmpty != nil {
		// Seq-cst store: also a release, and totally ordered against the
		// consumer's waiter registration so a parked consumer cannot miss
		// the publish (see waitCell).
		q.tail.Store(p.cursor + 1)
		q.notEmpty.wake()
		return
	}
	q.tail.StoreRelease(p.cursor + 1)
}

// Popper is an outstanding pop reservation.
//
// A Popper grants exclusive read access to one slot of the queue until
// Commit is called. At most one Popper may be outstanding at a time; the
// contract mirrors Pusher.
//
// The zero Popper is invalid; obtain one from TryPopper or Waitable.Popper.
type Popper[T any] struct {
	q      *Queue[T]
	cursor uint32
}

// TryPopper reserves the oldest element for reading (consumer only).
// Returns ErrEmpty if the queue is empty, in which case no state changes.
//
// Mirror image of TryPusher with the cursor roles swapped: relaxed read of
// the own head cursor, emptiness check against the cached tail copy,
// acquire refresh from the push cursor on apparent emptiness.
func (q *Queue[T]) TryPopper() (Popper[T], error) {
	head := q.head.LoadRelaxed()
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			return Popper[T]{}, ErrEmpty
		}
	}
	return Popper[T]{q: q, cursor: head}, nil
}

// Slot returns the reserved slot. The reference is valid until Commit,
// which clears the slot.
func (p Popper[T]) Slot() *T {
	return &p.q.buffer[p.cursor&p.q.mask]
}

// Commit releases the consumed slot back to the producer. The slot is
// cleared before the release store of cursor+1 so the producer never
// observes a freed slot that still pins garbage.
func (p Popper[T]) Commit() {
	q := p.q
	if checksEnabled && q.head.Load() != p.cursor {
		panic("spscq: pop commit with stale reservation: a second reservation advanced the cursor")
	}
	var zero T
	q.buffer[p.cursor&q.mask] = zero
	if q.notFull != nil {
		q.head.Store(p.cursor + 1)
		q.notFull.wake()
		return
	}
	q.head.StoreRelease(p.cursor + 1)
}
