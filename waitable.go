// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "code.hybscloud.com/spin"

// blockingSpin bounds the pause phase of a blocking reserve before the
// goroutine parks on the opposite cursor.
const blockingSpin = 64

// Waitable is a Queue with blocking push and pop.
//
// The non-blocking operations are inherited from Queue unchanged and stay
// lock-free. The blocking operations park the calling goroutine on the
// opposite cursor until the other side commits, instead of returning
// ErrFull/ErrEmpty. Wakeups are coordinated through a wait/wake cell per
// cursor; the commit path only touches a cell's lock when a waiter is
// actually parked.
//
// Blocking methods exist only on this type: calling Push or Pop on a plain
// Queue is a compile error, not a runtime one.
type Waitable[T any] struct {
	Queue[T]
	notEmptyCell waitCell
	notFullCell  waitCell
}

// NewWaitable creates a new waitable queue with capacity 1<<log2Capacity.
// Construction rules are those of NewQueue.
func NewWaitable[T any](log2Capacity int) *Waitable[T] {
	w := &Waitable[T]{}
	w.init(log2Capacity)
	w.notEmptyCell.init()
	w.notFullCell.init()
	w.notEmpty = &w.notEmptyCell
	w.notFull = &w.notFullCell
	return w
}

// Pusher reserves the next slot for writing, blocking while the queue is
// full (producer only).
//
// The reserve runs the same fullness check as TryPusher. On apparent
// fullness it first spins briefly, then parks on the head cursor with the
// refreshed cached value as the expected value. A wakeup, spurious or not,
// only re-enters the check; the reservation is returned when space exists.
func (w *Waitable[T]) Pusher() Pusher[T] {
	sw := spin.Wait{}
	spins := 0
	for {
		tail := w.tail.LoadRelaxed()
		if tail-w.cachedHead > w.mask {
			w.cachedHead = w.head.LoadAcquire()
			if tail-w.cachedHead > w.mask {
				if spins < blockingSpin {
					spins++
					sw.Once()
					continue
				}
				w.notFullCell.wait(&w.head, w.cachedHead)
				continue
			}
		}
		return Pusher[T]{q: &w.Queue, cursor: tail}
	}
}

// Popper reserves the oldest element for reading, blocking while the queue
// is empty (consumer only). Symmetric to Pusher, parked on the tail cursor.
func (w *Waitable[T]) Popper() Popper[T] {
	sw := spin.Wait{}
	spins := 0
	for {
		head := w.head.LoadRelaxed()
		if head == w.cachedTail {
			w.cachedTail = w.tail.LoadAcquire()
			if head == w.cachedTail {
				if spins < blockingSpin {
					spins++
					sw.Once()
					continue
				}
				w.notEmptyCell.wait(&w.tail, w.cachedTail)
				continue
			}
		}
		return Popper[T]{q: &w.Queue, cursor: head}
	}
}

// Push adds an element, blocking while the queue is full (producer only).
// The element is copied into the reserved slot.
func (w *Waitable[T]) Push(elem *T) {
	p := w.Pusher()
	*p.Slot() = *elem
	p.Commit()
}

// Pop removes and returns the oldest element, blocking while the queue is
// empty (consumer only).
func (w *Waitable[T]) Pop() T {
	p := w.Popper()
	elem := *p.Slot()
	p.Commit()
	return elem
}
