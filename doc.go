// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spscq provides a fixed-capacity lock-free single-producer
// single-consumer bounded queue.
//
// The queue is a building block for high-throughput pipelines connecting
// exactly one producer goroutine to exactly one consumer goroutine without
// locks or blocking syscalls on the fast path. It is based on Lamport's
// ring buffer with cached index optimization: each side keeps a private,
// deliberately stale copy of the opposite cursor and only pays for a
// cross-core acquire load when the queue appears full or empty.
//
// # Quick Start
//
// Direct constructors take the capacity as a power-of-two exponent:
//
//	q := spscq.NewQueue[Event](10)   // capacity 1024, non-blocking only
//	w := spscq.NewWaitable[Event](4) // capacity 16, adds blocking Push/Pop
//
// Builder API:
//
//	q := spscq.BuildQueue[Event](spscq.New(10))
//	w := spscq.BuildWaitable[Event](spscq.New(4).Waitable())
//
// # Basic Usage
//
//	// Producer goroutine
//	v := 42
//	if err := q.TryPush(&v); err != nil {
//	    // Queue is full - handle backpressure
//	}
//
//	// Consumer goroutine
//	elem, err := q.TryPop()
//	if err == nil {
//	    process(elem)
//	}
//
// TryPush and TryPop never block and never fail for any reason other than
// the queue being full or empty. A pipeline stage that prefers parking over
// spinning uses the waitable variant:
//
//	// Producer goroutine
//	w.Push(&v) // Blocks while full
//
//	// Consumer goroutine
//	elem := w.Pop() // Blocks while empty
//
// # Reservation API
//
// For advanced use, reservation and commit are exposed separately. A
// reservation grants exclusive access to one slot; the element becomes
// visible to the other side only on Commit. This allows constructing the
// element in place instead of copying it in:
//
//	p, err := q.TryPusher()
//	if err != nil {
//	    return err // ErrFull
//	}
//	slot := p.Slot()
//	slot.ID = nextID
//	slot.Payload = payload
//	p.Commit()
//
// The consumer side mirrors this with TryPopper, reading through Slot
// before Commit clears and releases it.
//
// At most one reservation per side may be outstanding at a time. This is a
// caller-enforced contract: committing a reservation after a second one
// advanced the cursor panics (detected by a sequentially consistent
// comparison of the live cursor against the captured one). Builds with the
// spscq_nochecks tag compile the check out; that trades deterministic
// misuse detection for speed and should be a conscious choice.
//
// # Memory Ordering
//
// The acquire/release pairing on the two cursors is the sole
// synchronization mechanism. A release store of a cursor makes every prior
// write to the corresponding slot visible to the other side once a
// matching acquire load observes the new cursor value. Reads of a
// goroutine's own cursor are relaxed, which is safe because each cursor
// has exactly one writer.
//
// # Thread Safety
//
// Exactly two goroutines, fixed roles: one calls the push side, one calls
// the pop side. No third goroutine may call either. Violating this
// constraint causes undefined behavior including data corruption; the
// commit-time check catches the reservation-level misuse deterministically
// but cannot police arbitrary concurrent callers.
//
// Size, IsEmpty and IsFull may be called for diagnostics from either role;
// their results are advisory and may be stale the instant they return.
// Never base correctness-critical control flow on them - the reservation
// protocol is the only correctness-critical path.
//
// # Capacity
//
// Capacity is fixed at construction as 1<<log2Capacity with log2Capacity
// in [1, 31]. The power-of-two requirement makes slot indexing a bitmask
// and keeps the 32-bit cursor wraparound arithmetic exact; out-of-range
// exponents panic at construction, before the queue becomes usable.
//
// # Queue Variants
//
// Three flavors are available:
//
//	Queue[T] / Waitable[T] - generic type-safe queues for any value type
//	Indirect               - uintptr values (pool indices, handles)
//	Ptr                    - unsafe.Pointer values (zero-copy handoff)
//
// When to use Indirect:
//
//	pool := make([][]byte, 1024)
//	freeList := spscq.NewIndirect(10)
//
//	for i := range pool {
//	    pool[i] = make([]byte, 4096)
//	    freeList.TryPush(uintptr(i))
//	}
//
//	idx, err := freeList.TryPop() // Allocate
//	buf := pool[idx]
//	freeList.TryPush(idx)         // Free
//
// # Error Handling
//
// Non-blocking operations return [ErrFull] or [ErrEmpty], both wrapping
// [code.hybscloud.com/iox]'s ErrWouldBlock for ecosystem consistency.
// These are control flow signals, not failures:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.TryPush(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !spscq.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but cannot
// observe happens-before relationships established through atomic memory
// orderings on separate variables. Concurrent producer/consumer tests of
// this package therefore trigger false positives and are skipped under the
// detector via the RaceEnabled constant; the algorithm itself is correct
// under the acquire/release contract documented above.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions in the blocking reserve's spin phase.
package spscq
