// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"errors"
	"testing"
)

// TestCursorWrap32 starts both cursors just below the 32-bit boundary and
// pushes the queue across it: the unsigned difference arithmetic must keep
// full/empty detection and FIFO order exact through the overflow.
func TestCursorWrap32(t *testing.T) {
	q := NewQueue[int](2) // capacity 4

	start := uint32(0xFFFFFFFE) // Wraps after two pushes
	q.head.Store(start)
	q.cachedTail = start
	q.tail.Store(start)
	q.cachedHead = start

	for i := range 4 {
		v := i
		if err := q.TryPush(&v); err != nil {
			t.Fatalf("TryPush(%d) across wrap: %v", i, err)
		}
	}
	if q.Size() != 4 || !q.IsFull() {
		t.Fatalf("after filling across wrap: Size=%d IsFull=%v", q.Size(), q.IsFull())
	}
	v := 4
	if err := q.TryPush(&v); !errors.Is(err, ErrFull) {
		t.Fatalf("TryPush on full across wrap: got %v, want ErrFull", err)
	}

	for i := range 4 {
		val, err := q.TryPop()
		if err != nil {
			t.Fatalf("TryPop(%d) across wrap: %v", i, err)
		}
		if val != i {
			t.Fatalf("TryPop(%d) across wrap: got %d, want %d", i, val, i)
		}
	}
	if _, err := q.TryPop(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("TryPop on empty across wrap: got %v, want ErrEmpty", err)
	}

	// Cursors wrapped past zero
	if got := q.tail.Load(); got != start+4 {
		t.Fatalf("tail after wrap: got %#x, want %#x", got, start+4)
	}
	if got := q.head.Load(); got != start+4 {
		t.Fatalf("head after wrap: got %#x, want %#x", got, start+4)
	}
}

// TestWaitCellWakeWithoutWaiter pins the wake fast path: waking an empty
// cell must be a no-op, not a hang or a stray signal.
func TestWaitCellWakeWithoutWaiter(t *testing.T) {
	var c waitCell
	c.init()
	c.wake()
	if got := c.waiters.Load(); got != 0 {
		t.Fatalf("waiters: got %d, want 0", got)
	}
}
