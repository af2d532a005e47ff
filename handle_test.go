// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/spscq"
)

// =============================================================================
// Reservation Handles
// =============================================================================

// TestPusherReserveCommit tests in-place construction through a reservation.
func TestPusherReserveCommit(t *testing.T) {
	type event struct {
		ID      int
		Payload string
	}
	q := spscq.NewQueue[event](2)

	p, err := q.TryPusher()
	if err != nil {
		t.Fatalf("TryPusher: %v", err)
	}

	// The element is not visible before commit
	if q.Size() != 0 {
		t.Fatalf("Size before commit: got %d, want 0", q.Size())
	}
	if _, err := q.TryPop(); !errors.Is(err, spscq.ErrEmpty) {
		t.Fatalf("TryPop before commit: got %v, want ErrEmpty", err)
	}

	slot := p.Slot()
	slot.ID = 7
	slot.Payload = "hello"
	p.Commit()

	if q.Size() != 1 {
		t.Fatalf("Size after commit: got %d, want 1", q.Size())
	}
	got, err := q.TryPop()
	if err != nil {
		t.Fatalf("TryPop: %v", err)
	}
	if got.ID != 7 || got.Payload != "hello" {
		t.Fatalf("TryPop: got %+v, want {7 hello}", got)
	}
}

// TestPopperReserveCommit tests reading through a reservation.
func TestPopperReserveCommit(t *testing.T) {
	q := spscq.NewQueue[int](2)

	for i := range 3 {
		v := i * 10
		if err := q.TryPush(&v); err != nil {
			t.Fatalf("TryPush(%d): %v", i, err)
		}
	}

	p, err := q.TryPopper()
	if err != nil {
		t.Fatalf("TryPopper: %v", err)
	}

	// The slot is not released before commit
	if q.Size() != 3 {
		t.Fatalf("Size before commit: got %d, want 3", q.Size())
	}
	if got := *p.Slot(); got != 0 {
		t.Fatalf("Slot: got %d, want 0", got)
	}
	p.Commit()

	if q.Size() != 2 {
		t.Fatalf("Size after commit: got %d, want 2", q.Size())
	}
	got, err := q.TryPop()
	if err != nil || got != 10 {
		t.Fatalf("TryPop: got (%d, %v), want (10, nil)", got, err)
	}
}

// TestPusherOnFull tests that reservation fails like TryPush does.
func TestPusherOnFull(t *testing.T) {
	q := spscq.NewQueue[int](1)

	for i := range 2 {
		p, err := q.TryPusher()
		if err != nil {
			t.Fatalf("TryPusher(%d): %v", i, err)
		}
		*p.Slot() = i
		p.Commit()
	}

	if _, err := q.TryPusher(); !errors.Is(err, spscq.ErrFull) {
		t.Fatalf("TryPusher on full: got %v, want ErrFull", err)
	}
	if q.Size() != 2 {
		t.Fatalf("Size after failed reserve: got %d, want 2", q.Size())
	}
}

// TestPopperOnEmpty tests that reservation fails like TryPop does.
func TestPopperOnEmpty(t *testing.T) {
	q := spscq.NewQueue[int](1)

	if _, err := q.TryPopper(); !errors.Is(err, spscq.ErrEmpty) {
		t.Fatalf("TryPopper on empty: got %v, want ErrEmpty", err)
	}
}

// TestHandleMixedWithTryOps tests handles interleaved with fused operations.
func TestHandleMixedWithTryOps(t *testing.T) {
	q := spscq.NewQueue[int](2)

	v := 1
	if err := q.TryPush(&v); err != nil {
		t.Fatalf("TryPush: %v", err)
	}

	p, err := q.TryPusher()
	if err != nil {
		t.Fatalf("TryPusher: %v", err)
	}
	*p.Slot() = 2
	p.Commit()

	v = 3
	if err := q.TryPush(&v); err != nil {
		t.Fatalf("TryPush: %v", err)
	}

	for want := 1; want <= 3; want++ {
		got, err := q.TryPop()
		if err != nil {
			t.Fatalf("TryPop: %v", err)
		}
		if got != want {
			t.Fatalf("TryPop: got %d, want %d", got, want)
		}
	}
}

// =============================================================================
// Misuse Detection
// =============================================================================

// TestDoublePushReservationPanics tests the fail-fast contract check: a
// handle whose cursor was overtaken by a second reservation must not
// commit silently.
func TestDoublePushReservationPanics(t *testing.T) {
	q := spscq.NewQueue[int](2)

	first, err := q.TryPusher()
	if err != nil {
		t.Fatalf("TryPusher: %v", err)
	}
	second, err := q.TryPusher()
	if err != nil {
		t.Fatalf("TryPusher: %v", err)
	}

	// Committing either handle advances the cursor past the other's
	// captured value; the stale one must panic.
	*second.Slot() = 1
	second.Commit()

	defer func() {
		if recover() == nil {
			t.Fatal("stale push commit: expected panic")
		}
	}()
	*first.Slot() = 2
	first.Commit()
}

func TestDoublePopReservationPanics(t *testing.T) {
	q := spscq.NewQueue[int](2)
	for i := range 2 {
		v := i
		if err := q.TryPush(&v); err != nil {
			t.Fatalf("TryPush(%d): %v", i, err)
		}
	}

	first, err := q.TryPopper()
	if err != nil {
		t.Fatalf("TryPopper: %v", err)
	}
	second, err := q.TryPopper()
	if err != nil {
		t.Fatalf("TryPopper: %v", err)
	}

	second.Commit()

	defer func() {
		if recover() == nil {
			t.Fatal("stale pop commit: expected panic")
		}
	}()
	first.Commit()
}

// TestDoubleCommitPanics tests that committing the same handle twice is
// caught by the same check.
func TestDoubleCommitPanics(t *testing.T) {
	q := spscq.NewQueue[int](2)

	p, err := q.TryPusher()
	if err != nil {
		t.Fatalf("TryPusher: %v", err)
	}
	*p.Slot() = 1
	p.Commit()

	defer func() {
		if recover() == nil {
			t.Fatal("double commit: expected panic")
		}
	}()
	p.Commit()
}
