// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// waitCell is a futex substitute: "wait while the value at this cursor
// equals expected" plus "wake one waiter". A condition variable guards a
// re-check of the cursor; the waiter count lets the wake side skip the
// lock entirely when nobody is parked, which is the common case.
//
// Missed-wakeup freedom relies on two orderings:
//
//   - The waiter registers (seq-cst Add) and re-checks the cursor (seq-cst
//     load) while holding the mutex; it enters Wait without releasing the
//     mutex in between, so a Signal cannot fall into a gap.
//   - The wake side runs after a seq-cst store of the cursor and reads the
//     waiter count with sequential consistency. In the seq-cst total order
//     either the wake side observes the registration (and signals under
//     the lock), or the waiter's re-check observes the new cursor value
//     (and never parks).
type waitCell struct {
	waiters atomix.Int32
	mu      sync.Mutex
	cond    sync.Cond
}

func (c *waitCell) init() {
	c.cond.L = &c.mu
}

// wait blocks while the cursor equals expected. Spurious wakeups are
// possible; the caller re-validates its full/empty condition after return.
func (c *waitCell) wait(cursor *atomix.Uint32, expected uint32) {
	c.mu.Lock()
	c.waiters.Add(1)
	for cursor.Load() == expected {
		c.cond.Wait()
	}
	c.waiters.Add(-1)
	c.mu.Unlock()
}

// wake unparks one waiter, if any. Called by the opposite side after it
// advanced the cursor with a seq-cst store.
func (c *waitCell) wake() {
	if c.waiters.Load() == 0 {
		return
	}
	c.mu.Lock()
	c.cond.Signal()
	c.mu.Unlock()
}
