// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull indicates a non-blocking push found the queue full, ErrEmpty a
// non-blocking pop found it empty. Both are ordinary control flow outcomes
// (backpressure, no data), not failures, and leave the queue unchanged.
// The caller should retry later, with backoff or yield, rather than
// propagating the error.
//
// Both wrap [iox.ErrWouldBlock] for ecosystem consistency, so they satisfy
// errors.Is against it and are recognized by [IsWouldBlock].
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.TryPush(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if spscq.IsWouldBlock(err) {
//	        backoff.Wait() // Adaptive backpressure
//	        continue
//	    }
//	    return err // Unexpected error
//	}
var (
	ErrFull  = fmt.Errorf("spscq: queue full: %w", iox.ErrWouldBlock)
	ErrEmpty = fmt.Errorf("spscq: queue empty: %w", iox.ErrWouldBlock)
)

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrFull, and ErrEmpty.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
