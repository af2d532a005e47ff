// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "unsafe"

// Options configures queue creation.
type Options struct {
	// Waitable selects the blocking-capable variant.
	waitable bool

	// Capacity exponent: capacity is 1<<log2Capacity.
	log2Capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Non-waitable queue, capacity 1024
//	q := spscq.BuildQueue[Event](spscq.New(10))
//
//	// Waitable queue, capacity 16
//	q := spscq.BuildWaitable[Event](spscq.New(4).Waitable())
//
//	// Indirect queue for pool indices
//	q := spscq.New(8).BuildIndirect()
type Builder struct {
	opts Options
}

// New creates a queue builder with capacity 1<<log2Capacity.
// Panics if log2Capacity is outside [1, 31]; see NewQueue.
func New(log2Capacity int) *Builder {
	capacityFor(log2Capacity)
	return &Builder{opts: Options{log2Capacity: log2Capacity}}
}

// Waitable declares that blocking push and pop will be used.
// Build then returns a *Waitable[T] behind the interface; the typed
// BuildWaitable returns it directly.
func (b *Builder) Waitable() *Builder {
	b.opts.waitable = true
	return b
}

// Build creates a queue behind the combined non-blocking interface.
// Blocking operations require the concrete *Waitable[T]; use BuildWaitable
// when they are needed, so the requirement is a compile-time fact.
func Build[T any](b *Builder) Interface[T] {
	if b.opts.waitable {
		return NewWaitable[T](b.opts.log2Capacity)
	}
	return NewQueue[T](b.opts.log2Capacity)
}

// BuildQueue creates a non-waitable queue with a concrete return type.
// Panics if the builder is configured with Waitable().
func BuildQueue[T any](b *Builder) *Queue[T] {
	if b.opts.waitable {
		panic("spscq: BuildQueue requires a builder without Waitable()")
	}
	return NewQueue[T](b.opts.log2Capacity)
}

// BuildWaitable creates a waitable queue with a concrete return type.
// Panics if the builder is not configured with Waitable().
func BuildWaitable[T any](b *Builder) *Waitable[T] {
	if !b.opts.waitable {
		panic("spscq: BuildWaitable requires Waitable()")
	}
	return NewWaitable[T](b.opts.log2Capacity)
}

// BuildIndirect creates a queue for uintptr values.
// The indirect variant has no waitable mode; panics if Waitable() is set.
func (b *Builder) BuildIndirect() *Indirect {
	if b.opts.waitable {
		panic("spscq: BuildIndirect requires a builder without Waitable()")
	}
	return NewIndirect(b.opts.log2Capacity)
}

// BuildPtr creates a queue for unsafe.Pointer values.
// The pointer variant has no waitable mode; panics if Waitable() is set.
func (b *Builder) BuildPtr() *Ptr {
	if b.opts.waitable {
		panic("spscq: BuildPtr requires a builder without Waitable()")
	}
	return NewPtr(b.opts.log2Capacity)
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte
