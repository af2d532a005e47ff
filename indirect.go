// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// Indirect is a queue for uintptr values.
// Useful for buffer pools, object pools, or any index-based handoff where
// the element is a handle rather than an object.
//
// Same cursor protocol as Queue; no waitable mode and no reservation
// handles, the fused TryPush/TryPop are the whole surface.
type Indirect struct {
	_          pad
	head       atomix.Uint32
	_          pad
	cachedTail uint32
	_          pad
	tail       atomix.Uint32
	_          pad
	cachedHead uint32
	_          pad
	buffer     []uintptr
	mask       uint32
}

// NewIndirect creates a new uintptr queue with capacity 1<<log2Capacity.
// Construction rules are those of NewQueue.
func NewIndirect(log2Capacity int) *Indirect {
	n := capacityFor(log2Capacity)
	return &Indirect{
		buffer: make([]uintptr, n),
		mask:   n - 1,
	}
}

// TryPush adds an element (producer only).
// Returns ErrFull if the queue is full.
func (q *Indirect) TryPush(elem uintptr) error {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead > q.mask {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead > q.mask {
			return ErrFull
		}
	}

	// Bounds check eliminated: tail&mask is always < len(buffer)
	// because mask = len(buffer)-1 and x&mask <= mask
	*(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(tail&q.mask)*ptrSize)) = elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// TryPop removes and returns an element (consumer only).
// Returns (0, ErrEmpty) if the queue is empty.
func (q *Indirect) TryPop() (uintptr, error) {
	head := q.head.LoadRelaxed()
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			return 0, ErrEmpty
		}
	}

	// Bounds check eliminated: head&mask is always < len(buffer)
	elem := *(*uintptr)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(head&q.mask)*ptrSize))
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Size returns the number of queued elements. Advisory, see Queue.Size.
func (q *Indirect) Size() int {
	tail := q.tail.LoadRelaxed()
	head := q.head.LoadRelaxed()
	return int(tail - head)
}

// Cap returns the queue capacity.
func (q *Indirect) Cap() int {
	return int(q.mask) + 1
}

// Ptr is a queue for unsafe.Pointer values.
// Enables zero-copy handoff: the producer enqueues a pointer and the
// consumer receives the same pointer, taking over ownership.
//
// Same cursor protocol as Queue; no waitable mode.
type Ptr struct {
	_          pad
	head       atomix.Uint32
	_          pad
	cachedTail uint32
	_          pad
	tail       atomix.Uint32
	_          pad
	cachedHead uint32
	_          pad
	buffer     []unsafe.Pointer
	mask       uint32
}

// NewPtr creates a new unsafe.Pointer queue with capacity 1<<log2Capacity.
// Construction rules are those of NewQueue.
func NewPtr(log2Capacity int) *Ptr {
	n := capacityFor(log2Capacity)
	return &Ptr{
		buffer: make([]unsafe.Pointer, n),
		mask:   n - 1,
	}
}

// TryPush adds an element (producer only).
// Returns ErrFull if the queue is full.
func (q *Ptr) TryPush(elem unsafe.Pointer) error {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead > q.mask {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead > q.mask {
			return ErrFull
		}
	}

	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(tail&q.mask)*ptrSize)) = elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// TryPop removes and returns an element (consumer only).
// Returns (nil, ErrEmpty) if the queue is empty. The slot is cleared so
// the queue does not pin the handed-off object.
func (q *Ptr) TryPop() (unsafe.Pointer, error) {
	head := q.head.LoadRelaxed()
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			return nil, ErrEmpty
		}
	}

	slot := (*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(q.buffer)), int(head&q.mask)*ptrSize))
	elem := *slot
	*slot = nil
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Size returns the number of queued elements. Advisory, see Queue.Size.
func (q *Ptr) Size() int {
	tail := q.tail.LoadRelaxed()
	head := q.head.LoadRelaxed()
	return int(tail - head)
}

// Cap returns the queue capacity.
func (q *Ptr) Cap() int {
	return int(q.mask) + 1
}
