// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// Interface is the combined non-blocking producer-consumer contract
// satisfied by both *Queue[T] and *Waitable[T].
//
// Example:
//
//	q := spscq.Build[int](spscq.New(10)) // capacity 1024
//
//	val := 42
//	if err := q.TryPush(&val); err != nil {
//	    // Handle full queue
//	}
//
//	elem, err := q.TryPop()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Interface[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the non-blocking enqueue side of the contract.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after TryPush returns.
//
// Exactly one goroutine may act as producer.
type Producer[T any] interface {
	// TryPush adds an element to the queue (non-blocking).
	// Returns nil on success, ErrFull if the queue is full.
	TryPush(elem *T) error
}

// Consumer is the non-blocking dequeue side of the contract.
//
// The element is returned by value, copied out of the queue's buffer; the
// vacated slot is cleared to allow garbage collection of referenced
// objects.
//
// Exactly one goroutine may act as consumer.
type Consumer[T any] interface {
	// TryPop removes and returns an element (non-blocking).
	// Returns (zero-value, ErrEmpty) if the queue is empty.
	TryPop() (T, error)
}

// BlockingProducer is the blocking enqueue side, satisfied by *Waitable[T].
type BlockingProducer[T any] interface {
	// Push adds an element, blocking while the queue is full.
	Push(elem *T)
}

// BlockingConsumer is the blocking dequeue side, satisfied by *Waitable[T].
type BlockingConsumer[T any] interface {
	// Pop removes and returns the oldest element, blocking while the
	// queue is empty.
	Pop() T
}
