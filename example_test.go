// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq_test

import (
	"fmt"

	"code.hybscloud.com/spscq"
)

// ExampleQueue demonstrates basic non-blocking usage.
func ExampleQueue() {
	q := spscq.NewQueue[string](2) // capacity 4

	for _, s := range []string{"alpha", "beta", "gamma"} {
		if err := q.TryPush(&s); err != nil {
			fmt.Println("full:", err)
		}
	}

	for {
		s, err := q.TryPop()
		if err != nil {
			break
		}
		fmt.Println(s)
	}

	// Output:
	// alpha
	// beta
	// gamma
}

// ExampleQueue_TryPusher demonstrates in-place construction through the
// reservation API.
func ExampleQueue_TryPusher() {
	type frame struct {
		Seq  int
		Data [4]byte
	}
	q := spscq.NewQueue[frame](3)

	p, err := q.TryPusher()
	if err != nil {
		fmt.Println("full")
		return
	}
	slot := p.Slot()
	slot.Seq = 1
	copy(slot.Data[:], "ping")
	p.Commit()

	f, _ := q.TryPop()
	fmt.Printf("%d %s\n", f.Seq, f.Data[:])

	// Output:
	// 1 ping
}

// ExampleNew demonstrates the builder.
func ExampleNew() {
	q := spscq.BuildQueue[int](spscq.New(5))
	fmt.Println(q.Cap())

	w := spscq.BuildWaitable[int](spscq.New(3).Waitable())
	fmt.Println(w.Cap())

	// Output:
	// 32
	// 8
}
