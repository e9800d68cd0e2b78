package Queues

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestArrayQueue_FIFO(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		var model []int
		for range 2000 {
			if rg.Intn(3) == 0 {
				v, err := q.Pop()
				if len(model) == 0 {
					if !errors.Is(err, ErrEmptyQueue) {
						t.Errorf("pop on empty queue returned %v", err)
					}
					continue
				}
				if err != nil || v != model[0] {
					t.Errorf("pop returned %d, %v; want %d", v, err, model[0])
				}
				model = model[1:]
			} else {
				v := rg.Int()
				q.Push(v)
				model = append(model, v)
			}
			if q.Size() != uint(len(model)) {
				t.Fatalf("size is %d, want %d", q.Size(), len(model))
			}
			if len(model) > 0 && q.Peek() != model[0] {
				t.Errorf("peek is %d, want %d", q.Peek(), model[0])
			}
		}
	}
}

func TestArrayQueue_ShrinkClear(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := range 10 {
		q.Push(i)
	}
	for range 6 {
		q.Pop()
	}
	q.Shrink()
	for i := 6; i < 10; i++ {
		if v, err := q.Pop(); err != nil || v != i {
			t.Errorf("pop after shrink returned %d, %v; want %d", v, err, i)
		}
	}
	q.Push(1)
	q.Clear()
	if !q.Empty() || q.Peek() != 0 {
		t.Errorf("queue not empty after Clear")
	}
}
