package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_FIFO(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](initCap)
		var want []int
		for i := range 1000 {
			if rg.Intn(3) == 0 && len(want) > 0 {
				v, e := q.Pop()
				if e != nil {
					t.Fatalf("cap %d: unexpected error %v", initCap, e)
				}
				if v != want[0] {
					t.Errorf("cap %d: popped %d, want %d", initCap, v, want[0])
				}
				want = want[1:]
			} else {
				q.Push(i)
				want = append(want, i)
			}
			if q.Size() != uint(len(want)) {
				t.Fatalf("cap %d: size is %d, want %d", initCap, q.Size(), len(want))
			}
			if len(want) > 0 && q.Peek() != want[0] {
				t.Errorf("cap %d: peek is %d, want %d", initCap, q.Peek(), want[0])
			}
		}
		for _, w := range want {
			if v, _ := q.Pop(); v != w {
				t.Errorf("cap %d: drained %d, want %d", initCap, v, w)
			}
		}
		if !q.Empty() {
			t.Errorf("cap %d: queue not empty after drain", initCap)
		}
	}
}

func TestArrayQueue_PopEmpty(t *testing.T) {
	q := MakeArrayQueue[*int](4)
	v, e := q.Pop()
	var eq *EmptyQueueError
	if !errors.As(e, &eq) {
		t.Errorf("got error %v, want EmptyQueueError", e)
	}
	if v != nil {
		t.Errorf("got %v from empty queue", v)
	}
	if q.Peek() != nil {
		t.Error("peek on empty queue is not zero")
	}
}

func TestArrayQueue_ShrinkKeepsOrder(t *testing.T) {
	q := MakeArrayQueue[int](16)
	for i := range 10 {
		q.Push(i)
	}
	for range 4 {
		q.Pop()
	}
	q.Push(10)
	q.Shrink()
	for i := 4; i <= 10; i++ {
		if v, e := q.Pop(); e != nil || v != i {
			t.Errorf("got (%d, %v), want %d", v, e, i)
		}
	}
}

func TestArrayQueue_Release(t *testing.T) {
	x := 1
	q := MakeArrayQueue[*int](2)
	q.Push(&x)
	q.Push(&x)
	q.Release()
	if !q.Empty() || q.Size() != 0 {
		t.Error("released queue is not empty")
	}
	if c := q.(*circArrQ[*int]).content; c != nil {
		t.Errorf("backing array still held: %v", c)
	}
	q.Push(&x)
	if v, _ := q.Pop(); v != &x {
		t.Error("queue unusable after Release")
	}
}
