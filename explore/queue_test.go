package explore

import (
	"math/rand"
	"sort"
	"testing"
)

// TestQueueOrdering verifies values pop in ascending priority order.
func TestQueueOrdering(t *testing.T) {
	q := NewPriorityQueue[string]()
	q.Push("c", 3)
	q.Push("a", 1)
	q.Push("d", 4)
	q.Push("b", 2)

	want := []string{"a", "b", "c", "d"}
	for _, w := range want {
		v, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() empty, want %q", w)
		}
		if v != w {
			t.Errorf("Pop() = %q, want %q", v, w)
		}
	}
}

// TestQueuePopEmpty verifies popping an empty queue signals not-found.
func TestQueuePopEmpty(t *testing.T) {
	q := NewPriorityQueue[int]()
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue returned ok")
	}

	q.Push(7, 1)
	if v, ok := q.Pop(); !ok || v != 7 {
		t.Errorf("Pop() = %d, %v, want 7, true", v, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() after draining returned ok")
	}
}

// TestQueueHeapProperty verifies ordering holds under a random workload
// with interleaved pushes and pops.
func TestQueueHeapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := NewPriorityQueue[float32]()
	var reference []float32

	for i := 0; i < 500; i++ {
		if rng.Intn(3) < 2 || len(reference) == 0 {
			p := rng.Float32() * 100
			q.Push(p, p)
			reference = append(reference, p)
		} else {
			sort.Slice(reference, func(a, b int) bool { return reference[a] < reference[b] })
			v, ok := q.Pop()
			if !ok {
				t.Fatal("Pop() empty with elements remaining")
			}
			if v != reference[0] {
				t.Fatalf("Pop() = %f, want %f", v, reference[0])
			}
			reference = reference[1:]
		}
	}

	if q.Len() != len(reference) {
		t.Errorf("Len() = %d, want %d", q.Len(), len(reference))
	}
}
