package explore

// PriorityQueue is a binary min-heap keyed by a float32 priority.
// The backing array is 1-indexed (slot 0 is unused) so parent/child
// arithmetic stays parent=i/2, children=2i and 2i+1.
//
// Ties are broken by heap order, not insertion order; callers must not
// rely on a deterministic order among equal priorities.
type PriorityQueue[T any] struct {
	items []pqItem[T]
}

type pqItem[T any] struct {
	value    T
	priority float32
}

// NewPriorityQueue creates an empty priority queue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{items: make([]pqItem[T], 1)}
}

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int {
	return len(q.items) - 1
}

// Push inserts a value with the given priority. O(log n).
func (q *PriorityQueue[T]) Push(value T, priority float32) {
	q.items = append(q.items, pqItem[T]{value: value, priority: priority})
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the minimum-priority value. The second return
// is false when the queue is empty. O(log n).
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}
	top := q.items[1].value
	last := len(q.items) - 1
	q.items[1] = q.items[last]
	q.items = q.items[:last]
	if q.Len() > 0 {
		q.siftDown(1)
	}
	return top, true
}

func (q *PriorityQueue[T]) siftUp(i int) {
	for i > 1 {
		parent := i / 2
		if q.items[i].priority >= q.items[parent].priority {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

func (q *PriorityQueue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2 * i
		right := 2*i + 1
		smallest := i
		if left < n && q.items[left].priority < q.items[smallest].priority {
			smallest = left
		}
		if right < n && q.items[right].priority < q.items[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
