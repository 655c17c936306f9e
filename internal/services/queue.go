package services

import "container/heap"

// queueItem is one frontier entry. seq orders equal priorities by push
// order; gen lets a search discard entries superseded by a cheaper push.
type queueItem struct {
	vertex   int
	priority float64
	seq      int
	gen      int
}

type frontier []queueItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(queueItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

// minQueue wraps frontier with a monotonically increasing sequence counter.
type minQueue struct {
	items frontier
	seq   int
}

func (q *minQueue) push(vertex int, priority float64, gen int) {
	q.seq++
	heap.Push(&q.items, queueItem{vertex: vertex, priority: priority, seq: q.seq, gen: gen})
}

func (q *minQueue) pop() queueItem {
	return heap.Pop(&q.items).(queueItem)
}

func (q *minQueue) empty() bool { return len(q.items) == 0 }
