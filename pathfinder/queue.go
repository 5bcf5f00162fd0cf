package pathfinder

// item is a frontier entry. seq is the discovery order and breaks cost ties.
type item[C comparable] struct {
	cell C
	cost int
	seq  int
}

// priorityQueue implements heap.Interface as a min-heap on cost, preferring
// the latest discovery among equal costs.
type priorityQueue[C comparable] []*item[C]

func (pq priorityQueue[C]) Len() int { return len(pq) }

func (pq priorityQueue[C]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq > pq[j].seq
}

func (pq priorityQueue[C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue[C]) Push(x any) {
	*pq = append(*pq, x.(*item[C]))
}

func (pq *priorityQueue[C]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}
