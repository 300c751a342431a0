package nav

import "container/heap"

// SuccessorFunc calls visit for every neighbour of n with the edge cost.
type SuccessorFunc[N comparable] func(n N, visit func(next N, cost int))

// AStar searches from start to goal. The returned path excludes start and ends at goal.
// Costs are integers; heuristic must not overestimate for the path to be optimal.
// limit bounds the number of distinct nodes expanded; limit <= 0 runs until the
// open set is exhausted. ok is false when goal is unreachable within limit.
func AStar[N comparable](start, goal N, limit int, successors SuccessorFunc[N], heuristic func(N) int) (path []N, cost int, ok bool) {
	if start == goal {
		return nil, 0, true
	}

	open := &nodeHeap[N]{}
	heap.Init(open)
	heap.Push(open, &searchNode[N]{key: start, f: heuristic(start)})

	best := map[N]int{start: 0}
	closed := make(map[N]struct{}, 256)
	var seq uint64

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode[N])
		if current.key == goal {
			return current.unwind(), current.g, true
		}

		if _, done := closed[current.key]; done {
			continue
		}
		if limit > 0 && len(closed) >= limit {
			return nil, 0, false
		}
		closed[current.key] = struct{}{}

		successors(current.key, func(next N, stepCost int) {
			if _, done := closed[next]; done {
				return
			}
			g := current.g + stepCost
			if prev, seen := best[next]; seen && prev <= g {
				return
			}
			best[next] = g
			seq++
			heap.Push(open, &searchNode[N]{
				key:    next,
				parent: current,
				g:      g,
				f:      g + heuristic(next),
				seq:    seq,
			})
		})
	}

	return nil, 0, false
}

type searchNode[N comparable] struct {
	key    N
	parent *searchNode[N]
	g, f   int
	seq    uint64
	index  int
}

func (n *searchNode[N]) unwind() []N {
	var depth int
	for p := n; p.parent != nil; p = p.parent {
		depth++
	}
	path := make([]N, depth)
	for p := n; p.parent != nil; p = p.parent {
		depth--
		path[depth] = p.key
	}
	return path
}

// nodeHeap is the open list: min-heap by f, FIFO among equal f.
type nodeHeap[N comparable] []*searchNode[N]

func (h nodeHeap[N]) Len() int { return len(h) }
func (h nodeHeap[N]) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap[N]) Swap(i, j int) { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap[N]) Push(x any) {
	n := x.(*searchNode[N])
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap[N]) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}
