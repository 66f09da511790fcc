package routing

import (
	"container/heap"

	"github.com/andrescamacho/starlane-logistics/internal/domain/system"
)

// openNode is an entry of the A* frontier. seq records insertion order and breaks
// f-score ties so equal candidates are always dequeued first-inserted-first.
type openNode struct {
	system *system.PlanetarySystem
	f      float64
	seq    int
	index  int
}

type nodeQueue []*openNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x interface{}) {
	node := x.(*openNode)
	node.index = len(*q)
	*q = append(*q, node)
}

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*q = old[:n-1]
	return node
}

// openSet wraps the heap with id lookup so scores can be relaxed in place
type openSet struct {
	queue   nodeQueue
	members map[string]*openNode
	nextSeq int
}

func newOpenSet() *openSet {
	return &openSet{members: make(map[string]*openNode)}
}

func (o *openSet) contains(id string) bool {
	_, ok := o.members[id]
	return ok
}

func (o *openSet) push(s *system.PlanetarySystem, f float64) {
	node := &openNode{system: s, f: f, seq: o.nextSeq}
	o.nextSeq++
	o.members[s.ID()] = node
	heap.Push(&o.queue, node)
}

func (o *openSet) update(id string, f float64) {
	node, ok := o.members[id]
	if !ok {
		return
	}
	node.f = f
	heap.Fix(&o.queue, node.index)
}

// popBest removes and returns the lowest f-score system, or nil when empty
func (o *openSet) popBest() *system.PlanetarySystem {
	if o.queue.Len() == 0 {
		return nil
	}
	node := heap.Pop(&o.queue).(*openNode)
	delete(o.members, node.system.ID())
	return node.system
}
