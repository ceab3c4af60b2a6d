package game

import (
	"github.com/gammazero/deque"
	"github.com/iteam13337/gosweep/util/collections"
)

type NeighborGetter func(Position) []Position

// Visitor handles one cell of a flood and reports whether the flood should
// spread to its neighbours.
type Visitor func(Position) bool

// flood walks breadth-first from seed, calling visit at most once per
// position. An explicit worklist keeps stack depth constant on any grid size.
func flood(seed Position, visit Visitor, getNeighbors NeighborGetter) {
	visited := collections.NewSet(seed)

	var visitQueue deque.Deque[Position]
	visitQueue.PushBack(seed)

	for visitQueue.Len() > 0 {
		pos := visitQueue.PopFront()
		if !visit(pos) {
			continue
		}

		for _, neighbor := range getNeighbors(pos) {
			// Don't visit, if already visited
			if visited.Contains(neighbor) {
				continue
			}
			visited.Add(neighbor)
			visitQueue.PushBack(neighbor)
		}
	}
}
