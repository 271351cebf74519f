package graph

import "github.com/gomlx/exceptions"

// GraphTraversal discovers the ancestors of a node.
type GraphTraversal interface {
	Traverse(fn func(node RecordedOpsParent))
}

// BreadthFirstSearch discovers ancestors level by level from a root.
//
// The root is marked visited but never passed to the callback. Each other
// reachable node is passed exactly once. Every followed edge must go from a
// lower order parent to a higher order child; anything else, a cycle
// included, panics.
type BreadthFirstSearch struct {
	root RecordedOpsParent
}

// NewBreadthFirstSearch returns a traversal starting at root.
func NewBreadthFirstSearch(root RecordedOpsParent) *BreadthFirstSearch {
	return &BreadthFirstSearch{root: root}
}

// Traverse calls fn once for every ancestor of the root.
func (b *BreadthFirstSearch) Traverse(fn func(node RecordedOpsParent)) {
	visited := map[NodeID]struct{}{b.root.ID(): {}}
	queue := []RecordedOpsParent{b.root}
	for head := 0; head < len(queue); head++ {
		node := queue[head]
		for _, parent := range node.BackwardParents() {
			if parent.Order() >= node.Order() {
				exceptions.Panicf("traversal: parent %s (order %d) of node %s (order %d) does not have a lower order, the graph is corrupt or cyclic",
					parent.ID(), parent.Order(), node.ID(), node.Order())
			}
			if _, seen := visited[parent.ID()]; seen {
				continue
			}
			visited[parent.ID()] = struct{}{}
			fn(parent)
			queue = append(queue, parent)
		}
	}
}
