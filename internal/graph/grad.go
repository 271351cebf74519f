package graph

import (
	"slices"
	"sync"

	"github.com/gomlx/exceptions"
)

// Gradients maps node identities to their gradients after a backward pass.
//
// Values are stored type-erased since one graph may carry several value
// types. Use Get for a typed lookup. Gradients is safe for concurrent use.
type Gradients struct {
	mu    sync.RWMutex
	grads map[NodeID]any
}

// NewGradients returns an empty store.
func NewGradients() *Gradients {
	return &Gradients{grads: make(map[NodeID]any)}
}

// Register stores the gradient of node id.
// Panics if id already has a gradient: every node is registered once.
func (g *Gradients) Register(id NodeID, grad any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, found := g.grads[id]; found {
		exceptions.Panicf("gradients: node %s registered twice", id)
	}
	g.grads[id] = grad
}

// Lookup returns the gradient of node id, or false if it has none.
func (g *Gradients) Lookup(id NodeID) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	grad, found := g.grads[id]
	return grad, found
}

// Has reports whether node id has a gradient.
func (g *Gradients) Has(id NodeID) bool {
	_, found := g.Lookup(id)
	return found
}

// Remove deletes and returns the gradient of node id.
func (g *Gradients) Remove(id NodeID) (any, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	grad, found := g.grads[id]
	if found {
		delete(g.grads, id)
	}
	return grad, found
}

func (g *Gradients) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.grads)
}

// IDs returns the stored identities sorted by context, then sequence.
func (g *Gradients) IDs() []NodeID {
	g.mu.RLock()
	ids := make([]NodeID, 0, len(g.grads))
	for id := range g.grads {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	slices.SortFunc(ids, NodeID.Compare)
	return ids
}

// Get returns the gradient of node id as a V.
// It reports false when id has no gradient or its gradient is not a V.
func Get[V any](g *Gradients, id NodeID) (V, bool) {
	var zero V
	grad, found := g.Lookup(id)
	if !found {
		return zero, false
	}
	typed, ok := grad.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}
