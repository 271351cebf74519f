package graph

import (
	"sync"

	"github.com/gomlx/exceptions"
)

// ForwardNodeState holds the value computed by a forward node.
type ForwardNodeState[V Value[V]] struct {
	value V
}

// NewForwardNodeState creates a state owning value.
func NewForwardNodeState[V Value[V]](value V) *ForwardNodeState[V] {
	return &ForwardNodeState[V]{value: value}
}

// Value returns a clone of the forward value.
func (s *ForwardNodeState[V]) Value() V {
	return s.value.Clone()
}

// BackwardNodeState holds a node's forward value and its accumulated gradient.
//
// The gradient is absent until the first UpdateGrad. Later updates add to it,
// never overwrite it. UpdateGrad is safe for concurrent callers.
type BackwardNodeState[V Value[V]] struct {
	value V

	mu      sync.Mutex
	grad    V
	hasGrad bool
}

// NewBackwardNodeState creates a state with value and no gradient.
func NewBackwardNodeState[V Value[V]](value V) *BackwardNodeState[V] {
	return &BackwardNodeState[V]{value: value}
}

// Value returns a clone of the forward value.
func (s *BackwardNodeState[V]) Value() V {
	return s.value.Clone()
}

// UpdateGrad accumulates grad into the state.
func (s *BackwardNodeState[V]) UpdateGrad(grad V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasGrad {
		s.grad = grad
		s.hasGrad = true
		return
	}
	s.grad = s.grad.Add(grad)
}

// HasGrad reports whether any contribution has been accumulated.
func (s *BackwardNodeState[V]) HasGrad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasGrad
}

// Grad returns the accumulated gradient.
// Panics if no contribution has been accumulated yet.
func (s *BackwardNodeState[V]) Grad() V {
	grad, ok := s.GradOrNone()
	if !ok {
		exceptions.Panicf("gradient read before any contribution was accumulated")
	}
	return grad
}

// GradOrNone returns the accumulated gradient, or false if there is none.
func (s *BackwardNodeState[V]) GradOrNone() (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasGrad {
		var zero V
		return zero, false
	}
	return s.grad.Clone(), true
}
