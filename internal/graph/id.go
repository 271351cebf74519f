package graph

import (
	"bytes"
	"cmp"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// NodeID identifies a node across the forward and backward graphs.
// The backward node built from a forward node carries the same NodeID.
type NodeID struct {
	Graph uuid.UUID // Context that recorded the node
	Seq   uint64    // Allocation sequence within the context, starting at 1
}

// String formats the identity as <context uuid>/<sequence>.
func (id NodeID) String() string {
	return fmt.Sprintf("%s/%d", id.Graph, id.Seq)
}

// IsZero reports whether id is the zero NodeID, which no node ever carries.
func (id NodeID) IsZero() bool {
	return id.Seq == 0 && id.Graph == uuid.Nil
}

// Compare orders identities by context, then by sequence.
func (id NodeID) Compare(other NodeID) int {
	if c := bytes.Compare(id.Graph[:], other.Graph[:]); c != 0 {
		return c
	}
	return cmp.Compare(id.Seq, other.Seq)
}

// Context allocates node identities for a recording session.
// It is safe for concurrent use.
//
// Every forward node is created through a Context, which replaces any
// process-wide counter: two contexts never hand out the same NodeID.
type Context struct {
	id   uuid.UUID
	next atomic.Uint64
}

// NewContext creates a Context with a fresh random identity.
func NewContext() *Context {
	return &Context{id: uuid.New()}
}

// ID returns the context identity shared by every NodeID it allocates.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// NextID allocates a new NodeID.
func (c *Context) NextID() NodeID {
	return NodeID{Graph: c.id, Seq: c.next.Add(1)}
}

// NumNodes returns how many identities have been allocated so far.
func (c *Context) NumNodes() uint64 {
	return c.next.Load()
}
