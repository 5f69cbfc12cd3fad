package dot

import (
	"fmt"
	"sync/atomic"
)

// Node is a labeled vertex. Nodes are created by [Builder.NewNode] and are only
// meaningful for the builder that created them.
type Node struct {
	id     int
	label  string
	linked atomic.Bool
}

// ID returns the node's unique, creation-ordered identifier.
func (n *Node) ID() int { return n.id }

// Label returns the display label.
func (n *Node) Label() string { return n.label }

// Linked reports whether the node has been an endpoint of any edge.
func (n *Node) Linked() bool { return n.linked.Load() }

// Equal reports whether n and o have the same id and label.
// A nil node is never equal to anything, including another nil node.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return false
	}
	return n.id == o.id && n.label == o.label
}

// String returns the label.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.label
}

// NewNode returns a node labeled label.
//
// With duplicate equality enabled, the first registered node carrying the same
// label is returned and no id is consumed. Otherwise a node with the next id is
// registered and returned.
func (b *Builder) NewNode(label string) *Node {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.duplicatesEqual {
		if n, ok := b.byLabel[label]; ok {
			return n
		}
	}

	n := &Node{id: b.nextID, label: label}
	b.nextID++
	b.register(n)
	b.logger.Debug("node created", "id", n.id, "label", n.label)
	return n
}

// register appends n to the registry. A (label, id) pair that is already
// registered means the id allocator is broken, which is not recoverable.
func (b *Builder) register(n *Node) {
	for _, existing := range b.nodes {
		if existing.Equal(n) {
			panic(fmt.Sprintf("dot: node with id %d already exists", n.id))
		}
	}
	b.nodes = append(b.nodes, n)
	if b.duplicatesEqual {
		if _, ok := b.byLabel[n.label]; !ok {
			b.byLabel[n.label] = n
		}
	}
}

// RemoveNode deletes n from the registry.
//
// A nil node is ignored. A node that has been linked cannot be removed, since its
// edges are already part of the output; the returned error matches
// [ErrNodeLinked] and the node stays registered.
func (b *Builder) RemoveNode(n *Node) error {
	if n == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if n.Linked() {
		return nodeLinkedError(n)
	}

	for i, existing := range b.nodes {
		if existing.Equal(n) {
			b.nodes = append(b.nodes[:i], b.nodes[i+1:]...)
			if b.byLabel[n.label] == existing {
				delete(b.byLabel, n.label)
			}
			b.logger.Debug("node removed", "id", n.id, "label", n.label)
			break
		}
	}
	return nil
}

// NodeExists reports whether a node equal to n is registered.
func (b *Builder) NodeExists(n *Node) bool {
	if n == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.nodes {
		if existing.Equal(n) {
			return true
		}
	}
	return false
}

// Nodes returns the registered nodes in registry order.
// The slice is a copy; the nodes are shared.
func (b *Builder) Nodes() []*Node {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Node, len(b.nodes))
	copy(out, b.nodes)
	return out
}

// NodeCount returns the number of registered nodes.
func (b *Builder) NodeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.nodes)
}
