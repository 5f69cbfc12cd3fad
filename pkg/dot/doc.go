// Package dot builds Graphviz DOT descriptions incrementally.
//
// A [Builder] owns a registry of labeled nodes, an append-only log of edges and
// the DOT text accumulated so far. Edge statements are written at the moment
// [Builder.Link] is called, so the output preserves creation order and every
// edge keeps the style that was active when it was created.
//
// # Output Format
//
//	digraph G {
//	0 -> 1
//	0 -> 2 [dir=none, color="red", penwidth=2]
//	0 [label = "a"]
//	1 [label = "b"]
//	2 [label = "c"]
//	}
//
// Edge statements come first, in creation order. [Builder.Finalize] then writes
// one label statement per linked node, in registry order, and the closing brace.
// Nodes that never participated in an edge are not rendered.
//
// # Node Identity
//
// Node ids are assigned sequentially from 0 and never reused. Two nodes are
// equal only when id and label both match. With [Options.DuplicatesEqual] set,
// [Builder.NewNode] returns the existing node for a label it has already seen
// instead of allocating a new id.
//
// # Lifecycle
//
// A builder is finalized once. After a successful [Builder.Finalize] or
// [Builder.WriteTo], further finalize calls return [ErrFinalized] and
// [Builder.Link] becomes a no-op.
//
// # Concurrency
//
// All methods are safe for concurrent use; a single mutex guards the registry,
// the edge log, the buffer and the id counter.
package dot
