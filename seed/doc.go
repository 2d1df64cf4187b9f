// Package seed implements seed propagation (SP): the final sequential pass
// that walks the attachment forest T and hands every vertex the root of
// its tree — the minimum vertex identifier in its connected component.
//
// Vertices are processed in ascending identifier order, which is what
// guarantees a vertex's predecessor is always finalized before the vertex
// itself is processed: every forest edge parent → child added during
// pruning satisfies parent < child, since parent is the minimum of child's
// out-set in H, every member of that out-set is at most child, and child
// is deactivated only when it is not itself in that out-set.
//
// Propagate is defined over the union of T's vertices and the full
// original vertex set of the input graph: a vertex that never appears in
// T (never deactivated, e.g. a lone self-loop that ages out of the
// working graph without ever losing its neighborhood) defaults to being
// its own seed.
package seed
