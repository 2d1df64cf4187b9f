package forest

import (
	"errors"

	"github.com/katalvlaran/ccgraph/cgraph"
)

// ErrMultipleParents indicates an attempt to give a vertex a second
// predecessor in T — a violation of the out-forest invariant that each
// vertex is deactivated at most once and therefore has at most one parent.
// A well-formed run of the driver loop never triggers this; seeing it
// means pruning recorded the same vertex as deactivated twice, a fatal
// algorithmic inconsistency rather than a condition to recover from.
var ErrMultipleParents = errors.New("forest: vertex already has a parent")

// Forest is the directed acyclic graph T, built up one AddParent call at
// a time across every round of the driver loop.
type Forest struct {
	g *cgraph.Graph
}

// New returns an empty Forest.
func New() *Forest {
	return &Forest{g: cgraph.New(cgraph.Directed)}
}

// AddParent records that child was deactivated while attached to parent:
// the forest edge parent → child. Safe for concurrent calls for distinct
// children; concurrently adding two different parents for the *same*
// child is a race the caller (prune's deactivation fan-out, which marks
// each vertex deactivated at most once) is responsible for avoiding.
func (f *Forest) AddParent(parent, child cgraph.VertexID) error {
	if len(f.g.IncomingEdges(child)) > 0 {
		return ErrMultipleParents
	}
	f.g.AddEdge(parent, child)
	return nil
}

// Parent returns child's predecessor in T, if any.
func (f *Forest) Parent(child cgraph.VertexID) (cgraph.VertexID, bool) {
	preds := f.g.IncomingEdges(child)
	if len(preds) == 0 {
		return 0, false
	}
	return preds[0], true
}

// Nodes returns every vertex that has ever appeared in T (as a parent,
// a child, or both), sorted ascending.
func (f *Forest) Nodes() []cgraph.VertexID {
	return f.g.Nodes()
}

// Size returns the number of forest edges recorded so far.
func (f *Forest) Size() int {
	return f.g.EdgeCount()
}
