package seed

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ccgraph/cgraph"
	"github.com/katalvlaran/ccgraph/forest"
)

// ErrCorruptForest indicates a predecessor was processed after its
// descendant despite the ascending-order scan — a violation of the
// ordering invariant (parent < child on every forest edge) that can only
// mean the forest was built incorrectly upstream. Treated as a fatal
// inconsistency rather than something to paper over.
type ErrCorruptForest struct {
	Vertex, Parent cgraph.VertexID
}

func (e *ErrCorruptForest) Error() string {
	return fmt.Sprintf("seed: predecessor %d of vertex %d has no seed yet (corrupt forest ordering)", e.Parent, e.Vertex)
}

// Propagate returns seed: V → V for every vertex in allVertices ∪ T's
// vertex set. Processing is single-threaded ascending-ID order: this
// final scan is a small fraction of the driver loop's total work, so
// there is nothing worth parallelizing here.
func Propagate(t *forest.Forest, allVertices []cgraph.VertexID) (map[cgraph.VertexID]cgraph.VertexID, error) {
	universe := mergeSorted(t.Nodes(), allVertices)

	seeds := make(map[cgraph.VertexID]cgraph.VertexID, len(universe))
	for _, u := range universe {
		p, hasParent := t.Parent(u)
		if !hasParent {
			seeds[u] = u
			continue
		}
		if s, ok := seeds[p]; ok {
			seeds[u] = s
			continue
		}
		// Ascending-order processing guarantees p was already visited
		// (p < u on every forest edge); reaching here means it wasn't.
		return nil, &ErrCorruptForest{Vertex: u, Parent: p}
	}
	return seeds, nil
}

// mergeSorted returns the deduplicated, sorted union of a and b.
func mergeSorted(a, b []cgraph.VertexID) []cgraph.VertexID {
	seen := make(map[cgraph.VertexID]struct{}, len(a)+len(b))
	out := make([]cgraph.VertexID, 0, len(a)+len(b))
	for _, v := range a {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range b {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
