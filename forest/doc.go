// Package forest wraps a directed cgraph.Graph with the single invariant
// the connected-components pipeline relies on: every vertex has at most
// one predecessor (its parent in the attachment forest T).
//
// T only ever gains edges (pruning deactivates a vertex exactly once), so
// Forest's write path is append-only; AddParent returns ErrMultipleParents
// if it would violate the one-parent invariant. A well-formed run never
// triggers this — seeing it means some caller deactivated the same vertex
// twice, a logic bug in the driver or pruning code rather than a
// reachable runtime condition.
package forest
