// Package prune implements the pruning operator (PR): given the directed
// graph H produced by minselect and the forest T carried across rounds,
// it produces the next round's undirected working graph G' and the
// updated forest.
//
// For every vertex u of H, with out(u) its out-neighborhood in H and
// m(u) = min out(u) (when out(u) != ∅), independently and concurrently:
//
//  1. Edge emission: if |out(u)| > 1, for every v in out(u), v != m(u),
//     emit the undirected edge {v, m(u)} into G'.
//  2. Deactivation: if u is not in out(u) (no self-loop on u in H), record
//     the forest edge m(u) → u and mark u deactivated.
//  3. Seed preservation: if out(u) is exactly {u}, u is neither
//     deactivated nor re-emitted — it is carried into G' as a bare vertex
//     via cgraph.Graph.EnsureVertex so it survives, unrewritten, into the
//     next round. This is what lets a vertex whose neighborhood has
//     collapsed to itself keep standing as its own candidate seed instead
//     of vanishing from the working graph.
//
// After the fan-out completes, every deactivated vertex is removed from
// G' (removal erases any edge the emission phase may have attached to it
// first); the removal pass only starts once every emission and
// deactivation has finished, so it never races a still-running emission.
package prune
