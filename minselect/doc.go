// Package minselect implements the min-selection operator (MS) of the
// connected-components pipeline: a pure function from an undirected
// working graph G to a directed graph H, rewriting edges so every vertex
// points toward a local minimum.
//
// For every vertex u of G, let N(u) be its open neighborhood and N⁺(u) its
// closed neighborhood (N(u) ∪ {u}); let v_min(u) = min N⁺(u). Run emits,
// independently for each u (no cross-vertex dependency — the whole pass is
// one bounded-concurrency fan-out over errgroup.Group):
//
//	u == v_min(u) (u is a local minimum):
//	    for each neighbor z of u:
//	        if v_min(z) == u:      emit z → u
//	        else:                  emit z → v_min(z); emit u → v_min(z)
//	u != v_min(u):
//	    emit u → v_min(u)
//	    for each neighbor z of u:  emit z → v_min(u)
//
// An isolated vertex (N(u) = ∅) emits nothing and does not appear in H.
package minselect
