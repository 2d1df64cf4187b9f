// Package ccl is the driver loop facade: it wires cgraph, minselect,
// prune, forest, and seed together into the end-to-end connected-
// components labeling engine, and is the only package an external
// collaborator (a CLI, a test harness, a future RPC layer) needs to
// import.
//
//	seeds, stats, err := ccl.Run(ctx, edges, ccl.WithWorkers(n))
//
// Run builds G₀ from the edge slice, then repeats { H ← MS(G); (G,T) ←
// PR(H,T) } until G is empty, then returns seed.Propagate(T, V(G₀)).
//
// Determinism: the returned seed map is identical across runs of the same
// edge set regardless of worker count — intermediate graphs may differ in
// iteration order between runs, but every structure the algorithm
// reasons about is set-valued, so that has no observable effect on the
// result.
package ccl
