// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph
// road network with non-negative road weights.
//
// Overview:
//
//   - ShortestPaths runs Dijkstra from one town and returns a Result holding
//     the distance to every reached town and the road used to reach it.
//   - Result.Path rebuilds the route to any destination as display steps
//     "<predecessor> via <road> to <town> <weight> mi".
//   - ShortestPath does both in one call.
//
// Search context:
//
//   - Distances, predecessors and the priority queue live in a runner created
//     for each call and discarded afterwards. Nothing is stored on the Graph,
//     so two goroutines may query the same graph at the same time, and running
//     the same query twice yields identical results.
//
// Edge cases:
//
//   - Path(source) is empty: no steps are needed.
//   - Unreachable or unknown destinations yield an empty path.
//   - An unknown source is not an error; nothing is reachable from it.
//
// Options:
//
//   - WithMaxDistance(d):       towns farther than d are left unreached.
//   - WithInfEdgeThreshold(w):  roads with weight ≥ w are treated as closed.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: a nil *core.Graph was passed.
//   - core.ErrNilTown / core.ErrEmptyTownName: the source is unset.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic by option constructors.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPaths(g, core.NewTown("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, step := range res.Path(core.NewTown("C")) {
//	    fmt.Println(step)
//	}
package dijkstra
