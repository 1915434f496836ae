// SPDX-License-Identifier: MIT

// File: result.go
// Role: Immutable search context of one Dijkstra run and path reconstruction.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Result is the outcome of one ShortestPaths call: distances and the road
// used to reach every settled town. It is never modified after creation and
// does not read the graph again, so it stays valid if the graph changes.
type Result struct {
	source *core.Town
	dist   map[string]int64
	via    map[string]*core.Road
	towns  map[string]*core.Town
}

// Source returns the town the search started from.
func (res *Result) Source() *core.Town { return res.source }

// Distance returns the shortest distance to t and whether t was reached.
// Unreached or unknown towns report (Infinity, false).
func (res *Result) Distance(t *core.Town) (int64, bool) {
	if t == nil {
		return Infinity, false
	}
	d, ok := res.dist[t.Name()]
	if !ok || d == Infinity {
		return Infinity, false
	}

	return d, true
}

// Reachable reports whether t was reached from the source.
func (res *Result) Reachable(t *core.Town) bool {
	_, ok := res.Distance(t)

	return ok
}

// Predecessor returns the town preceding t on its shortest path.
// The source and unreached towns have no predecessor.
func (res *Result) Predecessor(t *core.Town) (*core.Town, bool) {
	if t == nil {
		return nil, false
	}
	road, ok := res.via[t.Name()]
	if !ok {
		return nil, false
	}

	return road.Other(t), true
}

// Distances returns a copy of the distances of every reached town.
func (res *Result) Distances() map[string]int64 {
	out := make(map[string]int64, len(res.dist))
	for name, d := range res.dist {
		if d != Infinity {
			out[name] = d
		}
	}

	return out
}

// Path returns the route from the source to destination as display steps
// "<predecessor> via <road> to <town> <weight> mi", in travel order.
//
// The result is empty when destination is the source itself, is unknown or
// cannot be reached.
//
// Complexity: O(path length).
func (res *Result) Path(destination *core.Town) []string {
	steps := []string{}
	if destination == nil || destination.Equal(res.source) {
		return steps
	}
	if _, ok := res.via[destination.Name()]; !ok {
		return steps
	}

	node := res.towns[destination.Name()]
	if node == nil {
		node = destination
	}
	for !node.Equal(res.source) {
		road, ok := res.via[node.Name()]
		if !ok {
			// Broken chain cannot happen for a settled town; report no path.
			return []string{}
		}
		pred := road.Other(node)
		steps = append(steps, fmt.Sprintf(stepFormat, pred, road.Name(), node, road.Weight()))
		node = pred
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}
