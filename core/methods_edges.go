// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Road lifecycle & queries: AddEdge/GetEdge/ContainsEdge/RemoveEdge/EdgesOf/EdgeSet/EdgeCount.
// Determinism:
//   - EdgesOf() and EdgeSet() return roads sorted by Road.Compare (weight, then name).
//   - GetEdge() returns the first match in adjacency insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import (
	"fmt"
	"sort"
)

// AddEdge creates a road between two existing towns.
//
// Steps:
//  1. Validate both endpoints (ErrNilTown, ErrEmptyTownName).
//  2. Reject negative weight (ErrNegativeWeight) and loops (ErrLoopNotAllowed).
//  3. Lock; require both towns in the catalog (ErrTownNotFound).
//  4. Reject a second road between the same pair (ErrMultiRoadNotAllowed).
//  5. Build the Road over the catalogued Town values, store it in the road
//     catalog and append it to both endpoints' adjacency lists.
//
// Complexity: O(deg(source)) for the multi-road check.
func (g *Graph) AddEdge(source, destination *Town, weight int64, name string) (*Road, error) {
	if err := validateTown(source); err != nil {
		return nil, err
	}
	if err := validateTown(destination); err != nil {
		return nil, err
	}
	if weight < 0 {
		return nil, fmt.Errorf("%w: %s weight=%d", ErrNegativeWeight, name, weight)
	}
	if source.name == destination.name {
		return nil, fmt.Errorf("%w: %s", ErrLoopNotAllowed, source.name)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	src, okSrc := g.towns[source.name]
	dst, okDst := g.towns[destination.name]
	if !okSrc || !okDst {
		return nil, fmt.Errorf("%w: %s, %s", ErrTownNotFound, source.name, destination.name)
	}
	if existing := findRoad(g.adjacency[src.name], src, dst); existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrMultiRoadNotAllowed, existing)
	}

	r := &Road{source: src, destination: dst, weight: weight, name: name}
	g.roads[r.Key()] = r
	g.adjacency[src.name] = append(g.adjacency[src.name], r)
	g.adjacency[dst.name] = append(g.adjacency[dst.name], r)

	return r, nil
}

// GetEdge returns the road joining source and destination in either order,
// or nil if there is none.
// Complexity: O(deg(source)).
func (g *Graph) GetEdge(source, destination *Town) *Road {
	if source == nil || destination == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return findRoad(g.adjacency[source.name], source, destination)
}

// ContainsEdge reports whether GetEdge(source, destination) finds a road.
func (g *Graph) ContainsEdge(source, destination *Town) bool {
	return g.GetEdge(source, destination) != nil
}

// RemoveEdge deletes the road between source and destination only if its
// weight and name also match. A road that merely connects the same two towns
// is left untouched and nil is returned.
//
// Errors:
//   - ErrNilTown, ErrEmptyTownName for unset endpoints.
//
// Complexity: O(deg(source) + deg(destination)).
func (g *Graph) RemoveEdge(source, destination *Town, weight int64, name string) (*Road, error) {
	if err := validateTown(source); err != nil {
		return nil, err
	}
	if err := validateTown(destination); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	r := findRoad(g.adjacency[source.name], source, destination)
	if r == nil || r.weight != weight || r.name != name {
		return nil, nil
	}
	delete(g.roads, r.Key())
	g.adjacency[r.source.name] = withoutRoad(g.adjacency[r.source.name], r)
	g.adjacency[r.destination.name] = withoutRoad(g.adjacency[r.destination.name], r)

	return r, nil
}

// EdgesOf returns the roads incident to t, sorted by Road.Compare.
// An unknown town yields an empty slice.
// Complexity: O(d log d).
func (g *Graph) EdgesOf(t *Town) []*Road {
	if t == nil {
		return []*Road{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := append(make([]*Road, 0, len(g.adjacency[t.name])), g.adjacency[t.name]...)
	sortRoads(out)

	return out
}

// EdgeSet returns every road, sorted by Road.Compare.
// The slice is freshly allocated on every call.
// Complexity: O(E log E).
func (g *Graph) EdgeSet() []*Road {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Road, 0, len(g.roads))
	var r *Road
	for _, r = range g.roads {
		out = append(out, r)
	}
	sortRoads(out)

	return out
}

// EdgeCount returns the number of roads.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.roads)
}

// findRoad scans an adjacency list for the first road joining a and b.
func findRoad(roads []*Road, a, b *Town) *Road {
	var r *Road
	for _, r = range roads {
		if r.Connects(a, b) {
			return r
		}
	}

	return nil
}

// withoutRoad returns roads with the first occurrence of r removed, keeping order.
// The caller must hold the write lock.
func withoutRoad(roads []*Road, r *Road) []*Road {
	for i := range roads {
		if roads[i] == r {
			return append(roads[:i], roads[i+1:]...)
		}
	}

	return roads
}

// sortRoads orders roads by weight, then name; endpoint names break the
// remaining ties so output is fully reproducible.
func sortRoads(roads []*Road) {
	sort.Slice(roads, func(i, j int) bool {
		if c := roads[i].Compare(roads[j]); c != 0 {
			return c < 0
		}
		ki, kj := roads[i].Key(), roads[j].Key()
		if ki.Low != kj.Low {
			return ki.Low < kj.Low
		}

		return ki.High < kj.High
	})
}
