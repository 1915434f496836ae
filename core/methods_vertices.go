// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Town lifecycle & queries.
//
// Determinism:
//   - VertexSet() and Neighbors() return towns sorted by name ascending.
//
// Concurrency:
//   - Mutations hold mu for writing; queries hold mu for reading.
package core

import "sort"

// AddVertex inserts t if no town with the same name exists.
//
// Implementation:
//   - Stage 1: Validate t (ErrNilTown, ErrEmptyTownName).
//   - Stage 2: Under the write lock, check catalog membership by name.
//   - Stage 3: Register the town and bootstrap its adjacency list.
//
// Returns:
//   - bool: true iff t was newly inserted; re-adding an existing name is a no-op.
//   - error: nil, or a sentinel wrapping ErrInvalidArgument.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(t *Town) (bool, error) {
	if err := validateTown(t); err != nil {
		return false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.towns[t.name]; exists {
		return false, nil
	}
	g.towns[t.name] = t
	g.adjacency[t.name] = nil

	return true, nil
}

// ContainsVertex reports whether a town with t's name is in the graph.
// A nil or unnamed town is never contained.
// Complexity: O(1).
func (g *Graph) ContainsVertex(t *Town) bool {
	if t == nil || t.name == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.towns[t.name]

	return ok
}

// VertexSet returns every town, sorted by name ascending.
//
// The slice is freshly allocated on every call; mutating it does not affect
// the graph.
//
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) VertexSet() []*Town {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Town, 0, len(g.towns))
	var t *Town
	for _, t = range g.towns {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// VertexCount returns the number of towns.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.towns)
}

// RemoveVertex deletes t and every road incident to it.
//
// Implementation:
//   - Stage 1: Validate t (ErrNilTown, ErrEmptyTownName).
//   - Stage 2: Under the write lock, check presence; absent ⇒ (false, nil).
//   - Stage 3: For each incident road, drop it from the road catalog and from
//     the opposite endpoint's adjacency list.
//   - Stage 4: Drop the town and its own adjacency list.
//
// Complexity:
//   - Time O(deg(t) · max deg(n)) over neighbours n, Space O(1) extra.
func (g *Graph) RemoveVertex(t *Town) (bool, error) {
	if err := validateTown(t); err != nil {
		return false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.towns[t.name]; !exists {
		return false, nil
	}

	var r *Road
	for _, r = range g.adjacency[t.name] {
		delete(g.roads, r.Key())
		other := r.Other(t)
		g.adjacency[other.name] = withoutRoad(g.adjacency[other.name], r)
	}
	delete(g.adjacency, t.name)
	delete(g.towns, t.name)

	return true, nil
}

// Neighbors returns the towns directly connected to t, sorted by name.
// An unknown town has no neighbours.
//
// Complexity: O(d log d), where d = deg(t).
func (g *Graph) Neighbors(t *Town) []*Town {
	if t == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	roads := g.adjacency[t.name]
	out := make([]*Town, 0, len(roads))
	var r *Road
	for _, r = range roads {
		out = append(out, r.Other(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// Clear removes every town and road.
// Complexity: O(1) (maps are reallocated).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.towns = make(map[string]*Town)
	g.roads = make(map[RoadKey]*Road)
	g.adjacency = make(map[string][]*Road)
}
