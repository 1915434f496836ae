// SPDX-License-Identifier: MIT

// Package core provides the in-memory road network: towns (vertices), roads
// (undirected, named, weighted edges) and the Graph that owns them.
//
// The Graph G = (V,E) keeps three structures in lockstep:
//
//   - a town catalog keyed by town name,
//   - a road catalog keyed by RoadKey (the symmetric road identity),
//   - an adjacency index mapping every town to the roads touching it.
//
// Every catalogued road appears in exactly the adjacency lists of its two
// endpoints, and both endpoints are catalogued towns. Removing a town removes
// every road incident to it.
//
// Identity rules:
//
//	Town  – equal iff names are equal (exact, case-sensitive); ordered by name.
//	Road  – equal iff endpoints match in either order and weight and name match;
//	        ordered by weight, then by name.
//
// Policy:
//
//	– Roads are two-way. A second road between the same pair of towns is
//	  rejected with ErrMultiRoadNotAllowed; a road from a town to itself is
//	  rejected with ErrLoopNotAllowed.
//	– Weights are non-negative integers (ErrNegativeWeight otherwise).
//	– Both towns must be added before a road between them (ErrTownNotFound).
//
// Core Methods:
//
//	// Town lifecycle
//	AddVertex(t *Town) (bool, error)          // O(1)
//	ContainsVertex(t *Town) bool              // O(1)
//	RemoveVertex(t *Town) (bool, error)       // O(deg(t)·deg(n))
//	VertexSet() []*Town                       // O(V log V), sorted by name
//
//	// Road lifecycle
//	AddEdge(src, dst *Town, w int64, name string) (*Road, error) // O(deg(src))
//	GetEdge(src, dst *Town) *Road             // O(deg(src))
//	ContainsEdge(src, dst *Town) bool         // O(deg(src))
//	RemoveEdge(src, dst *Town, w int64, name string) (*Road, error)
//	EdgesOf(t *Town) []*Road                  // O(d log d), sorted by road order
//	EdgeSet() []*Road                         // O(E log E), sorted by road order
//
// Errors:
//
//	ErrInvalidArgument      – parent of every sentinel below
//	ErrNilTown              – nil *Town passed to a mutator
//	ErrEmptyTownName        – town with an empty name passed to a mutator
//	ErrTownNotFound         – road endpoint not added yet
//	ErrNegativeWeight       – road weight < 0
//	ErrLoopNotAllowed       – road from a town to itself
//	ErrMultiRoadNotAllowed  – second road between the same two towns
//
// Lookups never fail: a missing town or road yields nil, false or an empty
// slice. Accessors that return collections always return fresh slices, so
// callers cannot disturb the adjacency invariants.
//
// All methods are safe for concurrent use; see package dijkstra for queries.
package core
