// SPDX-License-Identifier: MIT

// Package core defines the Town, Road and Graph types and the sentinel errors
// returned by graph mutators.
//
// This file declares the types, the sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
//
// Every mutator error wraps ErrInvalidArgument, so callers can classify
// programmer errors with a single errors.Is check.
var (
	// ErrInvalidArgument is the parent of all core mutator errors.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNilTown indicates a nil *Town was passed to a mutator.
	ErrNilTown = fmt.Errorf("%w: town is nil", ErrInvalidArgument)

	// ErrEmptyTownName indicates a Town with an empty name was passed to a mutator.
	ErrEmptyTownName = fmt.Errorf("%w: town name is empty", ErrInvalidArgument)

	// ErrTownNotFound indicates a road endpoint that is not in the graph.
	ErrTownNotFound = fmt.Errorf("%w: both towns must be added before adding a road", ErrInvalidArgument)

	// ErrNegativeWeight indicates a road weight below zero.
	ErrNegativeWeight = fmt.Errorf("%w: road weight must be non-negative", ErrInvalidArgument)

	// ErrLoopNotAllowed indicates a road whose endpoints are the same town.
	ErrLoopNotAllowed = fmt.Errorf("%w: road must connect two different towns", ErrInvalidArgument)

	// ErrMultiRoadNotAllowed indicates a second road between the same pair of towns.
	ErrMultiRoadNotAllowed = fmt.Errorf("%w: towns are already connected by a road", ErrInvalidArgument)
)

// Town is a named location in the road network.
//
// The name is the identity: two towns are equal iff their names are equal.
// A Town is immutable once created.
type Town struct {
	name string
}

// Road is an undirected, named, weighted connection between two towns.
//
// source and destination form an unordered pair; they are kept in creation
// order only so String and Source/Destination stay stable for display.
type Road struct {
	source      *Town
	destination *Town
	weight      int64
	name        string
}

// RoadKey is the canonical, comparable identity of a Road.
//
// Low and High are the endpoint names in ascending order, so a road and its
// mirror image produce the same key. It is used as the road catalog key.
type RoadKey struct {
	Low    string
	High   string
	Weight int64
	Name   string
}

// Graph is the in-memory road network.
//
// mu guards all three maps. adjacency lists keep insertion order so that
// GetEdge reports the first structural match deterministically.
type Graph struct {
	mu sync.RWMutex

	towns     map[string]*Town   // town name → catalogued Town
	roads     map[RoadKey]*Road  // canonical key → catalogued Road
	adjacency map[string][]*Road // town name → incident roads
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		towns:     make(map[string]*Town),
		roads:     make(map[RoadKey]*Road),
		adjacency: make(map[string][]*Road),
	}
}
