// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for roadnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by core tests.
//   - Avoid magic town names and weights in test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
)

// Common town names used across core tests.
const (
	TownA = "A"
	TownB = "B"
	TownC = "C"
	TownD = "D"

	TownX = "X"
	TownY = "Y"
)

// Common road names and weights used across core tests.
const (
	RoadR1 = "R1"
	RoadR2 = "R2"
	RoadR3 = "R3"

	Weight3  = 3
	Weight4  = 4
	Weight5  = 5
	Weight6  = 6
	Weight10 = 10
)

// NewTriangle returns a graph with towns A, B, C and roads
// A–B (3, R1), B–C (4, R2), A–C (10, R3).
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	MustAddTowns(t, g, TownA, TownB, TownC)
	MustAddRoad(t, g, TownA, TownB, Weight3, RoadR1)
	MustAddRoad(t, g, TownB, TownC, Weight4, RoadR2)
	MustAddRoad(t, g, TownA, TownC, Weight10, RoadR3)

	return g
}

// MustAddTowns adds every named town and fails the test on error.
func MustAddTowns(t *testing.T, g *core.Graph, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := g.AddVertex(core.NewTown(name))
		require.NoError(t, err, "AddVertex(%q)", name)
	}
}

// MustAddRoad adds a road between two existing towns and fails the test on error.
func MustAddRoad(t *testing.T, g *core.Graph, from, to string, w int64, name string) *core.Road {
	t.Helper()
	r, err := g.AddEdge(core.NewTown(from), core.NewTown(to), w, name)
	require.NoError(t, err, "AddEdge(%s,%s,%d,%s)", from, to, w, name)

	return r
}

// TownNames maps towns to their names, preserving order.
func TownNames(towns []*core.Town) []string {
	out := make([]string, len(towns))
	for i, t := range towns {
		out[i] = t.Name()
	}

	return out
}

// RoadNames maps roads to their names, preserving order.
func RoadNames(roads []*core.Road) []string {
	out := make([]string, len(roads))
	for i, r := range roads {
		out[i] = r.Name()
	}

	return out
}
