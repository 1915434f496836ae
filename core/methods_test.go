// SPDX-License-Identifier: MIT
// Package core_test verifies town and road lifecycle contracts of core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	added, err := g.AddVertex(core.NewTown(TownA))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = g.AddVertex(core.NewTown(TownA))
	require.NoError(t, err)
	assert.False(t, added, "re-adding a town is a no-op")
	assert.Equal(t, 1, g.VertexCount())

	_, err = g.AddVertex(nil)
	require.ErrorIs(t, err, core.ErrNilTown)
	_, err = g.AddVertex(core.NewTown(""))
	require.ErrorIs(t, err, core.ErrEmptyTownName)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestGraph_ContainsVertex(t *testing.T) {
	g := core.NewGraph()
	MustAddTowns(t, g, TownA)

	assert.True(t, g.ContainsVertex(core.NewTown(TownA)))
	assert.False(t, g.ContainsVertex(core.NewTown(TownB)))
	assert.False(t, g.ContainsVertex(nil))
	assert.False(t, g.ContainsVertex(core.NewTown("")))
}

func TestGraph_VertexSetIsCopy(t *testing.T) {
	g := core.NewGraph()
	MustAddTowns(t, g, TownC, TownA, TownB)

	towns := g.VertexSet()
	require.Equal(t, []string{TownA, TownB, TownC}, TownNames(towns))

	towns[0] = core.NewTown(TownX)
	_ = append(towns[:0], towns[1:]...)
	assert.Equal(t, []string{TownA, TownB, TownC}, TownNames(g.VertexSet()))
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	MustAddTowns(t, g, TownA, TownB)
	a, b := core.NewTown(TownA), core.NewTown(TownB)

	cases := []struct {
		name string
		src  *core.Town
		dst  *core.Town
		w    int64
		want error
	}{
		{"nil source", nil, b, Weight3, core.ErrNilTown},
		{"nil destination", a, nil, Weight3, core.ErrNilTown},
		{"unnamed source", core.NewTown(""), b, Weight3, core.ErrEmptyTownName},
		{"missing town", a, core.NewTown(TownC), Weight3, core.ErrTownNotFound},
		{"negative weight", a, b, -1, core.ErrNegativeWeight},
		{"loop", a, core.NewTown(TownA), Weight3, core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := g.AddEdge(tc.src, tc.dst, tc.w, RoadR1)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, core.ErrInvalidArgument)
			assert.Nil(t, r)
		})
	}
	assert.Zero(t, g.EdgeCount(), "failed adds must leave no road behind")
}

func TestGraph_AddEdgeRejectsSecondRoadBetweenPair(t *testing.T) {
	g := core.NewGraph()
	MustAddTowns(t, g, TownA, TownB)
	MustAddRoad(t, g, TownA, TownB, Weight3, RoadR1)

	_, err := g.AddEdge(core.NewTown(TownB), core.NewTown(TownA), Weight5, RoadR2)
	require.ErrorIs(t, err, core.ErrMultiRoadNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, g.EdgesOf(core.NewTown(TownA)), 1)
}

func TestGraph_GetEdgeIsSymmetric(t *testing.T) {
	g := NewTriangle(t)
	a, b := core.NewTown(TownA), core.NewTown(TownB)

	ab, ba := g.GetEdge(a, b), g.GetEdge(b, a)
	require.NotNil(t, ab)
	assert.Same(t, ab, ba)
	assert.True(t, ab.Equal(core.NewRoad(b, a, Weight3, RoadR1)))
	assert.True(t, g.ContainsEdge(b, a))

	assert.Nil(t, g.GetEdge(a, core.NewTown(TownD)))
	assert.Nil(t, g.GetEdge(nil, a))
	assert.False(t, g.ContainsEdge(core.NewTown(TownD), a))
}

func TestGraph_AddEdgeStoresCataloguedTowns(t *testing.T) {
	g := core.NewGraph()
	MustAddTowns(t, g, TownA, TownB)
	r := MustAddRoad(t, g, TownA, TownB, Weight3, RoadR1)

	towns := g.VertexSet()
	assert.Same(t, towns[0], r.Source())
	assert.Same(t, towns[1], r.Destination())
}

func TestGraph_EdgesOf(t *testing.T) {
	g := NewTriangle(t)

	assert.Equal(t, []string{RoadR1, RoadR3}, RoadNames(g.EdgesOf(core.NewTown(TownA))))
	assert.Equal(t, []string{RoadR1, RoadR2}, RoadNames(g.EdgesOf(core.NewTown(TownB))))
	assert.Empty(t, g.EdgesOf(core.NewTown(TownD)), "unknown town has no roads")
	assert.NotNil(t, g.EdgesOf(nil))
}

func TestGraph_EdgeSetIsSortedCopy(t *testing.T) {
	g := NewTriangle(t)

	roads := g.EdgeSet()
	require.Equal(t, []string{RoadR1, RoadR2, RoadR3}, RoadNames(roads))
	roads[0] = nil
	assert.Equal(t, []string{RoadR1, RoadR2, RoadR3}, RoadNames(g.EdgeSet()))
}

func TestGraph_RemoveEdgeExactMatchOnly(t *testing.T) {
	g := NewTriangle(t)
	a, b := core.NewTown(TownA), core.NewTown(TownB)

	r, err := g.RemoveEdge(a, b, Weight4, RoadR1)
	require.NoError(t, err)
	assert.Nil(t, r, "weight mismatch must not remove")

	r, err = g.RemoveEdge(a, b, Weight3, RoadR2)
	require.NoError(t, err)
	assert.Nil(t, r, "name mismatch must not remove")
	assert.True(t, g.ContainsEdge(a, b))
	assert.Equal(t, 3, g.EdgeCount())

	r, err = g.RemoveEdge(b, a, Weight3, RoadR1)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, RoadR1, r.Name())
	assert.False(t, g.ContainsEdge(a, b))
	assert.Equal(t, []string{RoadR3}, RoadNames(g.EdgesOf(a)))
	assert.Equal(t, []string{RoadR2}, RoadNames(g.EdgesOf(b)))
	assert.Equal(t, 2, g.EdgeCount())

	_, err = g.RemoveEdge(nil, b, Weight3, RoadR1)
	require.ErrorIs(t, err, core.ErrNilTown)
}

func TestGraph_RemoveVertexCascades(t *testing.T) {
	g := NewTriangle(t)
	b := core.NewTown(TownB)

	removed, err := g.RemoveVertex(b)
	require.NoError(t, err)
	require.True(t, removed)

	assert.False(t, g.ContainsVertex(b))
	assert.Equal(t, []string{RoadR3}, RoadNames(g.EdgeSet()))
	for _, n := range []string{TownA, TownC} {
		for _, r := range g.EdgesOf(core.NewTown(n)) {
			assert.Nil(t, r.Other(b), "road %s still references B", r.Name())
		}
	}
	assert.Equal(t, []string{TownC}, TownNames(g.Neighbors(core.NewTown(TownA))))

	removed, err = g.RemoveVertex(b)
	require.NoError(t, err)
	assert.False(t, removed, "second removal is a no-op")

	_, err = g.RemoveVertex(nil)
	require.ErrorIs(t, err, core.ErrNilTown)
}

func TestGraph_NeighborsAndClear(t *testing.T) {
	g := NewTriangle(t)

	assert.Equal(t, []string{TownA, TownC}, TownNames(g.Neighbors(core.NewTown(TownB))))
	assert.Empty(t, g.Neighbors(core.NewTown(TownD)))
	assert.Nil(t, g.Neighbors(nil))

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.EdgesOf(core.NewTown(TownA)))
}
