// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm over a core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), of which O(E) is the worst-case heap under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - All search state lives in a runner created per call, so concurrent
//     queries over the same graph do not interfere.
//   - Decrease-key is lazy: an improved town is pushed again and stale entries
//     are skipped when popped. Unreached towns are never enqueued, so the loop
//     ends as soon as every reachable town is settled.
//   - Heap ties are broken by town name, which makes results reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// ShortestPaths computes shortest distances from source to every town of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be set (core.ErrNilTown, core.ErrEmptyTownName).
//
// An unknown source is not an error: the Result simply reaches nothing.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source *core.Town, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if source == nil {
		return nil, core.ErrNilTown
	}
	if source.Name() == "" {
		return nil, core.ErrEmptyTownName
	}

	towns := g.VertexSet()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(towns)),
		via:     make(map[string]*core.Road, len(towns)),
		visited: make(map[string]bool, len(towns)),
		towns:   make(map[string]*core.Town, len(towns)),
		pq:      make(nodePQ, 0, len(towns)),
	}
	r.init(towns, source)
	r.process()

	return &Result{
		source: source,
		dist:   r.dist,
		via:    r.via,
		towns:  r.towns,
	}, nil
}

// ShortestPath computes shortest paths from source and reconstructs the
// route to destination as display steps. See Result.Path.
func ShortestPath(g *core.Graph, source, destination *core.Town, opts ...Option) ([]string, error) {
	res, err := ShortestPaths(g, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: shortest path %s → %s: %w", source, destination, err)
	}

	return res.Path(destination), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64      // town name → best known distance
	via     map[string]*core.Road // town name → road used to reach it
	visited map[string]bool       // town name → distance is final
	towns   map[string]*core.Town // town name → catalogued Town
	pq      nodePQ
}

// init sets every distance to Infinity and pushes the source at distance 0.
func (r *runner) init(towns []*core.Town, source *core.Town) {
	var t *core.Town
	for _, t = range towns {
		r.dist[t.Name()] = Infinity
		r.towns[t.Name()] = t
	}
	heap.Init(&r.pq)

	// An unknown source stays unreached: nothing is pushed.
	if _, ok := r.towns[source.Name()]; !ok {
		return
	}
	r.dist[source.Name()] = 0
	heap.Push(&r.pq, &nodeItem{id: source.Name(), dist: 0})
}

// process is the main loop: pop the closest unsettled town, settle it,
// relax its roads. Stops when the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(r.towns[item.id])
	}
}

// relax tries to improve the distance of every neighbour of u.
// Uses strict "<" so equal-length alternatives keep the first predecessor found.
func (r *runner) relax(u *core.Town) {
	du := r.dist[u.Name()]
	var e *core.Road
	for _, e = range r.g.EdgesOf(u) {
		if e.Weight() >= r.options.InfEdgeThreshold {
			continue // closed road
		}
		v := e.Other(u)
		if v == nil || r.visited[v.Name()] {
			continue
		}
		if e.Weight() > Infinity-du {
			continue // would overflow
		}
		alt := du + e.Weight()
		if alt > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.dist[v.Name()]; ok && alt >= cur {
			continue
		}
		r.dist[v.Name()] = alt
		r.via[v.Name()] = e
		if _, ok := r.towns[v.Name()]; !ok {
			r.towns[v.Name()] = v // added after the snapshot was taken
		}
		heap.Push(&r.pq, &nodeItem{id: v.Name(), dist: alt})
	}
}

// nodeItem is a heap entry: a town name and its tentative distance.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to town name.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
