// SPDX-License-Identifier: MIT

// Package manager exposes the road network through plain town and road names.
//
// A Manager converts names into core.Town values, delegates every structural
// change to core.Graph, and formats graph results as strings. It also loads
// networks from text files through the loader package.
//
// Individual calls are safe for concurrent use because the underlying Graph
// is locked; sequences of calls that must be atomic (check-then-add, bulk
// loads) need external serialization.
package manager

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/loader"
	"github.com/katalvlaran/roadnet/metrics"
)

// Manager is the name-based façade over a road network.
type Manager struct {
	graph    *core.Graph
	logger   *zap.Logger
	metrics  *metrics.Registry
	pathOpts []dijkstra.Option
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for mutations and loads.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithMetrics records path queries and catalog sizes in r.
func WithMetrics(r *metrics.Registry) Option {
	return func(m *Manager) { m.metrics = r }
}

// WithPathOptions applies opts to every GetPath query.
func WithPathOptions(opts ...dijkstra.Option) Option {
	return func(m *Manager) { m.pathOpts = append(m.pathOpts, opts...) }
}

// New returns an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		graph:  core.NewGraph(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Graph returns the underlying graph.
func (m *Manager) Graph() *core.Graph { return m.graph }

// AddTown adds a town and reports whether it was new.
func (m *Manager) AddTown(name string) (bool, error) {
	added, err := m.graph.AddVertex(core.NewTown(name))
	if err != nil {
		return false, err
	}
	if added {
		m.logger.Debug("town added", zap.String("town", name))
		m.syncCatalog()
	}

	return added, nil
}

// GetTown returns the stored town named name.
func (m *Manager) GetTown(name string) (*core.Town, bool) {
	for _, t := range m.graph.VertexSet() {
		if t.Name() == name {
			return t, true
		}
	}

	return nil, false
}

// ContainsTown reports whether a town named name exists.
func (m *Manager) ContainsTown(name string) bool {
	return m.graph.ContainsVertex(core.NewTown(name))
}

// DeleteTown removes the town and every road touching it.
// It reports false when the town does not exist.
func (m *Manager) DeleteTown(name string) bool {
	removed, err := m.graph.RemoveVertex(core.NewTown(name))
	if err != nil || !removed {
		return false
	}
	m.logger.Debug("town deleted", zap.String("town", name))
	m.syncCatalog()

	return true
}

// AllTowns returns every town name in ascending order.
func (m *Manager) AllTowns() []string {
	towns := m.graph.VertexSet()
	out := make([]string, len(towns))
	for i, t := range towns {
		out[i] = t.Name()
	}

	return out
}

// AddRoad connects town1 and town2, adding either town first if it is missing.
func (m *Manager) AddRoad(town1, town2 string, weight int64, roadName string) error {
	one, two := core.NewTown(town1), core.NewTown(town2)
	for _, t := range []*core.Town{one, two} {
		if m.graph.ContainsVertex(t) {
			continue
		}
		if _, err := m.graph.AddVertex(t); err != nil {
			return err
		}
	}

	if _, err := m.graph.AddEdge(one, two, weight, roadName); err != nil {
		m.syncCatalog()
		return fmt.Errorf("road %q: %w", roadName, err)
	}
	m.logger.Debug("road added",
		zap.String("road", roadName),
		zap.String("from", town1),
		zap.String("to", town2),
		zap.Int64("weight", weight),
	)
	m.syncCatalog()

	return nil
}

// GetRoad returns the name of the road between town1 and town2.
func (m *Manager) GetRoad(town1, town2 string) (string, bool) {
	r := m.graph.GetEdge(core.NewTown(town1), core.NewTown(town2))
	if r == nil {
		return "", false
	}

	return r.Name(), true
}

// ContainsRoadConnection reports whether town1 and town2 share a road.
func (m *Manager) ContainsRoadConnection(town1, town2 string) bool {
	return m.graph.ContainsEdge(core.NewTown(town1), core.NewTown(town2))
}

// AllRoads returns every road name in ascending order.
func (m *Manager) AllRoads() []string {
	roads := m.graph.EdgeSet()
	out := make([]string, len(roads))
	for i, r := range roads {
		out[i] = r.Name()
	}
	sort.Strings(out)

	return out
}

// DeleteRoadConnection removes the road between town1 and town2 if it is
// named roadName, and reports whether a road was removed.
func (m *Manager) DeleteRoadConnection(town1, town2, roadName string) bool {
	one, two := core.NewTown(town1), core.NewTown(town2)
	r := m.graph.GetEdge(one, two)
	if r == nil || r.Name() != roadName {
		return false
	}
	removed, err := m.graph.RemoveEdge(one, two, r.Weight(), roadName)
	if err != nil || removed == nil {
		return false
	}
	m.logger.Debug("road deleted", zap.String("road", roadName))
	m.syncCatalog()

	return true
}

// GetPath returns the shortest route from town1 to town2 as display steps
// "<town> via <road> to <town> <weight> mi". The result is empty when the
// towns are equal, unknown or disconnected.
func (m *Manager) GetPath(town1, town2 string) []string {
	start := time.Now()
	steps, err := dijkstra.ShortestPath(m.graph, core.NewTown(town1), core.NewTown(town2), m.pathOpts...)
	if err != nil {
		m.logger.Debug("path query rejected", zap.Error(err))
		steps = []string{}
	}
	if m.metrics != nil {
		m.metrics.RecordPathQuery(len(steps), time.Since(start))
	}

	return steps
}

// PopulateTownGraph loads roads from the file at path.
func (m *Manager) PopulateTownGraph(path string) (loader.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return loader.Report{}, fmt.Errorf("manager: %w", err)
	}
	defer f.Close()

	rep, err := m.Populate(f)
	if err != nil {
		return rep, fmt.Errorf("%s: %w", path, err)
	}

	return rep, nil
}

// Populate loads roads from r. Malformed lines are skipped.
func (m *Manager) Populate(r io.Reader) (loader.Report, error) {
	return loader.Load(r, m,
		loader.WithLogger(m.logger),
		loader.WithMetrics(m.metrics),
	)
}

func (m *Manager) syncCatalog() {
	if m.metrics != nil {
		m.metrics.SetCatalogSize(m.graph.VertexCount(), m.graph.EdgeCount())
	}
}
