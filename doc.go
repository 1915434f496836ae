// SPDX-License-Identifier: MIT

// Package roadnet models a network of named towns joined by weighted, named,
// two-way roads and answers shortest-path queries over it.
//
// Layout:
//
//	core/        Town, Road and the thread-safe Graph catalog
//	dijkstra/    single-source shortest paths with per-call search state
//	manager/     name-based façade over core and dijkstra
//	loader/      "roadName,weight;town1;town2" text ingestion
//	config/      YAML configuration
//	logging/     zap logger construction
//	metrics/     prometheus counters and gauges
//	validation/  struct validation shared by config and loader
//	server/      HTTP API
//	cmd/roadnet/ command-line entry point
//
// Quick example:
//
//	    A──3──B
//	     \    │
//	     10   4
//	       \  │
//	         C
//
//	m := manager.New()
//	_ = m.AddRoad("A", "B", 3, "R1")
//	_ = m.AddRoad("B", "C", 4, "R2")
//	_ = m.AddRoad("A", "C", 10, "R3")
//	m.GetPath("A", "C") // [A via R1 to B 3 mi, B via R2 to C 4 mi]
package roadnet
