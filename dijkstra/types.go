// SPDX-License-Identifier: MIT

// Package dijkstra defines the errors, options and result type for
// single-source shortest paths over a core.Graph.
//
// Options:
//
//	– MaxDistance:      towns farther than this are left unsettled (unreachable).
//	– InfEdgeThreshold: roads with weight >= this threshold are treated as closed.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in the option constructor).
package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance reported for towns that were not reached.
const Infinity int64 = math.MaxInt64

// stepFormat renders one leg of a path: predecessor, road, town, weight.
const stepFormat = "%s via %s to %s %d mi"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would close every road.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a shortest-path run.
//
// MaxDistance      – towns whose distance would exceed this are not settled.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – roads with weight ≥ this are impassable.
//
//	Must be > 0. Default is Infinity (every road open).
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance caps exploration at max.
// Panics with ErrBadMaxDistance for negative values.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programmer error; fail at construction.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold closes every road whose weight is ≥ threshold.
// Panics with ErrBadInfThreshold for zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and every road open.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
