// SPDX-License-Identifier: MIT

// File: road.go
// Role: Road value semantics: symmetric equality, canonical key, total order.
// Determinism:
//   - Key() does not depend on endpoint order.
//   - Compare() orders by weight asc, then name asc.
package core

import (
	"cmp"
	"fmt"
	"strings"
)

// NewRoad builds a free-standing Road value.
//
// Roads stored in a Graph are created by Graph.AddEdge; NewRoad exists so
// callers can build a value to compare against (Equal, Key) without touching
// any graph.
func NewRoad(source, destination *Town, weight int64, name string) *Road {
	return &Road{source: source, destination: destination, weight: weight, name: name}
}

// Source returns the endpoint the road was created from.
func (r *Road) Source() *Town { return r.source }

// Destination returns the endpoint the road was created to.
func (r *Road) Destination() *Town { return r.destination }

// Weight returns the road length.
func (r *Road) Weight() int64 { return r.weight }

// Name returns the road name.
func (r *Road) Name() string { return r.name }

// Other returns the endpoint opposite to t, or nil if t is not an endpoint.
func (r *Road) Other(t *Town) *Town {
	switch {
	case r.source.Equal(t):
		return r.destination
	case r.destination.Equal(t):
		return r.source
	default:
		return nil
	}
}

// Connects reports whether the road joins a and b, in either order.
func (r *Road) Connects(a, b *Town) bool {
	return (r.source.Equal(a) && r.destination.Equal(b)) ||
		(r.source.Equal(b) && r.destination.Equal(a))
}

// Equal reports whether two roads are the same road: endpoints match in
// either order and weight and name match.
func (r *Road) Equal(o *Road) bool {
	if r == nil || o == nil {
		return r == nil && o == nil
	}

	return r.Connects(o.source, o.destination) && r.weight == o.weight && r.name == o.name
}

// Key returns the canonical identity of r. Endpoint names are sorted, so
// Equal(a, b) implies a.Key() == b.Key().
func (r *Road) Key() RoadKey {
	lo, hi := r.source.Name(), r.destination.Name()
	if hi < lo {
		lo, hi = hi, lo
	}

	return RoadKey{Low: lo, High: hi, Weight: r.weight, Name: r.name}
}

// Compare orders roads by weight ascending, ties broken by name ascending.
func (r *Road) Compare(o *Road) int {
	if c := cmp.Compare(r.weight, o.weight); c != 0 {
		return c
	}

	return strings.Compare(r.name, o.name)
}

// String renders the road as "<src> to <dst> via <name> (<weight>)".
func (r *Road) String() string {
	return fmt.Sprintf("%s to %s via %s (%d)", r.source, r.destination, r.name, r.weight)
}
