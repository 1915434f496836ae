// SPDX-License-Identifier: MIT

// File: types.go
// Role: Record, Report, Sink and the loader sentinel errors and options.
package loader

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/metrics"
)

// Sentinel errors returned by Parse.
var (
	// ErrFieldCount indicates a line without exactly one ',' before the first ';'
	// and exactly three ';'-separated parts.
	ErrFieldCount = errors.New("loader: expected roadName,weight;town1;town2")

	// ErrBadWeight indicates a weight that is not a base-10 integer.
	ErrBadWeight = errors.New("loader: weight is not an integer")

	// ErrInvalidRecord indicates a well-formed line with invalid values.
	ErrInvalidRecord = errors.New("loader: invalid record")
)

// Record is one parsed road line.
type Record struct {
	Road   string `validate:"required"`
	Weight int64  `validate:"gte=0"`
	Town1  string `validate:"required"`
	Town2  string `validate:"required,nefield=Town1"`
}

// Sink receives every valid record. manager.Manager implements it.
type Sink interface {
	AddRoad(town1, town2 string, weight int64, name string) error
}

// Report summarizes one Load call.
type Report struct {
	Lines   int // lines read, including blanks and comments
	Loaded  int // records accepted by the sink
	Skipped int // malformed lines
	Failed  int // records rejected by the sink
}

// Option configures Load.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	metrics *metrics.Registry
}

// WithLogger sets the logger for skipped lines and the final summary.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics counts every record outcome in r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) { o.metrics = r }
}
