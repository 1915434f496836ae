// SPDX-License-Identifier: MIT

// Package loader reads road networks from text, one road per line:
//
//	roadName,weight;town1;town2
//
// Loading is best-effort: malformed lines are skipped, records the sink
// rejects are counted as failed, and the remaining lines are still applied.
// Blank lines and lines starting with '#' are ignored.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/metrics"
	"github.com/katalvlaran/roadnet/validation"
)

// Parse decodes one line. Fields are trimmed of surrounding spaces.
func Parse(line string) (Record, error) {
	parts := strings.Split(line, ";")
	if len(parts) != 3 {
		return Record{}, fmt.Errorf("%w: got %d ';' fields", ErrFieldCount, len(parts))
	}
	head := strings.Split(parts[0], ",")
	if len(head) != 2 {
		return Record{}, fmt.Errorf("%w: got %d ',' fields", ErrFieldCount, len(head))
	}

	raw := strings.TrimSpace(head[1])
	weight, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrBadWeight, raw)
	}

	rec := Record{
		Road:   strings.TrimSpace(head[0]),
		Weight: weight,
		Town1:  strings.TrimSpace(parts[1]),
		Town2:  strings.TrimSpace(parts[2]),
	}
	if err = validation.Struct(rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	return rec, nil
}

// Load parses every line of r and hands valid records to sink.
// Only a read error from r aborts; the Report covers the lines seen so far.
func Load(r io.Reader, sink Sink, opts ...Option) (Report, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var rep Report
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rep.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := Parse(line)
		if err != nil {
			rep.Skipped++
			o.record(metrics.RecordSkipped)
			o.logger.Debug("skipping malformed line",
				zap.Int("line", rep.Lines),
				zap.Error(err),
			)
			continue
		}

		if err = sink.AddRoad(rec.Town1, rec.Town2, rec.Weight, rec.Road); err != nil {
			rep.Failed++
			o.record(metrics.RecordFailed)
			o.logger.Debug("road rejected",
				zap.Int("line", rep.Lines),
				zap.String("road", rec.Road),
				zap.Error(err),
			)
			continue
		}
		rep.Loaded++
		o.record(metrics.RecordLoaded)
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("loader: read line %d: %w", rep.Lines+1, err)
	}

	o.logger.Info("road network loaded",
		zap.Int("lines", rep.Lines),
		zap.Int("loaded", rep.Loaded),
		zap.Int("skipped", rep.Skipped),
		zap.Int("failed", rep.Failed),
	)

	return rep, nil
}

func (o *options) record(result string) {
	if o.metrics != nil {
		o.metrics.RecordLoaderRecord(result)
	}
}
