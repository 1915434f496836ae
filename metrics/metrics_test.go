// SPDX-License-Identifier: MIT
package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, label string) float64 {
	t.Helper()
	counter, err := vec.GetMetricWithLabelValues(label)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r.PathQueriesTotal == nil || r.PathQueryDuration == nil || r.PathLength == nil {
		t.Error("path metrics not initialized")
	}
	if r.LoaderRecordsTotal == nil {
		t.Error("LoaderRecordsTotal not initialized")
	}
	if r.Towns == nil || r.Roads == nil {
		t.Error("catalog gauges not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordPathQuery(t *testing.T) {
	r := NewRegistry()

	r.RecordPathQuery(2, time.Millisecond)
	r.RecordPathQuery(3, time.Millisecond)
	r.RecordPathQuery(0, time.Millisecond)

	if got := counterValue(t, r.PathQueriesTotal, ResultFound); got != 2 {
		t.Errorf("found counter = %v, want 2", got)
	}
	if got := counterValue(t, r.PathQueriesTotal, ResultNoRoute); got != 1 {
		t.Errorf("no_route counter = %v, want 1", got)
	}

	var metric dto.Metric
	if err := r.PathLength.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("path length samples = %d, want 2", metric.Histogram.GetSampleCount())
	}
}

func TestRecordLoaderRecordAndCatalog(t *testing.T) {
	r := NewRegistry()
	r.RecordLoaderRecord(RecordLoaded)
	r.RecordLoaderRecord(RecordLoaded)
	r.RecordLoaderRecord(RecordSkipped)
	r.SetCatalogSize(4, 3)

	if got := counterValue(t, r.LoaderRecordsTotal, RecordLoaded); got != 2 {
		t.Errorf("loaded counter = %v, want 2", got)
	}
	if got := counterValue(t, r.LoaderRecordsTotal, RecordSkipped); got != 1 {
		t.Errorf("skipped counter = %v, want 1", got)
	}

	var metric dto.Metric
	if err := r.Towns.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 4 {
		t.Errorf("towns gauge = %v, want 4", metric.Gauge.GetValue())
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.SetCatalogSize(1, 0)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "roadnet_towns 1") {
		t.Errorf("metrics output missing roadnet_towns:\n%s", rec.Body.String())
	}
}
