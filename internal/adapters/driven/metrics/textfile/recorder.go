// Package textfile counts extraction outcomes with Prometheus counters and
// writes them in the text exposition format, for collection by the
// node_exporter textfile collector.
package textfile

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/aroma-cli/internal/core/ports/driven"
)

// Ensure Recorder implements the interface.
var _ driven.MetricsRecorder = (*Recorder)(nil)

// Recorder keeps its own registry so repeated construction in tests never
// collides with the global one.
type Recorder struct {
	path        string
	registry    *prometheus.Registry
	extractions *prometheus.CounterVec
	fetches     *prometheus.CounterVec
}

// New creates a recorder that flushes to path. An empty path disables Flush.
func New(path string) *Recorder {
	r := &Recorder{
		path:     path,
		registry: prometheus.NewRegistry(),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aroma_extractions_total",
			Help: "Total flavour profile extractions by outcome",
		}, []string{"outcome"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aroma_fetches_total",
			Help: "Total page downloads by HTTP status (0 for transport errors)",
		}, []string{"status"}),
	}
	r.registry.MustRegister(r.extractions, r.fetches)
	return r
}

// RecordExtraction counts one extraction.
func (r *Recorder) RecordExtraction(outcome string) {
	r.extractions.WithLabelValues(outcome).Inc()
}

// RecordFetch counts one download.
func (r *Recorder) RecordFetch(status int) {
	r.fetches.WithLabelValues(strconv.Itoa(status)).Inc()
}

// Flush writes all counters to the textfile.
func (r *Recorder) Flush() error {
	if r.path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(r.path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", r.path, err)
	}
	return nil
}

// Path returns the textfile path, or "" when flushing is disabled.
func (r *Recorder) Path() string {
	return r.path
}
