// Package metrics counts pipeline work. Runs are batch jobs, so the
// registry is written to a node-exporter textfile instead of being scraped.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kvkkrag"

type Recorder struct {
	registry *prometheus.Registry

	Documents     prometheus.Counter
	Units         prometheus.Counter
	Chunks        *prometheus.CounterVec
	Notations     *prometheus.CounterVec
	Mentions      prometheus.Counter
	Embeddings    prometheus.Counter
	CacheLookups  *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
}

// New registers every collector on a private registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		registry: reg,
		Documents: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "documents_total",
			Help: "Documents extracted",
		}),
		Units: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "units_total",
			Help: "Slides or pages extracted",
		}),
		Chunks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "chunks_total",
			Help: "Chunks by outcome",
		}, []string{"outcome"}),
		Notations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "notations_total",
			Help: "Amendment notations detected by type",
		}, []string{"type"}),
		Mentions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "article_mentions_total",
			Help: "Article mentions extracted from chunks",
		}),
		Embeddings: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "embeddings_total",
			Help: "Texts embedded",
		}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "embedding_cache_lookups_total",
			Help: "Embedding cache lookups by result",
		}, []string{"result"}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "stage_duration_seconds",
			Help:    "Wall time per pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"stage"}),
	}
}

// ObserveStage records the time since start under stage.
func (r *Recorder) ObserveStage(stage string, start time.Time) {
	r.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// ChunkOutcome counts emitted and dropped chunks.
func (r *Recorder) ChunkOutcome(emitted, dropped int) {
	r.Chunks.WithLabelValues("emitted").Add(float64(emitted))
	r.Chunks.WithLabelValues("dropped").Add(float64(dropped))
}

// CacheLookup matches the embedding cache observer signature.
func (r *Recorder) CacheLookup(hit bool) {
	if hit {
		r.CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	r.CacheLookups.WithLabelValues("miss").Inc()
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile atomically writes the registry in text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
