package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	fetches     *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	moodsStored *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketmood_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"tier", "kind"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketmood_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"tier", "kind"},
		),
		fetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketmood_upstream_fetches_total",
				Help: "Total number of upstream provider fetches",
			},
			[]string{"source", "result"},
		),
		fallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketmood_fallbacks_total",
				Help: "Total number of neutral fallbacks served",
			},
			[]string{"source"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketmood_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketmood_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		moodsStored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketmood_moods_stored_total",
				Help: "Total number of mood records persisted",
			},
			[]string{"backend", "symbol"},
		),
	}
}

// RecordCacheHit records a cache hit for a tier and value kind.
func (r *Recorder) RecordCacheHit(tier, kind string) {
	r.cacheHits.WithLabelValues(tier, kind).Inc()
}

// RecordCacheMiss records a cache miss for a tier and value kind.
func (r *Recorder) RecordCacheMiss(tier, kind string) {
	r.cacheMisses.WithLabelValues(tier, kind).Inc()
}

// RecordFetch records an upstream fetch attempt with its result.
func (r *Recorder) RecordFetch(source, result string) {
	r.fetches.WithLabelValues(source, result).Inc()
}

// RecordFallback records a neutral fallback served in place of live data.
func (r *Recorder) RecordFallback(source string) {
	r.fallbacks.WithLabelValues(source).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordMoodStored records a mood record persisted to a backend.
func (r *Recorder) RecordMoodStored(backend, symbol string) {
	r.moodsStored.WithLabelValues(backend, symbol).Inc()
}
