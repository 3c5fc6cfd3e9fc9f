package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine metrics, registered on the default Prometheus registry and exposed
// by the server's /metrics endpoint.
var (
	// FilesParsed counts ingested source files by outcome ("ok"/"error").
	FilesParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lottoscope_files_parsed_total",
		Help: "Number of source files processed, labeled by outcome.",
	}, []string{"status"})

	// DrawsExtracted counts valid draws produced by extraction, before
	// cross-file deduplication.
	DrawsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lottoscope_draws_extracted_total",
		Help: "Number of valid draws extracted from source files.",
	})

	// AnalysesTotal counts completed batch analyses.
	AnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lottoscope_analyses_total",
		Help: "Number of completed batch analyses.",
	})

	// AnalysisDuration observes end-to-end batch analysis latency.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lottoscope_analysis_duration_seconds",
		Help:    "End-to-end duration of batch analyses.",
		Buckets: prometheus.DefBuckets,
	})
)
