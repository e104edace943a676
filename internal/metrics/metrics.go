package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	RankingsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRankingsServed,
			Help: HelpTextRankingsServed,
		},
		[]string{LabelProfile, LabelSemantic},
	)

	RankingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRankingDuration,
			Help:    HelpTextRankingDuration,
			Buckets: RankingLatencyBuckets,
		},
		[]string{LabelSemantic},
	)

	SemanticDegradations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSemanticDegradations,
			Help: HelpTextSemanticDegradations,
		},
		[]string{LabelStage},
	)

	ItemsIndexed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsIndexed,
			Help: HelpTextItemsIndexed,
		},
	)

	IndexSyncErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIndexSyncErrors,
			Help: HelpTextIndexSyncErrors,
		},
	)
)
