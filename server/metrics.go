package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dallen2021/AeroStack/analysis"
)

var (
	solveDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aerostack_solve_duration_seconds",
		Help:    "Wall-clock duration of one full two-solver analysis.",
		Buckets: prometheus.ExponentialBuckets(1e-4, 4, 8),
	})
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerostack_analyses_total",
			Help: "Analyses served, by outcome.",
		},
		[]string{"status"},
	)
	cacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aerostack_cache_hits_total",
		Help: "Analyses answered from the fingerprint cache.",
	})
	clErrorGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "aerostack_cl_error_baseline",
		Help: "Cross-model |CL_panel - CL_thin| of the most recent analysis.",
	})
	sweepPointsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aerostack_sweep_points_total",
		Help: "Individual angle-of-attack points streamed over /ws.",
	})
)

func init() {
	prometheus.MustRegister(
		solveDuration, analysesTotal, cacheHitsTotal,
		clErrorGauge, sweepPointsTotal,
	)
}

// observeAnalysis records one completed (or failed) analysis.
func observeAnalysis(res *analysis.Result, err error) {
	if err != nil {
		analysesTotal.WithLabelValues("error").Inc()
		return
	}
	analysesTotal.WithLabelValues("ok").Inc()
	solveDuration.Observe(res.Metrics.SolveMillis / 1e3)
	clErrorGauge.Set(res.Metrics.CLErrorBaseline)
}
