package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wpi_predictions_total",
		Help: "Auction value estimates served, by source",
	}, []string{"source"})

	predictionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wpi_prediction_errors_total",
		Help: "Model predictions that failed and fell back to the synthetic value",
	})

	tableLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wpi_table_load_duration_seconds",
		Help:    "Time to load the player table and compute features",
		Buckets: prometheus.DefBuckets,
	})
)
