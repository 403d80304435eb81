package usecases

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tenure_pipeline_runs_total",
		Help: "Total number of prediction pipeline runs started.",
	})
	pipelineRunsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tenure_pipeline_runs_failed_total",
		Help: "Total number of prediction pipeline runs that failed.",
	})
	pipelinePredictionsStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tenure_pipeline_predictions_stored_total",
		Help: "Total number of prediction rows stored in DB.",
	})
	pipelineRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tenure_pipeline_run_duration_seconds",
		Help:    "Duration of a full prediction pipeline run.",
		Buckets: []float64{0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0, 120.0, 300.0},
	})
	ingestionRowsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tenure_ingestion_rows_loaded_total",
		Help: "Total number of rows loaded from CSV files.",
	})
)
