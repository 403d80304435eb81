package worker_jobs

import (
	"context"
	"time"

	"github.com/riverqueue/river"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/utils"
)

const (
	PREDICTION_RUN_INTERVAL = 24 * time.Hour
	PREDICTION_RUN_TIMEOUT  = 30 * time.Minute
)

// NewPredictionRunPeriodicJob enqueues one pipeline run per day with the
// production arguments (insignificance elimination on, default horizons).
// RunOnStart gives a fresh deployment its first prediction set without
// waiting for the interval to elapse.
func NewPredictionRunPeriodicJob() *river.PeriodicJob {
	return river.NewPeriodicJob(
		river.PeriodicInterval(PREDICTION_RUN_INTERVAL),
		func() (river.JobArgs, *river.InsertOpts) {
			return models.PredictionRunArgs{EliminateInsignificant: true},
				&river.InsertOpts{
					UniqueOpts: river.UniqueOpts{
						ByPeriod: PREDICTION_RUN_INTERVAL,
					},
				}
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}

type predictionPipeline interface {
	RunPipeline(ctx context.Context, args models.PredictionRunArgs) (models.PredictionRunSummary, error)
}

type PredictionRunWorker struct {
	river.WorkerDefaults[models.PredictionRunArgs]

	predictionUsecase predictionPipeline
}

func NewPredictionRunWorker(predictionUsecase predictionPipeline) *PredictionRunWorker {
	return &PredictionRunWorker{
		predictionUsecase: predictionUsecase,
	}
}

func (w *PredictionRunWorker) Timeout(job *river.Job[models.PredictionRunArgs]) time.Duration {
	return PREDICTION_RUN_TIMEOUT
}

func (w *PredictionRunWorker) Work(ctx context.Context, job *river.Job[models.PredictionRunArgs]) error {
	summary, err := w.predictionUsecase.RunPipeline(ctx, job.Args)
	if err != nil {
		return err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "Prediction run job complete",
		"family", summary.Family,
		"subjects", summary.Subjects,
		"rows_written", summary.RowsWritten)
	return nil
}
