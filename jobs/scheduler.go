package jobs

import (
	"context"

	"github.com/adhocore/gronx/pkg/tasker"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/usecases"
	"github.com/tenurelab/tenure-backend/utils"
)

func errToReturnCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// RunScheduler blocks, running the CSV ingestion and the prediction pipeline
// on the given cron schedules. Both jobs are non concurrent with themselves:
// a run that overflows its interval is never doubled up.
func RunScheduler(ctx context.Context, usecases usecases.Usecases, ingestionSchedule, predictionSchedule string) {
	taskr := tasker.New(tasker.Option{
		Verbose: true,
		Tz:      "UTC",
	}).WithContext(ctx)

	notConcurrent := false
	taskr.Task(ingestionSchedule, func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "ingest_csv_extracts")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := IngestCsvExtracts(ctx, usecases)
		return errToReturnCode(err), err
	}, notConcurrent)

	taskr.Task(predictionSchedule, func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "generate_predictions")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := GeneratePredictions(ctx, usecases, models.PredictionRunArgs{
			EliminateInsignificant: true,
		})
		return errToReturnCode(err), err
	}, notConcurrent)

	taskr.Run()
}
