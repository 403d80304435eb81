package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories"
	"github.com/tenurelab/tenure-backend/usecases/executor_factory"
	"github.com/tenurelab/tenure-backend/usecases/survival"
	"github.com/tenurelab/tenure-backend/utils"
)

// DefaultTimePeriods is the number of monthly horizons scored when a run does
// not ask for a specific count: S(1)..S(30).
const DefaultTimePeriods = 30

type PredictionUsecaseRepository interface {
	GetSurvivalDataset(ctx context.Context, exec repositories.Executor) (models.SurvivalDataset, error)
	InsertPredictions(ctx context.Context, tx repositories.Transaction,
		predictions []models.Prediction) (int64, error)
	QueryPredictions(ctx context.Context, exec repositories.Executor,
		filters models.PredictionQuery, runTimestamp time.Time) ([]models.Prediction, error)
	GetLatestRunTimestamp(ctx context.Context, exec repositories.Executor) (time.Time, error)
}

type PredictionUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         PredictionUsecaseRepository
	featureConfig      models.FeatureConfig
}

// RunPipeline executes the survival pipeline end to end: read the denormalized
// dataset, prepare features, select the best fitting AFT family by AIC, fit it,
// score every subject on horizons 1..timePeriods and append the rows to
// survival_predictions in a single transaction. Any error aborts the run before
// the write, so a run is either fully stored or absent.
func (usecase *PredictionUsecase) RunPipeline(
	ctx context.Context,
	args models.PredictionRunArgs,
) (models.PredictionRunSummary, error) {
	logger := utils.LoggerFromContext(ctx)
	start := time.Now()
	pipelineRuns.Inc()

	timePeriods := args.TimePeriods
	if timePeriods == 0 {
		timePeriods = DefaultTimePeriods
	}

	summary, err := usecase.runPipeline(ctx, timePeriods, args.EliminateInsignificant)
	if err != nil {
		pipelineRunsFailed.Inc()
		return models.PredictionRunSummary{}, err
	}

	pipelinePredictionsStored.Add(float64(summary.RowsWritten))
	pipelineRunDuration.Observe(time.Since(start).Seconds())
	logger.InfoContext(ctx,
		fmt.Sprintf("Prediction run complete: %d rows for %d subjects in %s",
			summary.RowsWritten, summary.Subjects, time.Since(start)),
		"family", summary.Family,
		"feature_config", usecase.featureConfig.Version)
	return summary, nil
}

func (usecase *PredictionUsecase) runPipeline(
	ctx context.Context,
	timePeriods int,
	eliminateInsignificant bool,
) (models.PredictionRunSummary, error) {
	logger := utils.LoggerFromContext(ctx)

	dataset, err := usecase.repository.GetSurvivalDataset(ctx, usecase.executorFactory.NewExecutor())
	if err != nil {
		return models.PredictionRunSummary{}, err
	}
	logger.InfoContext(ctx, fmt.Sprintf("Read %d survival records", dataset.NumRows))

	dm, err := survival.PrepareFeatures(dataset, usecase.featureConfig)
	if err != nil {
		return models.PredictionRunSummary{}, err
	}

	family, aics, err := survival.SelectFamily(ctx, dm)
	if err != nil {
		return models.PredictionRunSummary{}, err
	}
	logger.InfoContext(ctx, fmt.Sprintf("Selected %s (AIC %.2f)", family, aics[family]))

	fitted, err := survival.Fit(ctx, dm, family, survival.FitOptions{
		EliminateInsignificant: eliminateInsignificant,
		SignificanceLevel:      survival.DefaultSignificanceLevel,
	})
	if err != nil {
		return models.PredictionRunSummary{}, err
	}
	if len(fitted.Eliminated) > 0 {
		logger.InfoContext(ctx, fmt.Sprintf("Eliminated insignificant covariates: %v", fitted.Eliminated))
	}

	predictions, err := survival.GeneratePredictions(dm, fitted, timePeriods)
	if err != nil {
		return models.PredictionRunSummary{}, err
	}

	rowsWritten, err := executor_factory.TransactionReturnValue(ctx,
		usecase.transactionFactory, func(tx repositories.Transaction) (int64, error) {
			return usecase.repository.InsertPredictions(ctx, tx, predictions)
		})
	if err != nil {
		return models.PredictionRunSummary{}, err
	}

	return models.PredictionRunSummary{
		Family:      fitted.Family,
		Subjects:    dm.NumSubjects(),
		TimePeriods: timePeriods,
		RowsWritten: int(rowsWritten),
		Covariates:  fitted.Covariates,
		Eliminated:  fitted.Eliminated,
	}, nil
}

// ListPredictions serves stored predictions for one horizon, filtered to a
// probability range. When the query carries no run timestamp it resolves the
// most recent run first, so concurrent pipeline appends never mix two runs in
// one response.
func (usecase *PredictionUsecase) ListPredictions(
	ctx context.Context,
	query models.PredictionQuery,
) ([]models.Prediction, error) {
	if query.Period < 1 {
		return nil, errors.Wrap(models.BadParameterError, "period must be at least 1")
	}
	if query.LowerBound > query.UpperBound {
		return nil, errors.Wrap(models.BadParameterError,
			"lower probability bound is above the upper bound")
	}

	exec := usecase.executorFactory.NewExecutor()

	var runTimestamp time.Time
	if query.DateCreated != nil {
		runTimestamp = *query.DateCreated
	} else {
		var err error
		runTimestamp, err = usecase.repository.GetLatestRunTimestamp(ctx, exec)
		if err != nil {
			return nil, err
		}
	}

	predictions, err := usecase.repository.QueryPredictions(ctx, exec, query, runTimestamp)
	if err != nil {
		return nil, err
	}
	if len(predictions) == 0 {
		return nil, errors.Wrap(models.NotFoundError, "no predictions match the requested filters")
	}
	return predictions, nil
}
