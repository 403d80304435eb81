package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/pure_utils"
	"github.com/tenurelab/tenure-backend/repositories/dbmodels"
)

// InsertPredictions appends one pipeline run to survival_predictions within
// the caller's transaction. date_created is left to the database default so
// that every row of the run carries the transaction timestamp, which is what
// identifies the run afterwards.
func (repo *TenureDbRepository) InsertPredictions(
	ctx context.Context,
	tx Transaction,
	predictions []models.Prediction,
) (int64, error) {
	if err := validateDbExecutor(tx); err != nil {
		return 0, err
	}

	rows := pure_utils.Map(predictions, func(prediction models.Prediction) []any {
		return []any{prediction.ClientId, prediction.Period, prediction.Probability}
	})

	count, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{dbmodels.TABLE_SURVIVAL_PREDICTIONS},
		[]string{"client_id", "period", "probability"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to copy predictions")
	}
	return count, nil
}

// QueryPredictions filters one run's rows. The run timestamp is always
// explicit here; resolving "latest" from a nil query value is usecase logic.
func (repo *TenureDbRepository) QueryPredictions(
	ctx context.Context,
	exec Executor,
	filters models.PredictionQuery,
	runTimestamp time.Time,
) ([]models.Prediction, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectPrediction...).
		From(dbmodels.TABLE_SURVIVAL_PREDICTIONS).
		Where(squirrel.Eq{"date_created": runTimestamp}).
		Where(squirrel.Eq{"period": filters.Period}).
		Where(squirrel.GtOrEq{"probability": filters.LowerBound}).
		Where(squirrel.LtOrEq{"probability": filters.UpperBound}).
		OrderBy("client_id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptPrediction)
}

// GetLatestRunTimestamp returns the date_created of the most recent pipeline
// run, or ErrNoPredictionRuns when the table holds no rows at all.
func (repo *TenureDbRepository) GetLatestRunTimestamp(ctx context.Context, exec Executor) (time.Time, error) {
	if err := validateDbExecutor(exec); err != nil {
		return time.Time{}, err
	}

	sql, args, err := NewQueryBuilder().
		Select("max(date_created)").
		From(dbmodels.TABLE_SURVIVAL_PREDICTIONS).
		ToSql()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "can't build sql query")
	}

	var latest pgtype.Timestamptz
	if err := exec.QueryRow(ctx, sql, args...).Scan(&latest); err != nil {
		return time.Time{}, errors.Wrap(err, "error querying latest prediction run")
	}
	if !latest.Valid {
		return time.Time{}, models.ErrNoPredictionRuns
	}
	return latest.Time, nil
}
