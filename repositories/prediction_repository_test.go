package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories/dbmodels"
)

// testExecutor adapts a pgxmock pool to the Executor interface.
type testExecutor struct {
	pgxmock.PgxPoolIface
}

// testTransaction adapts a pgxmock pool to the Transaction interface. RawTx
// is only used by the raw protocol COPY, which pgxmock cannot emulate.
type testTransaction struct {
	pgxmock.PgxPoolIface
}

func (tx testTransaction) RawTx() pgx.Tx { return nil }

func TestInsertPredictions(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectCopyFrom(pgx.Identifier{"survival_predictions"},
			[]string{"client_id", "period", "probability"}).
			WillReturnResult(2)

		repo := NewTenureDbRepository()
		count, err := repo.InsertPredictions(context.Background(), testTransaction{mock},
			[]models.Prediction{
				{ClientId: 101, Period: 1, Probability: 0.97561},
				{ClientId: 101, Period: 2, Probability: 0.95142},
			})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("copy error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectCopyFrom(pgx.Identifier{"survival_predictions"},
			[]string{"client_id", "period", "probability"}).
			WillReturnError(assert.AnError)

		repo := NewTenureDbRepository()
		_, err = repo.InsertPredictions(context.Background(), testTransaction{mock},
			[]models.Prediction{{ClientId: 101, Period: 1, Probability: 0.97561}})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQueryPredictions(t *testing.T) {
	runTimestamp := time.Date(2025, time.June, 1, 3, 0, 0, 0, time.UTC)

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM survival_predictions`).
			WithArgs(runTimestamp, 3, 0.0, 0.5).
			WillReturnRows(pgxmock.NewRows(dbmodels.ColumnsSelectPrediction).
				AddRow(int64(7), runTimestamp, int64(101), 3, 0.42341).
				AddRow(int64(8), runTimestamp, int64(103), 3, 0.48712))

		repo := NewTenureDbRepository()
		predictions, err := repo.QueryPredictions(context.Background(), testExecutor{mock},
			models.PredictionQuery{Period: 3, LowerBound: 0, UpperBound: 0.5}, runTimestamp)

		assert.NoError(t, err)
		assert.Equal(t, []models.Prediction{
			{RowId: 7, DateCreated: runTimestamp, ClientId: 101, Period: 3, Probability: 0.42341},
			{RowId: 8, DateCreated: runTimestamp, ClientId: 103, Period: 3, Probability: 0.48712},
		}, predictions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM survival_predictions`).
			WithArgs(runTimestamp, 3, 0.0, 0.5).
			WillReturnError(assert.AnError)

		repo := NewTenureDbRepository()
		_, err = repo.QueryPredictions(context.Background(), testExecutor{mock},
			models.PredictionQuery{Period: 3, LowerBound: 0, UpperBound: 0.5}, runTimestamp)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetLatestRunTimestamp(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		runTimestamp := time.Date(2025, time.June, 1, 3, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT max\(date_created\) FROM survival_predictions`).
			WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(runTimestamp))

		repo := NewTenureDbRepository()
		latest, err := repo.GetLatestRunTimestamp(context.Background(), testExecutor{mock})

		assert.NoError(t, err)
		assert.Equal(t, runTimestamp, latest)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no runs recorded", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT max\(date_created\) FROM survival_predictions`).
			WillReturnRows(pgxmock.NewRows([]string{"max"}).AddRow(nil))

		repo := NewTenureDbRepository()
		_, err = repo.GetLatestRunTimestamp(context.Background(), testExecutor{mock})

		assert.ErrorIs(t, err, models.ErrNoPredictionRuns)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
