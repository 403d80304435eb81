package repositories

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestRefreshSurvivalData(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectExec(`CALL refresh_survival_data`).
			WillReturnResult(pgxmock.NewResult("CALL", 0))

		repo := NewTenureDbRepository()
		err = repo.RefreshSurvivalData(context.Background(), testExecutor{mock})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectExec(`CALL refresh_survival_data`).
			WillReturnError(assert.AnError)

		repo := NewTenureDbRepository()
		err = repo.RefreshSurvivalData(context.Background(), testExecutor{mock})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
