package usecases

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/tenurelab/tenure-backend/repositories"
	"github.com/tenurelab/tenure-backend/usecases/executor_factory"
)

func TestLivenessUsecase(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		stub := executor_factory.NewExecutorFactoryStub()
		stub.Mock.ExpectQuery("SELECT 1").
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

		usecase := LivenessUsecase{
			executorFactory:    stub,
			livenessRepository: repositories.NewTenureDbRepository(),
		}

		err := usecase.Liveness(context.Background())

		assert.NoError(t, err)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		stub := executor_factory.NewExecutorFactoryStub()
		stub.Mock.ExpectQuery("SELECT 1").WillReturnError(assert.AnError)

		usecase := LivenessUsecase{
			executorFactory:    stub,
			livenessRepository: repositories.NewTenureDbRepository(),
		}

		err := usecase.Liveness(context.Background())

		assert.Error(t, err)
	})
}
