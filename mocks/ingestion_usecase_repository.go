package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/tenurelab/tenure-backend/repositories"
)

type IngestionUsecaseRepository struct {
	mock.Mock
}

func (_m *IngestionUsecaseRepository) LoadCsvIntoTable(ctx context.Context,
	tx repositories.Transaction, tableName string, file io.Reader,
) (int64, error) {
	args := _m.Called(ctx, tx, tableName, file)
	return args.Get(0).(int64), args.Error(1)
}

func (_m *IngestionUsecaseRepository) RefreshSurvivalData(ctx context.Context,
	exec repositories.Executor,
) error {
	args := _m.Called(ctx, exec)
	return args.Error(0)
}
