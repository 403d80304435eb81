package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories"
)

type PredictionUsecaseRepository struct {
	mock.Mock
}

func (_m *PredictionUsecaseRepository) GetSurvivalDataset(ctx context.Context,
	exec repositories.Executor,
) (models.SurvivalDataset, error) {
	args := _m.Called(ctx, exec)
	return args.Get(0).(models.SurvivalDataset), args.Error(1)
}

func (_m *PredictionUsecaseRepository) InsertPredictions(ctx context.Context,
	tx repositories.Transaction, predictions []models.Prediction,
) (int64, error) {
	args := _m.Called(ctx, tx, predictions)
	return args.Get(0).(int64), args.Error(1)
}

func (_m *PredictionUsecaseRepository) QueryPredictions(ctx context.Context,
	exec repositories.Executor, filters models.PredictionQuery, runTimestamp time.Time,
) ([]models.Prediction, error) {
	args := _m.Called(ctx, exec, filters, runTimestamp)
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func (_m *PredictionUsecaseRepository) GetLatestRunTimestamp(ctx context.Context,
	exec repositories.Executor,
) (time.Time, error) {
	args := _m.Called(ctx, exec)
	return args.Get(0).(time.Time), args.Error(1)
}
