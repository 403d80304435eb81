package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories"
)

type ClientUsecaseRepository struct {
	mock.Mock
}

func (_m *ClientUsecaseRepository) GetClientsByIds(ctx context.Context,
	exec repositories.Executor, clientIds []int64,
) ([]models.Client, error) {
	args := _m.Called(ctx, exec, clientIds)
	return args.Get(0).([]models.Client), args.Error(1)
}
