package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories"
	"github.com/tenurelab/tenure-backend/usecases/executor_factory"
)

type ClientUsecaseRepository interface {
	GetClientsByIds(ctx context.Context, exec repositories.Executor,
		clientIds []int64) ([]models.Client, error)
}

type ClientUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ClientUsecaseRepository
}

// GetClients returns the contact card of every requested client. Ids with no
// matching row are simply absent from the result; a result with no rows at all
// is a not found error.
func (usecase *ClientUsecase) GetClients(ctx context.Context, clientIds []int64) ([]models.Client, error) {
	if len(clientIds) == 0 {
		return nil, errors.Wrap(models.BadParameterError, "no client ids provided")
	}

	clients, err := usecase.repository.GetClientsByIds(ctx,
		usecase.executorFactory.NewExecutor(), clientIds)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, errors.Wrap(models.NotFoundError, "no clients found for the requested ids")
	}
	return clients, nil
}
