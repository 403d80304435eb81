package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories/dbmodels"
)

func (repo *TenureDbRepository) GetClientsByIds(
	ctx context.Context,
	exec Executor,
	clientIds []int64,
) ([]models.Client, error) {
	if err := validateDbExecutor(exec); err != nil {
		return nil, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectClient...).
		From(dbmodels.TABLE_CLIENTS).
		Where(squirrel.Eq{"client_id": clientIds}).
		OrderBy("client_id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptClient)
}
