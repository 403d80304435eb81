package repositories

import (
	"context"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories/dbmodels"
)

// GetSurvivalDataset loads the whole survival_data table into the column-major
// dataset the pipeline consumes. Rows are ordered by application id so that a
// rebuilt table always yields the same matrix, and with it the same fit.
func (repo *TenureDbRepository) GetSurvivalDataset(ctx context.Context, exec Executor) (models.SurvivalDataset, error) {
	if err := validateDbExecutor(exec); err != nil {
		return models.SurvivalDataset{}, err
	}

	query := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectSurvivalRecord...).
		From(dbmodels.TABLE_SURVIVAL_DATA).
		OrderBy("application_id")

	records, err := SqlToListOfModels(ctx, exec, query,
		func(db dbmodels.DBSurvivalRecord) (dbmodels.DBSurvivalRecord, error) {
			return db, nil
		})
	if err != nil {
		return models.SurvivalDataset{}, err
	}

	return dbmodels.AdaptSurvivalDataset(records), nil
}
