package usecases

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tenurelab/tenure-backend/repositories"
	"github.com/tenurelab/tenure-backend/usecases/executor_factory"
	"github.com/tenurelab/tenure-backend/utils"
)

// csvIngestionOrder lists the raw tables in foreign key order. Each table is
// loaded from <csvDirectory>/<table>.csv.
var csvIngestionOrder = []string{
	"regions",
	"clients",
	"client_family_members",
	"loan_applications",
	"loan_contracts",
	"vehicle_records",
	"enforcement_records",
}

type IngestionUsecaseRepository interface {
	LoadCsvIntoTable(ctx context.Context, tx repositories.Transaction,
		tableName string, file io.Reader) (int64, error)
	RefreshSurvivalData(ctx context.Context, exec repositories.Executor) error
}

type IngestionUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         IngestionUsecaseRepository
	csvDirectory       string
}

// IngestCsvExtracts loads every raw table extract found in the CSV directory,
// then rebuilds survival_data from the raw tables. A table whose extract is
// missing or fails to load is logged and skipped so one bad extract does not
// block the others; the rebuild always runs on whatever data made it in.
func (usecase *IngestionUsecase) IngestCsvExtracts(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, fmt.Sprintf("Start ingesting CSV extracts from %s", usecase.csvDirectory))

	for _, tableName := range csvIngestionOrder {
		if err := usecase.ingestTable(ctx, tableName); err != nil {
			logger.WarnContext(ctx,
				fmt.Sprintf("Could not load table %s, moving to the next: %v", tableName, err))
		}
	}

	if err := usecase.repository.RefreshSurvivalData(ctx, usecase.executorFactory.NewExecutor()); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Refreshed survival_data from the raw tables")
	return nil
}

func (usecase *IngestionUsecase) ingestTable(ctx context.Context, tableName string) error {
	file, err := os.Open(filepath.Join(usecase.csvDirectory, tableName+".csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		loaded, err := usecase.repository.LoadCsvIntoTable(ctx, tx, tableName, file)
		if err != nil {
			return err
		}

		ingestionRowsLoaded.Add(float64(loaded))
		utils.LoggerFromContext(ctx).InfoContext(ctx,
			fmt.Sprintf("Loaded %d rows into %s", loaded, tableName))
		return nil
	})
}
