package jobs

import (
	"context"
	"time"

	"github.com/tenurelab/tenure-backend/usecases"
)

const csvIngestionTimeout = 1 * time.Hour

func IngestCsvExtracts(ctx context.Context, uc usecases.Usecases) error {
	return executeWithMonitoring(
		ctx,
		uc,
		"csv-ingestion",
		func(ctx context.Context, usecases usecases.Usecases) error {
			usecase := usecases.NewIngestionUsecase()
			ctx, cancel := context.WithTimeout(ctx, csvIngestionTimeout)
			defer cancel()
			return usecase.IngestCsvExtracts(ctx)
		},
	)
}
