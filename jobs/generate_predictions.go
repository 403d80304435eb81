package jobs

import (
	"context"
	"time"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/usecases"
)

const predictionRunTimeout = 30 * time.Minute

func GeneratePredictions(ctx context.Context, uc usecases.Usecases, args models.PredictionRunArgs) error {
	return executeWithMonitoring(
		ctx,
		uc,
		"generate-predictions",
		func(ctx context.Context, usecases usecases.Usecases) error {
			usecase := usecases.NewPredictionUsecase()
			ctx, cancel := context.WithTimeout(ctx, predictionRunTimeout)
			defer cancel()
			_, err := usecase.RunPipeline(ctx, args)
			return err
		},
	)
}
