package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/tenurelab/tenure-backend/infra"
	"github.com/tenurelab/tenure-backend/jobs"
	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories"
	"github.com/tenurelab/tenure-backend/usecases"
	"github.com/tenurelab/tenure-backend/utils"
)

func RunPredictions() error {
	// This is where we read the environment variables and set up the configuration for the application.
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "tenure",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	jobConfig := struct {
		env                    string
		loggingFormat          string
		sentryDsn              string
		timePeriods            int
		eliminateInsignificant bool
	}{
		env:                    utils.GetEnv("ENV", "development"),
		loggingFormat:          utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:              utils.GetEnv("SENTRY_DSN", ""),
		timePeriods:            utils.GetEnv("PREDICTION_TIME_PERIODS", usecases.DefaultTimePeriods),
		eliminateInsignificant: utils.GetEnv("PREDICTION_ELIMINATE_INSIGNIFICANT", true),
	}

	logger := utils.NewLogger(jobConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(jobConfig.sentryDsn, jobConfig.env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repos)

	err = jobs.GeneratePredictions(ctx, uc, models.PredictionRunArgs{
		TimePeriods:            jobConfig.timePeriods,
		EliminateInsignificant: jobConfig.eliminateInsignificant,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate predictions", slog.String("error", err.Error()))
	}

	return err
}
