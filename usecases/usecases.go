package usecases

import (
	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/repositories"
	"github.com/tenurelab/tenure-backend/usecases/executor_factory"
	"github.com/tenurelab/tenure-backend/usecases/worker_jobs"
)

type Usecases struct {
	Repositories  repositories.Repositories
	appName       string
	apiVersion    string
	csvDirectory  string
	featureConfig models.FeatureConfig
}

type Option func(*options)

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

func WithCsvDirectory(directory string) Option {
	return func(o *options) {
		o.csvDirectory = directory
	}
}

func WithFeatureConfig(config models.FeatureConfig) Option {
	return func(o *options) {
		o.featureConfig = config
	}
}

type options struct {
	appName       string
	apiVersion    string
	csvDirectory  string
	featureConfig models.FeatureConfig
}

func newUsecasesWithOptions(repositories repositories.Repositories, o *options) Usecases {
	if o.featureConfig.Version == "" {
		o.featureConfig = models.DefaultFeatureConfig()
	}
	return Usecases{
		Repositories:  repositories,
		appName:       o.appName,
		apiVersion:    o.apiVersion,
		csvDirectory:  o.csvDirectory,
		featureConfig: o.featureConfig,
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return newUsecasesWithOptions(repositories, o)
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.TenureDbRepository,
	}
}

func (usecases *Usecases) NewPredictionUsecase() PredictionUsecase {
	return PredictionUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.TenureDbRepository,
		featureConfig:      usecases.featureConfig,
	}
}

func (usecases *Usecases) NewClientUsecase() ClientUsecase {
	return ClientUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.TenureDbRepository,
	}
}

func (usecases *Usecases) NewOutreachUsecase() OutreachUsecase {
	return OutreachUsecase{
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.TenureDbRepository,
	}
}

func (usecases *Usecases) NewPredictionRunWorker() *worker_jobs.PredictionRunWorker {
	predictionUsecase := usecases.NewPredictionUsecase()
	return worker_jobs.NewPredictionRunWorker(&predictionUsecase)
}

func (usecases *Usecases) NewIngestionUsecase() IngestionUsecase {
	return IngestionUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.TenureDbRepository,
		csvDirectory:       usecases.csvDirectory,
	}
}
