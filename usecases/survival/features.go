package survival

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/tenurelab/tenure-backend/models"
)

// DesignMatrix is the numeric covariate matrix a model is fitted against,
// together with the duration, event and subject columns extracted from the
// dataset. Values are immutable once built; narrowing the covariate set
// (insignificant-variable elimination) produces a new matrix.
type DesignMatrix struct {
	SubjectIds []int64
	Covariates []string
	X          *mat.Dense
	Durations  []float64
	Events     []bool
}

func (dm DesignMatrix) NumSubjects() int {
	return len(dm.SubjectIds)
}

// WithoutCovariates returns a copy of the matrix with the named covariate
// columns removed.
func (dm DesignMatrix) WithoutCovariates(names []string) DesignMatrix {
	keep := make([]int, 0, len(dm.Covariates))
	keptNames := make([]string, 0, len(dm.Covariates))
	for idx, name := range dm.Covariates {
		if !slices.Contains(names, name) {
			keep = append(keep, idx)
			keptNames = append(keptNames, name)
		}
	}

	rows := dm.NumSubjects()
	x := mat.NewDense(rows, max(len(keep), 1), nil)
	for i := 0; i < rows; i++ {
		for j, col := range keep {
			x.Set(i, j, dm.X.At(i, col))
		}
	}
	return DesignMatrix{
		SubjectIds: dm.SubjectIds,
		Covariates: keptNames,
		X:          x,
		Durations:  dm.Durations,
		Events:     dm.Events,
	}
}

// PrepareFeatures turns the raw survival dataset into a design matrix
// following the feature configuration: encoded categoricals expand into one
// indicator per non-reference category, indicator covariates are derived from
// their source columns, dropped columns never enter the matrix, and zero
// durations are replaced with the configured epsilon. Covariate columns are
// ordered lexicographically so two runs over the same data build the same
// matrix.
func PrepareFeatures(dataset models.SurvivalDataset, config models.FeatureConfig) (DesignMatrix, error) {
	if err := dataset.Validate(config); err != nil {
		return DesignMatrix{}, err
	}

	durations, err := numericColumn(dataset, config.DurationColumn)
	if err != nil {
		return DesignMatrix{}, err
	}
	durations = slices.Clone(durations)
	for i, duration := range durations {
		if duration < 0 {
			return DesignMatrix{}, errors.Wrapf(models.ErrNegativeDuration,
				"row %d has duration %f", i, duration)
		}
		if duration == 0 {
			durations[i] = config.DurationEpsilon
		}
	}

	eventValues, err := numericColumn(dataset, config.EventColumn)
	if err != nil {
		return DesignMatrix{}, err
	}
	events := make([]bool, len(eventValues))
	for i, value := range eventValues {
		events[i] = value != 0
	}

	subjectValues, err := numericColumn(dataset, config.SubjectColumn)
	if err != nil {
		return DesignMatrix{}, err
	}
	subjects := make([]int64, len(subjectValues))
	for i, value := range subjectValues {
		subjects[i] = int64(value)
	}

	columns, err := buildCovariateColumns(dataset, config)
	if err != nil {
		return DesignMatrix{}, err
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	slices.Sort(names)

	if len(names) == 0 {
		return DesignMatrix{}, errors.Wrap(models.BadParameterError,
			"no covariate columns left after feature preparation")
	}

	x := mat.NewDense(dataset.NumRows, len(names), nil)
	for j, name := range names {
		values := columns[name]
		for i := 0; i < dataset.NumRows; i++ {
			x.Set(i, j, values[i])
		}
	}

	return DesignMatrix{
		SubjectIds: subjects,
		Covariates: names,
		X:          x,
		Durations:  durations,
		Events:     events,
	}, nil
}

func buildCovariateColumns(dataset models.SurvivalDataset, config models.FeatureConfig) (map[string][]float64, error) {
	reserved := map[string]bool{
		config.DurationColumn: true,
		config.EventColumn:    true,
		config.SubjectColumn:  true,
	}
	for _, name := range config.DropColumns {
		reserved[name] = true
	}

	encodedBy := make(map[string]models.EncodedColumn, len(config.EncodedColumns))
	for _, encoded := range config.EncodedColumns {
		encodedBy[encoded.Name] = encoded
	}

	columns := make(map[string][]float64)

	for _, name := range dataset.ColumnNames() {
		if reserved[name] {
			continue
		}
		if values, ok := dataset.Numeric[name]; ok {
			columns[name] = values
			continue
		}

		labels := dataset.Categorical[name]
		encoded, ok := encodedBy[name]
		if !ok {
			return nil, errors.Wrapf(models.BadParameterError,
				"categorical column %s is neither encoded nor dropped", name)
		}
		for category, indicator := range encodeCategories(labels, encoded.Reference) {
			columns[fmt.Sprintf("%s_%s", name, category)] = indicator
		}
	}

	for _, derived := range config.IndicatorColumns {
		source, err := numericColumn(dataset, derived.Source)
		if err != nil {
			return nil, err
		}
		indicator := make([]float64, len(source))
		for i, value := range source {
			if value > 0 {
				indicator[i] = 1
			}
		}
		columns[derived.Name] = indicator
	}

	return columns, nil
}

// encodeCategories one-hot encodes the labels, omitting the reference level.
func encodeCategories(labels []string, reference string) map[string][]float64 {
	categories := make(map[string][]float64)
	for i, label := range labels {
		if label == reference {
			continue
		}
		indicator, ok := categories[label]
		if !ok {
			indicator = make([]float64, len(labels))
			categories[label] = indicator
		}
		indicator[i] = 1
	}
	return categories
}

func numericColumn(dataset models.SurvivalDataset, name string) ([]float64, error) {
	values, ok := dataset.Numeric[name]
	if !ok {
		return nil, errors.Wrapf(models.ErrMissingColumn, "numeric column %s", name)
	}
	return values, nil
}
