package models

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// ModelFamily identifies a parametric accelerated failure time form.
type ModelFamily string

const (
	WeibullFamily     ModelFamily = "weibull"
	LogNormalFamily   ModelFamily = "log_normal"
	LogLogisticFamily ModelFamily = "log_logistic"
)

// AFTFamilies lists every candidate distribution considered during model
// selection, in the order they are fitted.
var AFTFamilies = []ModelFamily{WeibullFamily, LogNormalFamily, LogLogisticFamily}

// SurvivalDataset is a column-major view of the denormalized survival table:
// one row per loan contract, numeric and categorical columns indexed by name.
// The schema is owned by the refresh procedure that populates the table; the
// dataset only assumes that the columns named by the feature configuration
// exist.
type SurvivalDataset struct {
	NumRows     int
	Numeric     map[string][]float64
	Categorical map[string][]string
}

func (ds SurvivalDataset) HasColumn(name string) bool {
	if _, ok := ds.Numeric[name]; ok {
		return true
	}
	_, ok := ds.Categorical[name]
	return ok
}

// ColumnNames returns every column of the dataset, sorted, so that feature
// preparation walks columns in a stable order.
func (ds SurvivalDataset) ColumnNames() []string {
	names := make([]string, 0, len(ds.Numeric)+len(ds.Categorical))
	for name := range ds.Numeric {
		names = append(names, name)
	}
	for name := range ds.Categorical {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (ds SurvivalDataset) Validate(config FeatureConfig) error {
	if ds.NumRows == 0 {
		return ErrEmptyDataset
	}
	for _, name := range []string{config.DurationColumn, config.EventColumn, config.SubjectColumn} {
		if !ds.HasColumn(name) {
			return errors.Wrapf(ErrMissingColumn, "column %s", name)
		}
	}
	for _, encoded := range config.EncodedColumns {
		if !ds.HasColumn(encoded.Name) {
			return errors.Wrapf(ErrMissingColumn, "encoded column %s", encoded.Name)
		}
	}
	for _, indicator := range config.IndicatorColumns {
		if _, ok := ds.Numeric[indicator.Source]; !ok {
			return errors.Wrapf(ErrMissingColumn, "indicator source column %s", indicator.Source)
		}
	}
	return nil
}
