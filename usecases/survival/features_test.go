package survival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenurelab/tenure-backend/models"
)

func testFeatureConfig() models.FeatureConfig {
	return models.FeatureConfig{
		Version:        "test",
		DurationColumn: "tenure",
		EventColumn:    "event",
		SubjectColumn:  "client_id",
		EncodedColumns: []models.EncodedColumn{
			{Name: "risk_class", Reference: "A"},
		},
		IndicatorColumns: []models.IndicatorColumn{
			{Name: "has_enforcement", Source: "enforcement_count"},
		},
		DropColumns:     []string{"application_id", "enforcement_count"},
		DurationEpsilon: 1e-4,
	}
}

func testDataset() models.SurvivalDataset {
	return models.SurvivalDataset{
		NumRows: 4,
		Numeric: map[string][]float64{
			"client_id":         {101, 102, 103, 104},
			"tenure":            {0, 12, 36, 24},
			"event":             {1, 0, 1, 1},
			"credit_score":      {650, 700, 590, 610},
			"application_id":    {1, 2, 3, 4},
			"enforcement_count": {0, 2, 0, 1},
		},
		Categorical: map[string][]string{
			"risk_class": {"A", "B", "A", "C"},
		},
	}
}

func TestPrepareFeatures(t *testing.T) {
	dm, err := PrepareFeatures(testDataset(), testFeatureConfig())
	require.NoError(t, err)

	assert.Equal(t, []int64{101, 102, 103, 104}, dm.SubjectIds)
	assert.Equal(t, []bool{true, false, true, true}, dm.Events)

	// columns are sorted, the reference category and dropped columns are absent
	assert.Equal(t, []string{"credit_score", "has_enforcement", "risk_class_B", "risk_class_C"}, dm.Covariates)

	rows, cols := dm.X.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 4, cols)

	// risk_class_B marks only the second row
	assert.Equal(t, []float64{0, 1, 0, 0}, matColumn(dm, "risk_class_B"))
	assert.Equal(t, []float64{0, 0, 0, 1}, matColumn(dm, "risk_class_C"))
	// has_enforcement is 1 wherever enforcement_count is positive
	assert.Equal(t, []float64{0, 1, 0, 1}, matColumn(dm, "has_enforcement"))
}

func TestPrepareFeaturesReplacesZeroDurations(t *testing.T) {
	dm, err := PrepareFeatures(testDataset(), testFeatureConfig())
	require.NoError(t, err)

	assert.Equal(t, []float64{1e-4, 12, 36, 24}, dm.Durations)
}

func TestPrepareFeaturesRejectsNegativeDurations(t *testing.T) {
	dataset := testDataset()
	dataset.Numeric["tenure"] = []float64{-1, 12, 36, 24}

	_, err := PrepareFeatures(dataset, testFeatureConfig())
	assert.ErrorIs(t, err, models.ErrNegativeDuration)
}

func TestPrepareFeaturesMissingColumn(t *testing.T) {
	dataset := testDataset()
	delete(dataset.Numeric, "tenure")

	_, err := PrepareFeatures(dataset, testFeatureConfig())
	assert.ErrorIs(t, err, models.ErrMissingColumn)
}

func TestPrepareFeaturesEmptyDataset(t *testing.T) {
	dataset := testDataset()
	dataset.NumRows = 0

	_, err := PrepareFeatures(dataset, testFeatureConfig())
	assert.ErrorIs(t, err, models.ErrEmptyDataset)
}

func TestPrepareFeaturesUnencodedCategorical(t *testing.T) {
	dataset := testDataset()
	dataset.Categorical["mobile_operator"] = []string{"a", "b", "a", "b"}

	_, err := PrepareFeatures(dataset, testFeatureConfig())
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestWithoutCovariates(t *testing.T) {
	dm, err := PrepareFeatures(testDataset(), testFeatureConfig())
	require.NoError(t, err)

	narrowed := dm.WithoutCovariates([]string{"risk_class_B", "risk_class_C"})

	assert.Equal(t, []string{"credit_score", "has_enforcement"}, narrowed.Covariates)
	assert.Equal(t, dm.SubjectIds, narrowed.SubjectIds)
	assert.Equal(t, []float64{650, 700, 590, 610}, matColumn(narrowed, "credit_score"))

	// the source matrix is untouched
	assert.Len(t, dm.Covariates, 4)
}

func matColumn(dm DesignMatrix, name string) []float64 {
	for j, covariate := range dm.Covariates {
		if covariate == name {
			column := make([]float64, dm.NumSubjects())
			for i := range column {
				column[i] = dm.X.At(i, j)
			}
			return column
		}
	}
	return nil
}
