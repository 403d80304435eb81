package survival

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tenurelab/tenure-backend/models"
)

func TestGeneratePredictionsShape(t *testing.T) {
	dm := twoGroupMatrix(models.WeibullFamily, 20, 2.0, 0.5, 0.5)
	fitted, err := Fit(context.Background(), dm, models.WeibullFamily, FitOptions{})
	require.NoError(t, err)

	predictions, err := GeneratePredictions(dm, fitted, 6)
	require.NoError(t, err)

	assert.Len(t, predictions, dm.NumSubjects()*6)

	for _, prediction := range predictions {
		assert.GreaterOrEqual(t, prediction.Probability, 0.0)
		assert.LessOrEqual(t, prediction.Probability, 1.0)
		// stored with 5 decimal digits
		scaled := prediction.Probability * 1e5
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9)
	}
}

func TestGeneratePredictionsAreMonotone(t *testing.T) {
	dm := twoGroupMatrix(models.LogNormalFamily, 25, 2.0, 0.4, 0.6)
	fitted, err := Fit(context.Background(), dm, models.LogNormalFamily, FitOptions{})
	require.NoError(t, err)

	predictions, err := GeneratePredictions(dm, fitted, 12)
	require.NoError(t, err)

	last := make(map[int64]float64, dm.NumSubjects())
	for _, prediction := range predictions {
		if previous, seen := last[prediction.ClientId]; seen {
			assert.LessOrEqual(t, prediction.Probability, previous,
				"client %d period %d", prediction.ClientId, prediction.Period)
		}
		last[prediction.ClientId] = prediction.Probability
	}
}

func TestGeneratePredictionsProjectsEliminatedCovariates(t *testing.T) {
	base := twoGroupMatrix(models.WeibullFamily, 30, 2.0, 0.5, 0.5)

	fitted, err := Fit(context.Background(), base, models.WeibullFamily, FitOptions{})
	require.NoError(t, err)

	// widen the matrix with a column the model was not fitted on
	widened := base
	widened.Covariates = []string{"extra", "treated"}
	n := base.NumSubjects()
	x := matWithExtraColumn(base, n)
	widened.X = x

	predictions, err := GeneratePredictions(widened, fitted, 3)
	require.NoError(t, err)
	assert.Len(t, predictions, n*3)
}

func TestGeneratePredictionsRejectsBadHorizonCount(t *testing.T) {
	dm := twoGroupMatrix(models.WeibullFamily, 10, 2.0, 0.5, 0.5)
	fitted, err := Fit(context.Background(), dm, models.WeibullFamily, FitOptions{})
	require.NoError(t, err)

	_, err = GeneratePredictions(dm, fitted, 0)
	assert.ErrorIs(t, err, models.BadParameterError)
}

// End to end over the public pipeline surface: three subjects, one with a
// zero tenure, one censored, a single categorical covariate.
func TestPipelineEndToEnd(t *testing.T) {
	dataset := models.SurvivalDataset{
		NumRows: 3,
		Numeric: map[string][]float64{
			"client_id": {11, 22, 33},
			"tenure":    {0, 12, 36},
			"event":     {1, 0, 1},
		},
		Categorical: map[string][]string{
			"risk_class": {"A", "B", "A"},
		},
	}
	config := models.FeatureConfig{
		Version:         "test",
		DurationColumn:  "tenure",
		EventColumn:     "event",
		SubjectColumn:   "client_id",
		EncodedColumns:  []models.EncodedColumn{{Name: "risk_class", Reference: "A"}},
		DurationEpsilon: 1e-4,
	}

	dm, err := PrepareFeatures(dataset, config)
	require.NoError(t, err)
	assert.Equal(t, 1e-4, dm.Durations[0])

	family, _, err := SelectFamily(context.Background(), dm)
	require.NoError(t, err)

	fitted, err := Fit(context.Background(), dm, family, FitOptions{})
	require.NoError(t, err)

	predictions, err := GeneratePredictions(dm, fitted, 2)
	require.NoError(t, err)
	require.Len(t, predictions, 6)

	byClient := make(map[int64]map[int]float64)
	for _, prediction := range predictions {
		assert.GreaterOrEqual(t, prediction.Probability, 0.0)
		assert.LessOrEqual(t, prediction.Probability, 1.0)
		if byClient[prediction.ClientId] == nil {
			byClient[prediction.ClientId] = make(map[int]float64)
		}
		byClient[prediction.ClientId][prediction.Period] = prediction.Probability
	}

	// the zero-tenure subject got the epsilon substitution and still has a
	// non-increasing curve
	assert.GreaterOrEqual(t, byClient[11][1], byClient[11][2])
}

func matWithExtraColumn(base DesignMatrix, n int) *mat.Dense {
	x := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i%3))
		x.Set(i, 1, base.X.At(i, 0))
	}
	return x
}
