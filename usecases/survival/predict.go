package survival

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/tenurelab/tenure-backend/models"
)

// GeneratePredictions evaluates S(t | x) for every subject of the design
// matrix at the discrete horizons 1..timePeriods, in the duration column's
// units. The linear predictor mu = intercept + X.beta is computed once for
// all subjects; each horizon then costs a single scalar pass. Output is
// exactly subjects x timePeriods rows, probabilities rounded to 5 decimals.
func GeneratePredictions(dm DesignMatrix, fitted FittedModel, timePeriods int) ([]models.Prediction, error) {
	if timePeriods <= 0 {
		return nil, errors.Wrap(models.BadParameterError, "time periods must be positive")
	}
	if dm.NumSubjects() == 0 {
		return nil, models.ErrEmptyDataset
	}

	// The elimination pass may have narrowed the fitted covariate set;
	// project the matrix onto it.
	projected := dm
	if !slices.Equal(dm.Covariates, fitted.Covariates) {
		var dropped []string
		for _, name := range dm.Covariates {
			if !slices.Contains(fitted.Covariates, name) {
				dropped = append(dropped, name)
			}
		}
		projected = dm.WithoutCovariates(dropped)
		if !slices.Equal(projected.Covariates, fitted.Covariates) {
			return nil, errors.Wrap(models.BadParameterError,
				"design matrix does not carry the fitted covariates")
		}
	}

	numSubjects := projected.NumSubjects()
	mu := mat.NewVecDense(numSubjects, nil)
	if len(fitted.Beta) > 0 {
		mu.MulVec(projected.X, mat.NewVecDense(len(fitted.Beta), fitted.Beta))
	}

	kernel := kernelFor(fitted.Family)
	predictions := make([]models.Prediction, 0, numSubjects*timePeriods)
	for period := 1; period <= timePeriods; period++ {
		logT := math.Log(float64(period))
		for i := 0; i < numSubjects; i++ {
			z := (logT - (fitted.Intercept + mu.AtVec(i))) / fitted.Scale
			predictions = append(predictions, models.Prediction{
				ClientId:    projected.SubjectIds[i],
				Period:      period,
				Probability: roundProbability(kernel.survival(z)),
			})
		}
	}
	return predictions, nil
}

func roundProbability(probability float64) float64 {
	return math.Round(probability*1e5) / 1e5
}
