package survival

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tenurelab/tenure-backend/models"
)

// twoGroupMatrix builds a design matrix with a single binary covariate and
// durations laid out on the quantile grid of the given family, so the fitted
// coefficients must land near the generating parameters without any
// randomness in the test.
func twoGroupMatrix(family models.ModelFamily, perGroup int, intercept, effect, scale float64) DesignMatrix {
	n := 2 * perGroup
	durations := make([]float64, 0, n)
	x := mat.NewDense(n, 1, nil)
	subjects := make([]int64, n)
	events := make([]bool, n)

	row := 0
	for group := 0; group < 2; group++ {
		mu := intercept + float64(group)*effect
		for i := 0; i < perGroup; i++ {
			u := (float64(i) + 0.5) / float64(perGroup)
			durations = append(durations, math.Exp(mu+scale*quantile(family, u)))
			x.Set(row, 0, float64(group))
			subjects[row] = int64(row + 1)
			events[row] = true
			row++
		}
	}

	return DesignMatrix{
		SubjectIds: subjects,
		Covariates: []string{"treated"},
		X:          x,
		Durations:  durations,
		Events:     events,
	}
}

// quantile of the standard error distribution W for each AFT family
func quantile(family models.ModelFamily, u float64) float64 {
	switch family {
	case models.WeibullFamily:
		return math.Log(-math.Log(1 - u))
	case models.LogNormalFamily:
		return distuv.UnitNormal.Quantile(u)
	case models.LogLogisticFamily:
		return math.Log(u / (1 - u))
	}
	panic("unknown family")
}

func TestFitRecoversGeneratingParameters(t *testing.T) {
	for _, family := range models.AFTFamilies {
		t.Run(string(family), func(t *testing.T) {
			dm := twoGroupMatrix(family, 150, 2.0, 0.7, 0.5)

			fitted, err := Fit(context.Background(), dm, family, FitOptions{})
			require.NoError(t, err)

			assert.Equal(t, family, fitted.Family)
			assert.InDelta(t, 2.0, fitted.Intercept, 0.2)
			assert.InDelta(t, 0.7, fitted.Beta[0], 0.2)
			assert.InDelta(t, 0.5, fitted.Scale, 0.15)
			assert.False(t, math.IsNaN(fitted.AIC))
			assert.Less(t, fitted.LogLikelihood, 0.0)
		})
	}
}

func TestFitIsDeterministic(t *testing.T) {
	dm := twoGroupMatrix(models.WeibullFamily, 100, 1.5, 0.4, 0.6)

	first, err := Fit(context.Background(), dm, models.WeibullFamily, FitOptions{})
	require.NoError(t, err)
	second, err := Fit(context.Background(), dm, models.WeibullFamily, FitOptions{})
	require.NoError(t, err)

	assert.InDelta(t, first.Intercept, second.Intercept, 1e-12)
	assert.InDelta(t, first.Beta[0], second.Beta[0], 1e-12)
	assert.InDelta(t, first.Scale, second.Scale, 1e-12)
	assert.InDelta(t, first.AIC, second.AIC, 1e-9)
}

func TestFitCoefficientTable(t *testing.T) {
	dm := twoGroupMatrix(models.LogNormalFamily, 100, 2.0, 0.8, 0.5)

	fitted, err := Fit(context.Background(), dm, models.LogNormalFamily, FitOptions{})
	require.NoError(t, err)

	require.Len(t, fitted.Coefficients, 3)
	assert.Equal(t, "intercept", fitted.Coefficients[0].Name)
	assert.Equal(t, "treated", fitted.Coefficients[1].Name)
	assert.Equal(t, "log_scale", fitted.Coefficients[2].Name)

	for _, coef := range fitted.Coefficients {
		assert.Greater(t, coef.StdError, 0.0, coef.Name)
		assert.GreaterOrEqual(t, coef.PValue, 0.0, coef.Name)
		assert.LessOrEqual(t, coef.PValue, 1.0, coef.Name)
	}

	// a strong effect on 200 observations is highly significant
	assert.Less(t, fitted.Coefficients[1].PValue, 1e-3)
}

func TestFitHandlesCensoredObservations(t *testing.T) {
	dm := twoGroupMatrix(models.WeibullFamily, 80, 2.0, 0.5, 0.5)
	// censor every fourth observation at its recorded duration
	for i := 0; i < len(dm.Events); i += 4 {
		dm.Events[i] = false
	}

	fitted, err := Fit(context.Background(), dm, models.WeibullFamily, FitOptions{})
	require.NoError(t, err)

	assert.False(t, math.IsNaN(fitted.LogLikelihood))
	assert.Greater(t, fitted.Scale, 0.0)
}

func TestFitEliminatesInsignificantCovariates(t *testing.T) {
	base := twoGroupMatrix(models.WeibullFamily, 100, 2.0, 0.8, 0.5)

	// add a second covariate that alternates independently of the duration
	n := base.NumSubjects()
	x := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i%2))
		x.Set(i, 1, base.X.At(i, 0))
	}
	dm := DesignMatrix{
		SubjectIds: base.SubjectIds,
		Covariates: []string{"noise", "treated"},
		X:          x,
		Durations:  base.Durations,
		Events:     base.Events,
	}

	fitted, err := Fit(context.Background(), dm, models.WeibullFamily, FitOptions{
		EliminateInsignificant: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"noise"}, fitted.Eliminated)
	assert.Equal(t, []string{"treated"}, fitted.Covariates)
	assert.InDelta(t, 0.8, fitted.Beta[0], 0.2)
}

func TestSurvivalAtIsAProbabilityCurve(t *testing.T) {
	dm := twoGroupMatrix(models.LogLogisticFamily, 100, 2.0, 0.5, 0.5)

	fitted, err := Fit(context.Background(), dm, models.LogLogisticFamily, FitOptions{})
	require.NoError(t, err)

	times := []float64{1, 2, 6, 12, 24, 48}
	curve := fitted.SurvivalAt([]float64{1}, times)

	require.Len(t, curve, len(times))
	for i, probability := range curve {
		assert.GreaterOrEqual(t, probability, 0.0)
		assert.LessOrEqual(t, probability, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, probability, curve[i-1])
		}
	}
}
