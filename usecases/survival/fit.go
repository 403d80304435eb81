package survival

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/utils"
)

const DefaultSignificanceLevel = 0.05

type FitOptions struct {
	// EliminateInsignificant drops every covariate whose two-sided p-value
	// exceeds SignificanceLevel after the first fit, then refits exactly
	// once. A single pass only: dropping variables can change the
	// significance of the ones that remain, and that is not re-checked.
	EliminateInsignificant bool
	SignificanceLevel      float64
}

type Coefficient struct {
	Name     string
	Estimate float64
	StdError float64
	PValue   float64
}

// FittedModel is the immutable result of fitting one family against a design
// matrix. Only its predictions are ever persisted.
type FittedModel struct {
	Family models.ModelFamily

	// Covariates gives the column order of Beta.
	Covariates []string
	Intercept  float64
	Beta       []float64
	// Scale is sigma in log T = mu + sigma W.
	Scale float64

	LogLikelihood float64
	AIC           float64

	// Coefficients lists intercept, covariates and log_scale with their
	// standard errors and two-sided p-values.
	Coefficients []Coefficient

	// Eliminated names the covariates removed by the insignificance pass.
	Eliminated []string
}

// SurvivalAt evaluates S(t | x) for one subject at each requested time.
// x must follow the Covariates order.
func (m FittedModel) SurvivalAt(x []float64, times []float64) []float64 {
	mu := m.Intercept
	for j, beta := range m.Beta {
		mu += beta * x[j]
	}
	kernel := kernelFor(m.Family)

	probabilities := make([]float64, len(times))
	for i, t := range times {
		z := (math.Log(t) - mu) / m.Scale
		probabilities[i] = kernel.survival(z)
	}
	return probabilities
}

// Fit estimates the chosen family's coefficients on the design matrix by
// maximum likelihood, optionally followed by the single insignificance
// elimination pass.
func Fit(ctx context.Context, dm DesignMatrix, family models.ModelFamily, opts FitOptions) (FittedModel, error) {
	fitted, err := fitFamily(dm, family)
	if err != nil {
		return FittedModel{}, err
	}
	if !opts.EliminateInsignificant {
		return fitted, nil
	}

	level := opts.SignificanceLevel
	if level <= 0 {
		level = DefaultSignificanceLevel
	}

	insignificant := insignificantCovariates(fitted, level)
	if len(insignificant) == 0 || len(insignificant) == len(dm.Covariates) {
		// nothing to drop, or dropping would empty the matrix
		return fitted, nil
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "dropping insignificant covariates",
		"family", family, "covariates", insignificant, "significance_level", level)

	refitted, err := fitFamily(dm.WithoutCovariates(insignificant), family)
	if err != nil {
		return FittedModel{}, err
	}
	refitted.Eliminated = insignificant
	return refitted, nil
}

func insignificantCovariates(fitted FittedModel, level float64) []string {
	var names []string
	for _, coef := range fitted.Coefficients {
		if coef.Name == "intercept" || coef.Name == "log_scale" {
			continue
		}
		// NaN p-values (singular information matrix) are kept
		if coef.PValue > level {
			names = append(names, coef.Name)
		}
	}
	return names
}

// fitFamily runs the optimizer on theta = (intercept, beta..., log scale)
// from a deterministic starting point, so identical inputs always converge
// to the same estimates.
func fitFamily(dm DesignMatrix, family models.ModelFamily) (FittedModel, error) {
	kernel := kernelFor(family)
	numCovariates := len(dm.Covariates)
	dim := numCovariates + 2

	problem := optimize.Problem{
		Func: func(theta []float64) float64 {
			return negativeLogLikelihood(dm, kernel, theta)
		},
		Grad: func(grad, theta []float64) {
			negativeGradient(grad, dm, kernel, theta)
		},
	}
	settings := &optimize.Settings{
		GradientThreshold: 1e-8,
		MajorIterations:   1000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Iterations: 50,
		},
	}

	result, err := optimize.Minimize(problem, initialParameters(dm), settings, &optimize.LBFGS{})
	if err != nil {
		if result == nil {
			return FittedModel{}, errors.Wrapf(models.ErrFitDidNotConverge, "%s: %v", family, err)
		}
		// The line search stalls once float precision is reached; accept
		// the point when the gradient is already flat. A stall with a
		// steep gradient means the likelihood is unbounded, not optimal.
		if !errors.Is(err, optimize.ErrLinesearcherFailure) && !errors.Is(err, optimize.ErrNoProgress) {
			return FittedModel{}, errors.Wrapf(models.ErrFitDidNotConverge, "%s: %v", family, err)
		}
		grad := make([]float64, dim)
		negativeGradient(grad, dm, kernel, result.X)
		if floats.Norm(grad, math.Inf(1)) > 1e-3 {
			return FittedModel{}, errors.Wrapf(models.ErrFitDidNotConverge, "%s: %v", family, err)
		}
	} else {
		switch result.Status {
		case optimize.Failure, optimize.IterationLimit, optimize.FunctionEvaluationLimit:
			return FittedModel{}, errors.Wrapf(models.ErrFitDidNotConverge, "%s: %s", family, result.Status)
		}
	}
	if math.IsNaN(result.F) || math.IsInf(result.F, 0) {
		return FittedModel{}, errors.Wrapf(models.ErrFitDidNotConverge,
			"%s: optimizer returned a non-finite likelihood", family)
	}

	theta := result.X
	logLikelihood := -result.F
	standardErrors := standardErrors(dm, kernel, theta)

	fitted := FittedModel{
		Family:        family,
		Covariates:    dm.Covariates,
		Intercept:     theta[0],
		Beta:          append([]float64(nil), theta[1:1+numCovariates]...),
		Scale:         math.Exp(theta[dim-1]),
		LogLikelihood: logLikelihood,
		AIC:           2*float64(dim) - 2*logLikelihood,
		Coefficients:  coefficientTable(dm.Covariates, theta, standardErrors),
	}
	return fitted, nil
}

func negativeLogLikelihood(dm DesignMatrix, kernel familyKernel, theta []float64) float64 {
	numCovariates := len(dm.Covariates)
	intercept := theta[0]
	beta := theta[1 : 1+numCovariates]
	logScale := theta[numCovariates+1]
	scale := math.Exp(logScale)

	var logLikelihood float64
	for i := 0; i < dm.NumSubjects(); i++ {
		mu := intercept
		for j := 0; j < numCovariates; j++ {
			mu += dm.X.At(i, j) * beta[j]
		}
		logT := math.Log(dm.Durations[i])
		z := (logT - mu) / scale

		if dm.Events[i] {
			logLikelihood += kernel.eventLogLik(z) - logScale - logT
		} else {
			logLikelihood += kernel.logSurvival(z)
		}
	}
	return -logLikelihood
}

func negativeGradient(grad []float64, dm DesignMatrix, kernel familyKernel, theta []float64) {
	numCovariates := len(dm.Covariates)
	intercept := theta[0]
	beta := theta[1 : 1+numCovariates]
	logScale := theta[numCovariates+1]
	scale := math.Exp(logScale)

	for i := range grad {
		grad[i] = 0
	}
	for i := 0; i < dm.NumSubjects(); i++ {
		mu := intercept
		for j := 0; j < numCovariates; j++ {
			mu += dm.X.At(i, j) * beta[j]
		}
		z := (math.Log(dm.Durations[i]) - mu) / scale

		var dz, delta float64
		if dm.Events[i] {
			dz = kernel.eventDz(z)
			delta = 1
		} else {
			dz = kernel.censoredDz(z)
		}

		// dz is dLL/dz; z depends on mu and the log scale
		grad[0] += dz / scale
		for j := 0; j < numCovariates; j++ {
			grad[1+j] += dz / scale * dm.X.At(i, j)
		}
		grad[numCovariates+1] += dz*z + delta
	}
}

func initialParameters(dm DesignMatrix) []float64 {
	logDurations := make([]float64, len(dm.Durations))
	for i, duration := range dm.Durations {
		logDurations[i] = math.Log(duration)
	}
	mean := stat.Mean(logDurations, nil)
	sd := stat.StdDev(logDurations, nil)
	if math.IsNaN(sd) || sd <= 0 {
		sd = 1
	}

	theta := make([]float64, len(dm.Covariates)+2)
	theta[0] = mean
	theta[len(theta)-1] = math.Log(sd)
	return theta
}

// standardErrors inverts the observed information (the Hessian of the
// negative log-likelihood at the optimum). Returns nil when the information
// matrix is not positive definite, in which case p-values are undefined.
func standardErrors(dm DesignMatrix, kernel familyKernel, theta []float64) []float64 {
	dim := len(theta)
	hessian := mat.NewSymDense(dim, nil)
	fd.Hessian(hessian, func(theta []float64) float64 {
		return negativeLogLikelihood(dm, kernel, theta)
	}, theta, nil)

	var chol mat.Cholesky
	if !chol.Factorize(hessian) {
		return nil
	}
	var inverse mat.SymDense
	if err := chol.InverseTo(&inverse); err != nil {
		return nil
	}

	ses := make([]float64, dim)
	for i := range ses {
		ses[i] = math.Sqrt(inverse.At(i, i))
	}
	return ses
}

func coefficientTable(covariates []string, theta, standardErrors []float64) []Coefficient {
	names := make([]string, 0, len(theta))
	names = append(names, "intercept")
	names = append(names, covariates...)
	names = append(names, "log_scale")

	table := make([]Coefficient, len(names))
	for i, name := range names {
		coef := Coefficient{
			Name:     name,
			Estimate: theta[i],
			StdError: math.NaN(),
			PValue:   math.NaN(),
		}
		if standardErrors != nil && standardErrors[i] > 0 {
			coef.StdError = standardErrors[i]
			coef.PValue = 2 * distuv.UnitNormal.Survival(math.Abs(coef.Estimate/coef.StdError))
		}
		table[i] = coef
	}
	return table
}
