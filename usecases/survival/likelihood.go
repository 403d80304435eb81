package survival

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tenurelab/tenure-backend/models"
)

// Every supported family is an accelerated failure time form
//
//	log T = mu + sigma * W,  mu = intercept + x.beta
//
// where W follows the family's standard error distribution. With
// z = (log t - mu) / sigma, the log-likelihood of one observation is
//
//	event:    eventLogLik(z) - log sigma - log t
//	censored: logSurvival(z)
//
// and the chain rule needs only the derivative of each part with respect
// to z. The distributions are: extreme value (Weibull time scale), normal
// (log-normal) and logistic (log-logistic).
type familyKernel struct {
	// log density of W at z, without the -log sigma -log t change of
	// variable terms shared by all families
	eventLogLik func(z float64) float64
	eventDz     func(z float64) float64

	logSurvival func(z float64) float64
	censoredDz  func(z float64) float64

	// survival of W at z, S(t|x) once z is formed
	survival func(z float64) float64
}

func kernelFor(family models.ModelFamily) familyKernel {
	switch family {
	case models.WeibullFamily:
		return extremeValueKernel
	case models.LogNormalFamily:
		return normalKernel
	case models.LogLogisticFamily:
		return logisticKernel
	default:
		panic("unknown model family: " + string(family))
	}
}

var extremeValueKernel = familyKernel{
	eventLogLik: func(z float64) float64 { return z - math.Exp(z) },
	eventDz:     func(z float64) float64 { return 1 - math.Exp(z) },
	logSurvival: func(z float64) float64 { return -math.Exp(z) },
	censoredDz:  func(z float64) float64 { return -math.Exp(z) },
	survival:    func(z float64) float64 { return math.Exp(-math.Exp(z)) },
}

var normalKernel = familyKernel{
	eventLogLik: func(z float64) float64 { return -z*z/2 - 0.5*math.Log(2*math.Pi) },
	eventDz:     func(z float64) float64 { return -z },
	logSurvival: normalLogSurvival,
	censoredDz:  func(z float64) float64 { return -normalHazard(z) },
	survival:    func(z float64) float64 { return distuv.UnitNormal.Survival(z) },
}

var logisticKernel = familyKernel{
	eventLogLik: func(z float64) float64 { return z - 2*log1pExp(z) },
	eventDz:     func(z float64) float64 { return 1 - 2*sigmoid(z) },
	logSurvival: func(z float64) float64 { return -log1pExp(z) },
	censoredDz:  func(z float64) float64 { return -sigmoid(z) },
	survival:    func(z float64) float64 { return sigmoid(-z) },
}

// log(1 + e^z) without overflow for large z
func log1pExp(z float64) float64 {
	if z > 0 {
		return z + math.Log1p(math.Exp(-z))
	}
	return math.Log1p(math.Exp(z))
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	ez := math.Exp(z)
	return ez / (1 + ez)
}

// normalLogSurvival computes log(1 - Phi(z)), switching to the tail
// expansion where the survival value itself underflows.
func normalLogSurvival(z float64) float64 {
	if z < 8 {
		return math.Log(distuv.UnitNormal.Survival(z))
	}
	// Mills ratio: 1-Phi(z) ~ phi(z)/z * (1 - 1/z^2 + 3/z^4)
	z2 := z * z
	return -z2/2 - 0.5*math.Log(2*math.Pi) - math.Log(z) + math.Log1p(-1/z2+3/(z2*z2))
}

// normalHazard is phi(z) / (1 - Phi(z)).
func normalHazard(z float64) float64 {
	if z < 8 {
		pdf := math.Exp(-z*z/2) / math.Sqrt(2*math.Pi)
		return pdf / distuv.UnitNormal.Survival(z)
	}
	z2 := z * z
	return z / (1 - 1/z2 + 3/(z2*z2))
}
