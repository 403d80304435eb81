package survival

import (
	"context"
	"math"

	"github.com/tenurelab/tenure-backend/models"
	"github.com/tenurelab/tenure-backend/utils"
)

// SelectFamily fits every candidate distribution against the same design
// matrix, scores each by AIC and returns the family with the lowest score.
// Candidates that fail to converge are excluded from the comparison; when
// none converges the selection fails instead of defaulting to a family.
// Ties keep the first candidate in models.AFTFamilies order, so the choice
// is deterministic for identical input data.
func SelectFamily(ctx context.Context, dm DesignMatrix) (models.ModelFamily, map[models.ModelFamily]float64, error) {
	logger := utils.LoggerFromContext(ctx)

	scores := make(map[models.ModelFamily]float64, len(models.AFTFamilies))
	var best models.ModelFamily
	bestAIC := math.Inf(1)

	for _, family := range models.AFTFamilies {
		fitted, err := fitFamily(dm, family)
		if err != nil {
			logger.WarnContext(ctx, "candidate distribution failed to converge",
				"family", family, "error", err.Error())
			continue
		}
		scores[family] = fitted.AIC
		if fitted.AIC < bestAIC {
			bestAIC = fitted.AIC
			best = family
		}
	}

	if len(scores) == 0 {
		return "", nil, models.ErrNoModelConverged
	}
	return best, scores, nil
}
