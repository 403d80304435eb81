package models

// EncodedColumn declares a categorical column to expand into one indicator
// column per observed category. The configured reference level is omitted
// from the expansion so the design matrix stays full rank.
type EncodedColumn struct {
	Name      string
	Reference string
}

// IndicatorColumn declares a derived binary covariate: 1 when the source
// column is positive, 0 otherwise. Used for heavily skewed counts where the
// raw value carries less signal than its presence.
type IndicatorColumn struct {
	Name   string
	Source string
}

// FeatureConfig is the versioned feature preparation policy: which columns
// carry duration/event/subject, which categoricals get encoded and against
// which reference level, and which columns never enter the covariate matrix.
// Runs log the version so stored predictions can be traced back to the
// policy that produced them.
type FeatureConfig struct {
	Version string

	DurationColumn string
	EventColumn    string
	SubjectColumn  string

	EncodedColumns []EncodedColumn

	IndicatorColumns []IndicatorColumn

	// DropColumns are excluded from the covariate matrix: identifiers,
	// post-event aggregates and columns known to be collinear.
	DropColumns []string

	// DurationEpsilon replaces durations of exactly zero, since the
	// fitted models evaluate log-duration.
	DurationEpsilon float64
}

// DefaultFeatureConfig matches the production survival_data schema.
func DefaultFeatureConfig() FeatureConfig {
	return FeatureConfig{
		Version:        "v2",
		DurationColumn: "tenure",
		EventColumn:    "event",
		SubjectColumn:  "client_id",
		EncodedColumns: []EncodedColumn{
			{Name: "risk_class", Reference: "A"},
			{Name: "gender", Reference: "Female"},
			{Name: "mobile_operator", Reference: "Vodafone"},
			{Name: "region", Reference: "Central"},
		},
		// enforcement_count is heavily right-skewed, its presence is the signal
		IndicatorColumns: []IndicatorColumn{
			{Name: "has_enforcement", Source: "enforcement_count"},
		},
		DropColumns: []string{
			"application_id",
			"applied_at",
			"closed_at",
			"max_dpd",
			"initial_amount",
			"enforcement_count",
			"enforcement_sum",
		},
		DurationEpsilon: 1e-4,
	}
}
