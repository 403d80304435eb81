package models

import "time"

// Prediction is one row of the survival_predictions table: the probability
// that the client's loan is still open `Period` months after issuing.
// Rows are append-only; all rows written by one pipeline run share the same
// server-assigned DateCreated, which identifies the run.
type Prediction struct {
	RowId       int64
	DateCreated time.Time
	ClientId    int64
	Period      int
	Probability float64
}

// PredictionQuery filters predictions on one horizon and a probability range.
// A nil DateCreated means "the most recent run".
type PredictionQuery struct {
	Period      int
	LowerBound  float64
	UpperBound  float64
	DateCreated *time.Time
}

// PredictionRunSummary reports what a completed pipeline run did.
type PredictionRunSummary struct {
	Family      ModelFamily
	Subjects    int
	TimePeriods int
	RowsWritten int
	Covariates  []string
	Eliminated  []string
}
