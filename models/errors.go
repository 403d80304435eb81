package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Pipeline errors
var (
	// ErrMissingColumn aborts a pipeline run before any model is fitted.
	ErrMissingColumn = errors.New("survival dataset is missing a required column")

	ErrNegativeDuration = errors.New("survival dataset contains a negative duration")

	// ErrFitDidNotConverge marks a single candidate distribution whose
	// optimization failed; the candidate is excluded from model selection.
	ErrFitDidNotConverge = errors.New("model fitting did not converge")

	// ErrNoModelConverged is returned when every candidate distribution
	// failed to converge, in which case no predictions are produced.
	ErrNoModelConverged = errors.New("no candidate distribution converged")

	ErrEmptyDataset = errors.New("survival dataset contains no rows")
)

// Serving errors
var (
	ErrUnknownClient    = errors.Wrap(NotFoundError, "unknown client")
	ErrNoPredictionRuns = errors.Wrap(NotFoundError, "no prediction runs recorded")
)
