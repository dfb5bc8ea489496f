// Package model loads the trained severity classifier and runs inference
// on encoded feature rows.
package model

import "context"

// Predictor returns the probability of the positive class for one row.
type Predictor interface {
	// PredictProbability scores a single row. columns names each value of
	// row, in order, and must match the columns the model was trained on.
	// A mismatch returns *ErrSchemaMismatch.
	PredictProbability(ctx context.Context, columns []string, row []float64) (float64, error)

	// FeatureNames returns the trained column order, or nil when the
	// artifact does not record names.
	FeatureNames() []string

	// NumFeature returns the number of columns the model was trained on.
	NumFeature() int

	// ModelID identifies the loaded artifact.
	ModelID() string
}

// CheckContract reports whether p accepts rows with the given columns
// without scoring one. Names are compared only when the artifact records
// them; otherwise the count alone must match.
func CheckContract(p Predictor, columns []string) error {
	return checkColumns(p.FeatureNames(), p.NumFeature(), columns, make([]float64, len(columns)))
}
