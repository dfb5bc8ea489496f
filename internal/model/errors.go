package model

import (
	"errors"
	"fmt"
)

// ErrChecksum indicates the artifact does not match its recorded digest.
var ErrChecksum = errors.New("checksum verification failed")

// ErrArtifactLoad indicates the model artifact is missing, unreadable or
// malformed. The process cannot serve predictions without it.
type ErrArtifactLoad struct {
	Path string
	Err  error
}

func (e *ErrArtifactLoad) Error() string {
	return fmt.Sprintf("load model artifact %s: %v", e.Path, e.Err)
}

func (e *ErrArtifactLoad) Unwrap() error { return e.Err }

// ErrSchemaMismatch indicates a row whose columns differ from the columns
// the model was trained on. Position is the first differing index, or -1
// when only the counts differ.
type ErrSchemaMismatch struct {
	Expected int
	Got      int
	Position int
	Want     string
	Have     string
}

func (e *ErrSchemaMismatch) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("feature schema mismatch at column %d: model expects %q, got %q", e.Position, e.Want, e.Have)
	}
	return fmt.Sprintf("feature schema mismatch: model expects %d columns, got %d", e.Expected, e.Got)
}

// checkColumns compares the caller's columns and row against the trained
// schema. names may be nil, in which case only the count is checked.
func checkColumns(names []string, numFeature int, columns []string, row []float64) error {
	if len(columns) != len(row) {
		return &ErrSchemaMismatch{Expected: len(columns), Got: len(row), Position: -1}
	}
	if len(row) != numFeature {
		return &ErrSchemaMismatch{Expected: numFeature, Got: len(row), Position: -1}
	}
	for i, name := range names {
		if columns[i] != name {
			return &ErrSchemaMismatch{Expected: numFeature, Got: len(row), Position: i, Want: name, Have: columns[i]}
		}
	}
	return nil
}
