package model

import (
	"context"
	"sync"
)

// MockPredictor is a deterministic Predictor for testing.
// It returns Probability (or Err) and records every row it is given.
type MockPredictor struct {
	mu          sync.Mutex
	Probability float64
	Err         error
	Names       []string
	Calls       [][]float64

	// Features is the reported column count when Names is nil.
	Features int
}

// NewMockPredictor creates a MockPredictor that always returns p.
func NewMockPredictor(p float64) *MockPredictor {
	return &MockPredictor{Probability: p}
}

// PredictProbability records the row and returns the canned result. When
// Names is set the columns are checked the way a real artifact would.
func (m *MockPredictor) PredictProbability(_ context.Context, columns []string, row []float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, append([]float64(nil), row...))

	if m.Err != nil {
		return 0, m.Err
	}
	if m.Names != nil {
		if err := checkColumns(m.Names, len(m.Names), columns, row); err != nil {
			return 0, err
		}
	}
	return m.Probability, nil
}

// FeatureNames returns Names.
func (m *MockPredictor) FeatureNames() []string { return m.Names }

// NumFeature returns len(Names), or Features when Names is nil.
func (m *MockPredictor) NumFeature() int {
	if m.Names != nil {
		return len(m.Names)
	}
	return m.Features
}

// ModelID returns "mock".
func (m *MockPredictor) ModelID() string { return "mock" }

// CallCount returns the number of PredictProbability calls made.
func (m *MockPredictor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
