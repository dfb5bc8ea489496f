// Package form holds the state of the risk form and the reducer that
// applies user events to it. Both terminal and web surfaces drive it.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/model"
	"github.com/abhisek/denguerisk/internal/risk"
)

// ErrPredictionFailed is the user-facing error for a failed prediction.
// The underlying cause is wrapped for logs.
var ErrPredictionFailed = errors.New("prediction failed")

// State is everything the form displays.
type State struct {
	Observation features.Observation
	Threshold   risk.Threshold

	// Outcome is the result of the last successful Submit, re-classified
	// whenever the threshold changes. Nil until the first prediction.
	Outcome *risk.Outcome

	// Err is set when the last Submit failed, in which case Outcome is nil.
	Err error
}

// NewState returns the initial form: a male adolescent with no symptoms,
// zero days since onset, and the given threshold.
func NewState(t risk.Threshold) State {
	return State{
		Observation: features.Observation{
			Sex:        features.Male,
			AgeBracket: features.Adolescent,
			Pregnancy:  features.Pregnant,
		},
		Threshold: t,
	}
}

// PregnancyVisible reports whether the pregnancy field is asked for.
func (s State) PregnancyVisible() bool {
	return s.Observation.Sex == features.Female
}

// Vector returns the row the current observation encodes to.
func (s State) Vector() features.Vector {
	return features.Encode(s.Observation)
}

// Event is a user interaction with the form.
type Event interface {
	isEvent()
}

type (
	SetSex        struct{ Sex features.Sex }
	SetAgeBracket struct{ AgeBracket features.AgeBracket }
	SetPregnancy  struct{ Pregnancy features.Pregnancy }
	SetDays       struct{ Days int }
	SetSymptom    struct {
		Symptom features.Symptom
		On      bool
	}
	SetComorbidity struct {
		Comorbidity features.Comorbidity
		On          bool
	}
	SetThreshold struct{ Threshold risk.Threshold }
	Submit       struct{}
)

func (SetSex) isEvent()         {}
func (SetAgeBracket) isEvent()  {}
func (SetPregnancy) isEvent()   {}
func (SetDays) isEvent()        {}
func (SetSymptom) isEvent()     {}
func (SetComorbidity) isEvent() {}
func (SetThreshold) isEvent()   {}
func (Submit) isEvent()         {}

// Reducer applies events to a State. The model is loaded once and shared.
type Reducer struct {
	Model model.Predictor
}

// NewReducer creates a Reducer backed by p.
func NewReducer(p model.Predictor) *Reducer {
	return &Reducer{Model: p}
}

// Handle returns the state that results from applying e to s. Only Submit
// runs inference; changing the threshold re-classifies the stored
// probability.
func (r *Reducer) Handle(ctx context.Context, s State, e Event) State {
	switch e := e.(type) {
	case SetSex:
		s.Observation.Sex = e.Sex
	case SetAgeBracket:
		s.Observation.AgeBracket = e.AgeBracket
	case SetPregnancy:
		s.Observation.Pregnancy = e.Pregnancy
	case SetDays:
		s.Observation.DaysSinceOnset = e.Days
		s.Observation = s.Observation.Normalize()
	case SetSymptom:
		s.Observation.Symptoms[e.Symptom] = e.On
	case SetComorbidity:
		s.Observation.Comorbidities[e.Comorbidity] = e.On
	case SetThreshold:
		s.Threshold = e.Threshold
		if s.Outcome != nil {
			o := s.Outcome.WithThreshold(e.Threshold)
			s.Outcome = &o
		}
	case Submit:
		o, err := r.Predict(ctx, s.Observation, s.Threshold)
		if err != nil {
			s.Err = err
			s.Outcome = nil
			return s
		}
		s.Err = nil
		s.Outcome = &o
	}
	return s
}

// Predict encodes o, scores it and applies t. Failures are wrapped in
// ErrPredictionFailed.
func (r *Reducer) Predict(ctx context.Context, o features.Observation, t risk.Threshold) (risk.Outcome, error) {
	v := features.Encode(o)
	p, err := r.Model.PredictProbability(ctx, features.Columns(), v.Row())
	if err != nil {
		return risk.Outcome{}, fmt.Errorf("%w: %w", ErrPredictionFailed, err)
	}
	return risk.Evaluate(p, t), nil
}
