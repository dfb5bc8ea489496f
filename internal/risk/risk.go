// Package risk turns a predicted probability into a displayed decision.
package risk

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// DefaultThreshold is the cutoff used until the user moves it.
	DefaultThreshold Threshold = 0.5

	// ThresholdStep is the granularity of threshold adjustments.
	ThresholdStep = 0.01
)

// Threshold is the probability cutoff at or above which a case is
// classified as high risk. It is a presentation setting, not part of the
// model.
type Threshold float64

// NewThreshold validates t.
func NewThreshold(t float64) (Threshold, error) {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return 0, fmt.Errorf("threshold must be between 0 and 1, got %v", t)
	}
	return Threshold(t), nil
}

// ParseThreshold parses and validates a threshold.
func ParseThreshold(s string) (Threshold, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold %q", s)
	}
	return NewThreshold(f)
}

// Step moves the threshold by n steps, staying within [0,1] and on the
// step grid.
func (t Threshold) Step(n int) Threshold {
	v := math.Round(float64(t)/ThresholdStep+float64(n)) * ThresholdStep
	v = math.Round(v*100) / 100
	return Threshold(math.Max(0, math.Min(1, v)))
}

func (t Threshold) String() string {
	return strconv.FormatFloat(float64(t), 'f', 2, 64)
}

// Decision is the binary outcome shown to the user.
type Decision int

const (
	LowRisk Decision = iota
	HighRisk
)

func (d Decision) String() string {
	if d == HighRisk {
		return "high_risk"
	}
	return "low_risk"
}

// MarshalText encodes the decision as its String form.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts the String form.
func (d *Decision) UnmarshalText(b []byte) error {
	switch string(b) {
	case "high_risk":
		*d = HighRisk
	case "low_risk":
		*d = LowRisk
	default:
		return fmt.Errorf("unknown decision %q", b)
	}
	return nil
}

// Classify returns HighRisk iff p >= t.
func Classify(p float64, t Threshold) Decision {
	if p >= float64(t) {
		return HighRisk
	}
	return LowRisk
}

// Outcome is a probability with the threshold applied to it.
type Outcome struct {
	Probability float64
	Threshold   Threshold
	Decision    Decision
}

// Evaluate classifies p against t.
func Evaluate(p float64, t Threshold) Outcome {
	return Outcome{Probability: p, Threshold: t, Decision: Classify(p, t)}
}

// WithThreshold re-applies a new threshold to the same probability.
func (o Outcome) WithThreshold(t Threshold) Outcome {
	return Evaluate(o.Probability, t)
}

// ProbabilityPercent formats the probability as a percentage, e.g. "42.00%".
func (o Outcome) ProbabilityPercent() string {
	return fmt.Sprintf("%.2f%%", o.Probability*100)
}

// Message is the headline shown with the result.
func (o Outcome) Message() string {
	if o.Decision == HighRisk {
		return "O modelo prevê ALTO risco de gravidade."
	}
	return "O modelo prevê BAIXO risco de gravidade."
}

// ThresholdGuidance explains the effect of moving the threshold.
var ThresholdGuidance = []string{
	"Diminuir o valor: o modelo classifica mais casos como graves.",
	"Aumenta o recall (menos falsos negativos), mas pode gerar mais falsos positivos.",
	"Aumentar o valor: o modelo classifica menos casos como graves.",
	"Aumenta a precisão (menos falsos positivos), mas pode deixar passar casos graves.",
}
