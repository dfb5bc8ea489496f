package server

import (
	"embed"
	"html/template"

	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/risk"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"percent": func(p float64) float64 { return p * 100 },
}

// option is one radio button or select entry.
type option struct {
	Value    string
	Label    string
	Selected bool
}

// check is one Sim/Não question rendered as a checkbox.
type check struct {
	Key     string
	Label   string
	Checked bool
}

// page is the data behind form.html.
type page struct {
	Sexes        []option
	Ages         []option
	Pregnancies  []option
	Female       bool
	Days         int
	MaxDays      int
	Symptoms     []check
	Comorbidity  []check
	Threshold    risk.Threshold
	Guidance     []string
	Outcome      *risk.Outcome
	PredictionID string
	Error        string
}

func newPage(o features.Observation, t risk.Threshold) page {
	p := page{
		Female:    o.Sex == features.Female,
		Days:      o.DaysSinceOnset,
		MaxDays:   features.MaxDays,
		Threshold: t,
		Guidance:  risk.ThresholdGuidance,
	}
	for _, s := range []features.Sex{features.Male, features.Female} {
		p.Sexes = append(p.Sexes, option{Value: s.String(), Label: s.Label(), Selected: s == o.Sex})
	}
	for _, a := range features.AgeBrackets {
		p.Ages = append(p.Ages, option{Value: a.String(), Label: a.Label(), Selected: a == o.AgeBracket})
	}
	for _, pr := range features.Pregnancies {
		p.Pregnancies = append(p.Pregnancies, option{Value: pr.String(), Label: pr.Label(), Selected: pr == o.Pregnancy})
	}
	for i, f := range features.SymptomFlags {
		p.Symptoms = append(p.Symptoms, check{Key: f.Key, Label: f.Label, Checked: o.Symptoms[i]})
	}
	for i, f := range features.ComorbidityFlags {
		p.Comorbidity = append(p.Comorbidity, check{Key: f.Key, Label: f.Label, Checked: o.Comorbidities[i]})
	}
	return p
}
