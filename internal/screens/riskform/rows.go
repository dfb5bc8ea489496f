package riskform

import (
	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/form"
)

type rowKind int

const (
	rowSex rowKind = iota
	rowDays
	rowAge
	rowPregnancy
	rowSymptom
	rowComorbidity
	rowSubmit
)

// row is one focusable line of the form. index selects the flag for
// symptom and comorbidity rows.
type row struct {
	kind  rowKind
	index int
}

// section headers are printed before the first row of each block.
var sectionTitles = map[rowKind]string{
	rowSex:         "Informações Gerais",
	rowSymptom:     "Sintomas Clínicos",
	rowComorbidity: "Doenças Pré-existentes / Comorbidades",
}

var yesNo = []string{"Não", "Sim"}

// visibleRows lists the rows in display order. The pregnancy row is only
// asked for female patients.
func visibleRows(s form.State) []row {
	rows := []row{{kind: rowSex}, {kind: rowDays}, {kind: rowAge}}
	if s.PregnancyVisible() {
		rows = append(rows, row{kind: rowPregnancy})
	}
	for i := 0; i < features.NumSymptoms; i++ {
		rows = append(rows, row{kind: rowSymptom, index: i})
	}
	for i := 0; i < features.NumComorbidities; i++ {
		rows = append(rows, row{kind: rowComorbidity, index: i})
	}
	return append(rows, row{kind: rowSubmit})
}

func (r row) label() string {
	switch r.kind {
	case rowSex:
		return "Sexo"
	case rowDays:
		return "Dias desde o início dos sintomas"
	case rowAge:
		return "Faixa Etária"
	case rowPregnancy:
		return "Gestante"
	case rowSymptom:
		return features.SymptomFlags[r.index].Label
	case rowComorbidity:
		return features.ComorbidityFlags[r.index].Label
	default:
		return "Prever Gravidade"
	}
}

// options returns the choices of a choice row and the selected index.
func (r row) options(s form.State) ([]string, int) {
	o := s.Observation
	switch r.kind {
	case rowSex:
		return []string{features.Male.Label(), features.Female.Label()}, int(o.Sex)
	case rowAge:
		return labels(features.AgeBrackets, func(a features.AgeBracket) string { return a.Label() }), int(o.AgeBracket)
	case rowPregnancy:
		return labels(features.Pregnancies, func(p features.Pregnancy) string { return p.Label() }), int(o.Pregnancy)
	case rowSymptom:
		return yesNo, boolIndex(o.Symptoms[r.index])
	case rowComorbidity:
		return yesNo, boolIndex(o.Comorbidities[r.index])
	}
	return nil, 0
}

// event maps a new selection on a choice row to a form event.
func (r row) event(selected int) form.Event {
	switch r.kind {
	case rowSex:
		return form.SetSex{Sex: features.Sex(selected)}
	case rowAge:
		return form.SetAgeBracket{AgeBracket: features.AgeBrackets[selected]}
	case rowPregnancy:
		return form.SetPregnancy{Pregnancy: features.Pregnancies[selected]}
	case rowSymptom:
		return form.SetSymptom{Symptom: features.Symptom(r.index), On: selected == 1}
	case rowComorbidity:
		return form.SetComorbidity{Comorbidity: features.Comorbidity(r.index), On: selected == 1}
	}
	return nil
}

func labels[T any](values []T, label func(T) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = label(v)
	}
	return out
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
