package features

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/denguerisk/internal/validate"
)

// Input is the JSON form of an Observation, used by the web form and the
// predict command. Categorical values accept the names understood by the
// Parse functions.
type Input struct {
	Sex             string          `json:"sex"`
	DaysSinceOnset  int             `json:"days_since_onset"`
	AgeBracket      string          `json:"age_bracket"`
	PregnancyStatus string          `json:"pregnancy_status,omitempty"`
	Symptoms        map[string]bool `json:"symptoms,omitempty"`
	Comorbidities   map[string]bool `json:"comorbidities,omitempty"`
}

// InputSchema validates raw Input documents.
var InputSchema = &validate.Schema{
	Name: "patient-observation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sex":              map[string]any{"type": "string"},
			"days_since_onset": map[string]any{"type": "integer", "minimum": MinDays, "maximum": MaxDays},
			"age_bracket":      map[string]any{"type": "string"},
			"pregnancy_status": map[string]any{"type": "string"},
			"symptoms":         flagMapSchema(SymptomFlags[:]),
			"comorbidities":    flagMapSchema(ComorbidityFlags[:]),
		},
		"required":             []any{"sex", "age_bracket"},
		"additionalProperties": false,
	},
}

func flagMapSchema(flags []Flag) map[string]any {
	props := make(map[string]any, len(flags))
	for _, f := range flags {
		props[f.Key] = map[string]any{"type": "boolean"}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

// DecodeInput validates raw JSON against InputSchema and converts it.
func DecodeInput(raw []byte) (Observation, error) {
	if err := validate.JSON(InputSchema, raw); err != nil {
		return Observation{}, err
	}
	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return Observation{}, fmt.Errorf("decode observation: %w", err)
	}
	return in.Observation()
}

// Observation converts the input. The pregnancy status may be omitted; it
// then defaults to not pregnant, which is also what male patients encode to.
// On error the returned Observation still holds every field that parsed.
func (in Input) Observation() (Observation, error) {
	var o Observation
	var errs []error

	sex, err := ParseSex(in.Sex)
	if err != nil {
		errs = append(errs, err)
	}
	o.Sex = sex

	age, err := ParseAgeBracket(in.AgeBracket)
	if err != nil {
		errs = append(errs, err)
	}
	o.AgeBracket = age

	o.Pregnancy = NotPregnant
	if in.PregnancyStatus != "" {
		p, err := ParsePregnancy(in.PregnancyStatus)
		if err != nil {
			errs = append(errs, err)
		}
		o.Pregnancy = p
	}

	if in.DaysSinceOnset < MinDays || in.DaysSinceOnset > MaxDays {
		errs = append(errs, fmt.Errorf("days_since_onset must be between %d and %d, got %d", MinDays, MaxDays, in.DaysSinceOnset))
	}
	o.DaysSinceOnset = in.DaysSinceOnset

	for key, on := range in.Symptoms {
		s, ok := SymptomByKey(key)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown symptom %q", key))
			continue
		}
		o.Symptoms[s] = on
	}
	for key, on := range in.Comorbidities {
		c, ok := ComorbidityByKey(key)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown comorbidity %q", key))
			continue
		}
		o.Comorbidities[c] = on
	}

	return o, errors.Join(errs...)
}

// InputFrom is the inverse of Input.Observation.
func InputFrom(o Observation) Input {
	in := Input{
		Sex:             o.Sex.String(),
		DaysSinceOnset:  o.DaysSinceOnset,
		AgeBracket:      o.AgeBracket.String(),
		PregnancyStatus: o.Pregnancy.String(),
		Symptoms:        make(map[string]bool, NumSymptoms),
		Comorbidities:   make(map[string]bool, NumComorbidities),
	}
	for i, on := range o.Symptoms {
		in.Symptoms[SymptomFlags[i].Key] = on
	}
	for i, on := range o.Comorbidities {
		in.Comorbidities[ComorbidityFlags[i].Key] = on
	}
	return in
}
