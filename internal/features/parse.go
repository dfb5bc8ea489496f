package features

import (
	"fmt"
	"strings"
)

// ParseSex accepts "male"/"female", the form labels, or the codes "0"/"1".
func ParseSex(s string) (Sex, error) {
	switch norm(s) {
	case "male", "m", "masculino", "0":
		return Male, nil
	case "female", "f", "feminino", "1":
		return Female, nil
	}
	return Male, fmt.Errorf("unknown sex %q", s)
}

// ParseAgeBracket accepts the English names or the form labels.
func ParseAgeBracket(s string) (AgeBracket, error) {
	switch norm(s) {
	case "adolescent", "adolescente":
		return Adolescent, nil
	case "child", "crianca", "criança":
		return Child, nil
	case "adult", "adulto":
		return Adult, nil
	case "elderly", "idoso":
		return Elderly, nil
	}
	return Adolescent, fmt.Errorf("unknown age bracket %q", s)
}

// ParsePregnancy accepts the English names or the form labels.
func ParsePregnancy(s string) (Pregnancy, error) {
	switch norm(s) {
	case "pregnant", "gestante":
		return Pregnant, nil
	case "not_pregnant", "nao", "não":
		return NotPregnant, nil
	case "not_applicable", "nao_aplica", "não_aplica":
		return NotApplicable, nil
	case "unknown", "ignorado":
		return Unknown, nil
	}
	return Pregnant, fmt.Errorf("unknown pregnancy status %q", s)
}

// ParseYesNo accepts yes/no, sim/não, true/false and 1/0.
func ParseYesNo(s string) (bool, error) {
	switch norm(s) {
	case "yes", "sim", "true", "1", "on":
		return true, nil
	case "no", "nao", "não", "false", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", s)
}

// SymptomByKey looks up a symptom by its Flag key.
func SymptomByKey(key string) (Symptom, bool) {
	for i, f := range SymptomFlags {
		if f.Key == key {
			return Symptom(i), true
		}
	}
	return 0, false
}

// ComorbidityByKey looks up a comorbidity by its Flag key.
func ComorbidityByKey(key string) (Comorbidity, bool) {
	for i, f := range ComorbidityFlags {
		if f.Key == key {
			return Comorbidity(i), true
		}
	}
	return 0, false
}

func norm(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}
