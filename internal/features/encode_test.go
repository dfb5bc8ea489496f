package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsContract(t *testing.T) {
	want := []string{
		"cs_sexo",
		"febre", "mialgia", "cefaleia", "exantema", "vomito", "nausea",
		"dor_costas", "conjuntvit", "artrite", "artralgia", "petequia_n", "leucopenia",
		"laco", "dor_retro",
		"diabetes", "hematolog", "hepatopat", "renal", "hipertensa", "acido_pept", "auto_imune",
		"dias_sintomas",
		"faixa_etaria_Adulto", "faixa_etaria_Crianca", "faixa_etaria_Idoso",
		"gestante_cat_ignorado", "gestante_cat_nao", "gestante_cat_nao_aplica",
	}
	assert.Equal(t, want, Columns())
	assert.Len(t, want, Width)
}

func TestColumnsReturnsCopy(t *testing.T) {
	c := Columns()
	c[0] = "changed"
	assert.Equal(t, "cs_sexo", Columns()[0])
}

func TestEncode_MaleAdolescentBaseline(t *testing.T) {
	v := Encode(Observation{Sex: Male, AgeBracket: Adolescent})

	var want Vector
	want[colPregNo] = 1
	assert.Equal(t, want, v)
	assert.Equal(t, [3]float64{0, 0, 0}, v.AgeDummies())
	assert.Equal(t, [3]float64{0, 1, 0}, v.PregnancyDummies())
}

func TestEncode_FemalePregnantElderly(t *testing.T) {
	v := Encode(Observation{Sex: Female, Pregnancy: Pregnant, AgeBracket: Elderly})

	assert.Equal(t, 1.0, v[colSex])
	assert.Equal(t, [3]float64{0, 0, 1}, v.AgeDummies())
	assert.Equal(t, [3]float64{0, 0, 0}, v.PregnancyDummies())
}

func TestEncode_AgeDummies(t *testing.T) {
	tests := []struct {
		age  AgeBracket
		want [3]float64
	}{
		{Adolescent, [3]float64{0, 0, 0}},
		{Adult, [3]float64{1, 0, 0}},
		{Child, [3]float64{0, 1, 0}},
		{Elderly, [3]float64{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.age.String(), func(t *testing.T) {
			v := Encode(Observation{AgeBracket: tt.age})
			assert.Equal(t, tt.want, v.AgeDummies())
		})
	}
}

func TestEncode_PregnancyDummiesForFemale(t *testing.T) {
	tests := []struct {
		preg Pregnancy
		want [3]float64
	}{
		{Pregnant, [3]float64{0, 0, 0}},
		{Unknown, [3]float64{1, 0, 0}},
		{NotPregnant, [3]float64{0, 1, 0}},
		{NotApplicable, [3]float64{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.preg.String(), func(t *testing.T) {
			v := Encode(Observation{Sex: Female, Pregnancy: tt.preg})
			assert.Equal(t, tt.want, v.PregnancyDummies())
		})
	}
}

func TestEncode_MaleIgnoresStalePregnancy(t *testing.T) {
	for _, p := range Pregnancies {
		t.Run(p.String(), func(t *testing.T) {
			v := Encode(Observation{Sex: Male, Pregnancy: p})
			assert.Equal(t, [3]float64{0, 1, 0}, v.PregnancyDummies())
		})
	}
}

func TestEncode_FlagsPassThroughInOrder(t *testing.T) {
	for i := 0; i < NumSymptoms; i++ {
		var o Observation
		o.Symptoms[i] = true
		v := Encode(o)
		require.Equal(t, 1.0, v[colSymptoms+i], "symptom %s", SymptomFlags[i].Key)
		assert.Equal(t, SymptomFlags[i].Column, Columns()[colSymptoms+i])
	}
	for i := 0; i < NumComorbidities; i++ {
		var o Observation
		o.Comorbidities[i] = true
		v := Encode(o)
		require.Equal(t, 1.0, v[colComorbidity+i], "comorbidity %s", ComorbidityFlags[i].Key)
		assert.Equal(t, ComorbidityFlags[i].Column, Columns()[colComorbidity+i])
	}
}

func TestEncode_DaysClamped(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-4, 0},
		{0, 0},
		{12, 12},
		{185, 185},
		{400, 185},
	}
	for _, tt := range tests {
		v := Encode(Observation{DaysSinceOnset: tt.in})
		assert.Equal(t, float64(tt.want), v[colDays], "days %d", tt.in)
	}
}

// Every value of every field yields a row of binary columns plus days in range.
func TestEncode_AllValuesWellFormed(t *testing.T) {
	for _, sex := range []Sex{Male, Female} {
		for _, age := range AgeBrackets {
			for _, preg := range Pregnancies {
				o := Observation{Sex: sex, AgeBracket: age, Pregnancy: preg, DaysSinceOnset: 30}
				o.Symptoms[Fever] = true
				o.Comorbidities[Hypertension] = true

				v := Encode(o)
				for i, x := range v {
					if i == colDays {
						assert.Equal(t, 30.0, x)
						continue
					}
					assert.Contains(t, []float64{0, 1}, x, "column %s", Columns()[i])
				}
				assert.Equal(t, v, Encode(o), "encode must be deterministic")
			}
		}
	}
}

func TestVectorNamed(t *testing.T) {
	o := Observation{Sex: Female, DaysSinceOnset: 7, AgeBracket: Child, Pregnancy: Unknown}
	o.Symptoms[Headache] = true

	named := Encode(o).Named()
	require.Len(t, named, Width)
	assert.Equal(t, 1.0, named["cs_sexo"])
	assert.Equal(t, 1.0, named["cefaleia"])
	assert.Equal(t, 7.0, named["dias_sintomas"])
	assert.Equal(t, 1.0, named["faixa_etaria_Crianca"])
	assert.Equal(t, 1.0, named["gestante_cat_ignorado"])
}
