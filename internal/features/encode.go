package features

// Column positions in Vector. The order matches the columns the classifier
// was trained on and must not change without retraining.
const (
	colSex         = 0
	colSymptoms    = colSex + 1
	colComorbidity = colSymptoms + NumSymptoms
	colDays        = colComorbidity + NumComorbidities
	colAgeAdult    = colDays + 1
	colAgeChild    = colAgeAdult + 1
	colAgeElderly  = colAgeChild + 1
	colPregUnknown = colAgeElderly + 1
	colPregNo      = colPregUnknown + 1
	colPregNA      = colPregNo + 1

	// Width is the number of columns in a Vector.
	Width = colPregNA + 1
)

// Vector is one encoded row, ready for the classifier.
type Vector [Width]float64

var columns = func() [Width]string {
	var c [Width]string
	c[colSex] = "cs_sexo"
	for i, f := range SymptomFlags {
		c[colSymptoms+i] = f.Column
	}
	for i, f := range ComorbidityFlags {
		c[colComorbidity+i] = f.Column
	}
	c[colDays] = "dias_sintomas"
	c[colAgeAdult] = "faixa_etaria_Adulto"
	c[colAgeChild] = "faixa_etaria_Crianca"
	c[colAgeElderly] = "faixa_etaria_Idoso"
	c[colPregUnknown] = "gestante_cat_ignorado"
	c[colPregNo] = "gestante_cat_nao"
	c[colPregNA] = "gestante_cat_nao_aplica"
	return c
}()

// Columns returns the column names of a Vector, in order.
func Columns() []string {
	out := make([]string, Width)
	copy(out, columns[:])
	return out
}

// Encode maps an observation to its feature row. Categorical fields are
// dummy-encoded with the reference level (Adolescent, Pregnant) left as all
// zeros. Male patients are always encoded as not pregnant.
func Encode(o Observation) Vector {
	o = o.Normalize()

	var v Vector
	v[colSex] = float64(o.Sex)
	for i, on := range o.Symptoms {
		v[colSymptoms+i] = bit(on)
	}
	for i, on := range o.Comorbidities {
		v[colComorbidity+i] = bit(on)
	}
	v[colDays] = float64(o.DaysSinceOnset)

	v[colAgeAdult] = bit(o.AgeBracket == Adult)
	v[colAgeChild] = bit(o.AgeBracket == Child)
	v[colAgeElderly] = bit(o.AgeBracket == Elderly)

	preg := o.EffectivePregnancy()
	v[colPregUnknown] = bit(preg == Unknown)
	v[colPregNo] = bit(preg == NotPregnant)
	v[colPregNA] = bit(preg == NotApplicable)

	return v
}

// Row returns the vector as a slice.
func (v Vector) Row() []float64 {
	out := make([]float64, Width)
	copy(out, v[:])
	return out
}

// Named returns the vector keyed by column name.
func (v Vector) Named() map[string]float64 {
	out := make(map[string]float64, Width)
	for i, name := range columns {
		out[name] = v[i]
	}
	return out
}

// AgeDummies returns the Adulto, Crianca and Idoso columns.
func (v Vector) AgeDummies() [3]float64 {
	return [3]float64{v[colAgeAdult], v[colAgeChild], v[colAgeElderly]}
}

// PregnancyDummies returns the ignorado, nao and nao_aplica columns.
func (v Vector) PregnancyDummies() [3]float64 {
	return [3]float64{v[colPregUnknown], v[colPregNo], v[colPregNA]}
}

func bit(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
