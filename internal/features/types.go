package features

// Sex of the patient. Values are the codes the classifier was trained on.
type Sex int

const (
	Male   Sex = 0
	Female Sex = 1
)

func (s Sex) String() string {
	if s == Female {
		return "female"
	}
	return "male"
}

// Label returns the form label.
func (s Sex) Label() string {
	if s == Female {
		return "Feminino"
	}
	return "Masculino"
}

// AgeBracket is the patient's age group. Adolescent is the reference level
// and never gets a column of its own.
type AgeBracket int

const (
	Adolescent AgeBracket = iota
	Child
	Adult
	Elderly
)

// AgeBrackets lists the brackets in form order.
var AgeBrackets = []AgeBracket{Adolescent, Child, Adult, Elderly}

func (a AgeBracket) String() string {
	switch a {
	case Child:
		return "child"
	case Adult:
		return "adult"
	case Elderly:
		return "elderly"
	default:
		return "adolescent"
	}
}

// Label returns the form label.
func (a AgeBracket) Label() string {
	switch a {
	case Child:
		return "Crianca"
	case Adult:
		return "Adulto"
	case Elderly:
		return "Idoso"
	default:
		return "Adolescente"
	}
}

// Pregnancy is the pregnancy category. Pregnant is the reference level.
type Pregnancy int

const (
	Pregnant Pregnancy = iota
	NotPregnant
	NotApplicable
	Unknown
)

// Pregnancies lists the categories in form order.
var Pregnancies = []Pregnancy{Pregnant, NotPregnant, NotApplicable, Unknown}

func (p Pregnancy) String() string {
	switch p {
	case NotPregnant:
		return "not_pregnant"
	case NotApplicable:
		return "not_applicable"
	case Unknown:
		return "unknown"
	default:
		return "pregnant"
	}
}

// Label returns the form label.
func (p Pregnancy) Label() string {
	switch p {
	case NotPregnant:
		return "nao"
	case NotApplicable:
		return "nao_aplica"
	case Unknown:
		return "ignorado"
	default:
		return "gestante"
	}
}

// Flag describes one yes/no field of the form and the column it feeds.
type Flag struct {
	Key    string // stable identifier used by JSON and HTML inputs
	Column string // column name in the trained model
	Label  string
}

// Symptom indexes the clinical symptom flags, in column order.
type Symptom int

const (
	Fever Symptom = iota
	Myalgia
	Headache
	Rash
	Vomiting
	Nausea
	BackPain
	Conjunctivitis
	Arthritis
	Arthralgia
	Petechiae
	Leukopenia
	TourniquetTest
	RetroOrbitalPain

	NumSymptoms = int(RetroOrbitalPain) + 1
)

// SymptomFlags describes each Symptom. Order is part of the model contract.
var SymptomFlags = [NumSymptoms]Flag{
	{Key: "fever", Column: "febre", Label: "Febre"},
	{Key: "myalgia", Column: "mialgia", Label: "Mialgia"},
	{Key: "headache", Column: "cefaleia", Label: "Cefaleia"},
	{Key: "rash", Column: "exantema", Label: "Exantema"},
	{Key: "vomiting", Column: "vomito", Label: "Vômito"},
	{Key: "nausea", Column: "nausea", Label: "Náusea"},
	{Key: "back_pain", Column: "dor_costas", Label: "Dor nas Costas"},
	{Key: "conjunctivitis", Column: "conjuntvit", Label: "Conjuntivite"},
	{Key: "arthritis", Column: "artrite", Label: "Artrite"},
	{Key: "arthralgia", Column: "artralgia", Label: "Artralgia"},
	{Key: "petechiae", Column: "petequia_n", Label: "Petéquias"},
	{Key: "leukopenia", Column: "leucopenia", Label: "Leucopenia"},
	{Key: "tourniquet_test", Column: "laco", Label: "Teste do Laço Positivo"},
	{Key: "retro_orbital_pain", Column: "dor_retro", Label: "Dor Retroorbital"},
}

func (s Symptom) Flag() Flag { return SymptomFlags[s] }

// Comorbidity indexes the pre-existing disease flags, in column order.
type Comorbidity int

const (
	Diabetes Comorbidity = iota
	HematologicDisease
	LiverDisease
	KidneyDisease
	Hypertension
	PepticDisease
	AutoimmuneDisease

	NumComorbidities = int(AutoimmuneDisease) + 1
)

// ComorbidityFlags describes each Comorbidity. Order is part of the model contract.
var ComorbidityFlags = [NumComorbidities]Flag{
	{Key: "diabetes", Column: "diabetes", Label: "Diabetes"},
	{Key: "hematologic_disease", Column: "hematolog", Label: "Doença Hematológica"},
	{Key: "liver_disease", Column: "hepatopat", Label: "Doença Hepática"},
	{Key: "kidney_disease", Column: "renal", Label: "Doença Renal"},
	{Key: "hypertension", Column: "hipertensa", Label: "Hipertensão"},
	{Key: "peptic_disease", Column: "acido_pept", Label: "Doença Péptica"},
	{Key: "autoimmune_disease", Column: "auto_imune", Label: "Doença Autoimune"},
}

func (c Comorbidity) Flag() Flag { return ComorbidityFlags[c] }

const (
	MinDays = 0
	MaxDays = 185
)

// Observation is the raw content of one form submission.
type Observation struct {
	Sex            Sex
	DaysSinceOnset int
	AgeBracket     AgeBracket
	// Pregnancy is only meaningful for female patients. It is kept as
	// selected even for male patients and ignored by Encode.
	Pregnancy     Pregnancy
	Symptoms      [NumSymptoms]bool
	Comorbidities [NumComorbidities]bool
}

// Normalize clamps days since onset to the accepted range.
func (o Observation) Normalize() Observation {
	if o.DaysSinceOnset < MinDays {
		o.DaysSinceOnset = MinDays
	}
	if o.DaysSinceOnset > MaxDays {
		o.DaysSinceOnset = MaxDays
	}
	return o
}

// EffectivePregnancy returns the category the encoder uses: male patients
// are always recorded as not pregnant.
func (o Observation) EffectivePregnancy() Pregnancy {
	if o.Sex == Male {
		return NotPregnant
	}
	return o.Pregnancy
}
