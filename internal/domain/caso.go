package domain

import "time"

// Outcome - condición final de un caso humano confirmado.
type Outcome string

const (
	OutcomeAlive    Outcome = "Vivo"
	OutcomeDeceased Outcome = "Fallecido"
	OutcomeUnknown  Outcome = "Desconocido"
)

// ParseOutcome - interpreta la condición final tal como llega del origen.
func ParseOutcome(raw string) Outcome {
	switch raw {
	case "Vivo", "VIVO":
		return OutcomeAlive
	case "Fallecido", "FALLECIDO":
		return OutcomeDeceased
	default:
		return OutcomeUnknown
	}
}

// CaseRecord - un caso humano confirmado de fiebre amarilla.
// Inmutable una vez cargado del origen.
type CaseRecord struct {
	ID            int64      `json:"id" db:"id"`
	Municipio     string     `json:"municipio" db:"municipio"`
	MunicipioNorm string     `json:"-" db:"municipio_norm"`
	Vereda        string     `json:"vereda,omitempty" db:"vereda"`
	VeredaNorm    string     `json:"-" db:"vereda_norm"`
	OnsetDate     *time.Time `json:"fecha_inicio_sintomas,omitempty" db:"fecha_inicio_sintomas"`
	Age           *int       `json:"edad,omitempty" db:"edad"`
	Sex           string     `json:"sexo,omitempty" db:"sexo"`
	Outcome       Outcome    `json:"condicion_final" db:"condicion_final"`
}

// AgeGroup - rango etario usado por los filtros demográficos.
type AgeGroup struct {
	Min   int
	Max   int
	Label string
}

// AgeGroups - grupos etarios del protocolo de vigilancia.
var AgeGroups = []AgeGroup{
	{Min: 0, Max: 14, Label: "0-14 años"},
	{Min: 15, Max: 29, Label: "15-29 años"},
	{Min: 30, Max: 44, Label: "30-44 años"},
	{Min: 45, Max: 59, Label: "45-59 años"},
	{Min: 60, Max: 120, Label: "60+ años"},
}

// AgeGroupLabel - etiqueta del grupo etario para una edad, o "" si
// la edad está fuera de rango.
func AgeGroupLabel(age int) string {
	for _, g := range AgeGroups {
		if age >= g.Min && age <= g.Max {
			return g.Label
		}
	}
	return ""
}
