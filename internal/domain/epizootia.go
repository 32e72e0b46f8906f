package domain

import (
	"fmt"
	"time"
)

// EpizootiaCategory - resultado de laboratorio de un evento epizoótico.
// Enumeración cerrada: los textos del origen ("POSITIVO FA", etc.) se
// traducen una sola vez en la frontera de carga, nunca por filtro.
type EpizootiaCategory string

const (
	CategoryPositive    EpizootiaCategory = "Positivo"
	CategoryNegative    EpizootiaCategory = "Negativo"
	CategoryNotSuitable EpizootiaCategory = "No apta"
	CategoryUnderStudy  EpizootiaCategory = "En estudio"
)

// ParseEpizootiaCategory - traduce el texto del origen a la categoría
// cerrada. Un texto desconocido es un error de carga, no un "Otro".
func ParseEpizootiaCategory(raw string) (EpizootiaCategory, error) {
	switch raw {
	case "POSITIVO FA":
		return CategoryPositive, nil
	case "NEGATIVO FA":
		return CategoryNegative, nil
	case "NO APTA":
		return CategoryNotSuitable, nil
	case "EN ESTUDIO":
		return CategoryUnderStudy, nil
	default:
		return "", fmt.Errorf("unknown epizootia category %q", raw)
	}
}

// EpizootiaRecord - un evento epizoótico (fauna silvestre) notificado.
// Inmutable una vez cargado del origen. Todo análisis posterior se
// restringe a registros con categoría Positivo.
type EpizootiaRecord struct {
	ID            int64             `json:"id" db:"id"`
	Municipio     string            `json:"municipio" db:"municipio"`
	MunicipioNorm string            `json:"-" db:"municipio_norm"`
	Vereda        string            `json:"vereda,omitempty" db:"vereda"`
	VeredaNorm    string            `json:"-" db:"vereda_norm"`
	CollectedAt   *time.Time        `json:"fecha_recoleccion,omitempty" db:"fecha_recoleccion"`
	Category      EpizootiaCategory `json:"categoria" db:"categoria"`
	Informante    string            `json:"informante,omitempty" db:"informante"`
}
