package domain

import (
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/errors"
)

// NavigationLevel - nivel de detalle del mapa. Jerarquía lineal
// estricta: a Vereda sólo se llega desde un municipio seleccionado,
// a Municipio sólo desde el departamento.
type NavigationLevel int

const (
	LevelDepartment NavigationLevel = iota
	LevelMunicipality
	LevelVereda
)

func (l NavigationLevel) String() string {
	switch l {
	case LevelDepartment:
		return "departamento"
	case LevelMunicipality:
		return "municipio"
	case LevelVereda:
		return "vereda"
	default:
		return "unknown"
	}
}

// MarshalText permite serializar el nivel en las respuestas JSON.
func (l NavigationLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// NavigationState - posición actual del drill-down del mapa: nivel más
// la entidad seleccionada en forma normalizada. Valor inmutable: las
// transiciones devuelven un estado nuevo. Invariante: Vereda sólo con
// Municipio, y la vereda pertenece al municipio según la geografía.
type NavigationState struct {
	Level     NavigationLevel `json:"level"`
	Municipio string          `json:"municipio,omitempty"`
	Vereda    string          `json:"vereda,omitempty"`
}

// InitialNavigation - estado inicial: vista departamental completa.
func InitialNavigation() NavigationState {
	return NavigationState{Level: LevelDepartment}
}

// DrillDown - desciende un nivel hacia la entidad destino. El destino
// debe existir en la geografía de referencia y ser alcanzable desde el
// nivel actual; de lo contrario falla y el estado no cambia. En el
// nivel de vereda no hay más descenso.
func (s NavigationState) DrillDown(geo *Geography, target string) (NavigationState, error) {
	switch s.Level {
	case LevelDepartment:
		if !geo.HasMunicipio(target) {
			return s, errors.ErrUnknownTarget.WithDetails(map[string]interface{}{
				"target": target,
				"level":  s.Level.String(),
			})
		}
		return NavigationState{Level: LevelMunicipality, Municipio: target}, nil

	case LevelMunicipality:
		if !geo.HasVereda(s.Municipio, target) {
			return s, errors.ErrUnknownTarget.WithDetails(map[string]interface{}{
				"target":    target,
				"municipio": s.Municipio,
				"level":     s.Level.String(),
			})
		}
		return NavigationState{Level: LevelVereda, Municipio: s.Municipio, Vereda: target}, nil

	default:
		// Vereda es terminal para el descenso.
		return s, errors.ErrUnknownTarget.WithDetails(map[string]interface{}{
			"target": target,
			"level":  s.Level.String(),
			"reason": "vereda level has no further drill-down",
		})
	}
}

// DrillUp - asciende un nivel. En el departamento es no-op.
func (s NavigationState) DrillUp() NavigationState {
	switch s.Level {
	case LevelVereda:
		return NavigationState{Level: LevelMunicipality, Municipio: s.Municipio}
	case LevelMunicipality:
		return NavigationState{Level: LevelDepartment}
	default:
		return s
	}
}

// Reset - vuelve a la vista departamental desde cualquier estado.
func (s NavigationState) Reset() NavigationState {
	return InitialNavigation()
}

// ApplyToCriteria - reescribe la dimensión de ubicación del criterio
// para reflejar este estado: el departamento la limpia por completo,
// municipio fija sólo municipio, vereda fija ambos.
func (s NavigationState) ApplyToCriteria(fc FilterCriteria) FilterCriteria {
	switch s.Level {
	case LevelMunicipality:
		return fc.WithLocation(s.Municipio, "")
	case LevelVereda:
		return fc.WithLocation(s.Municipio, s.Vereda)
	default:
		return fc.WithLocation("", "")
	}
}

// FromCriteria - deriva el estado de navegación implícito en un
// criterio de filtros del sidebar, para mantener mapa y sidebar
// sincronizados en ambas direcciones.
func FromCriteria(fc FilterCriteria) NavigationState {
	switch {
	case fc.Vereda != "":
		return NavigationState{Level: LevelVereda, Municipio: fc.Municipio, Vereda: fc.Vereda}
	case fc.Municipio != "":
		return NavigationState{Level: LevelMunicipality, Municipio: fc.Municipio}
	default:
		return InitialNavigation()
	}
}

// Breadcrumbs - ruta de navegación para la UI, con nombres de despliegue.
func (s NavigationState) Breadcrumbs(geo *Geography) []string {
	crumbs := []string{"Tolima"}
	if s.Municipio != "" {
		crumbs = append(crumbs, geo.DisplayName(s.Municipio))
	}
	if s.Vereda != "" {
		crumbs = append(crumbs, geo.VeredaDisplayName(s.Municipio, s.Vereda))
	}
	return crumbs
}
