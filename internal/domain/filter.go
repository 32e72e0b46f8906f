package domain

import (
	"time"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/errors"
)

// FilterCriteria - conjunto de predicados activos del dashboard.
// Valor inmutable: cada cambio produce un criterio nuevo vía
// NewFilterCriteria, nunca una mutación in situ. Una dimensión vacía
// significa "sin restricción"; todas las dimensiones se combinan con AND.
type FilterCriteria struct {
	// Municipio y Vereda en forma normalizada. Vereda exige Municipio:
	// una vereda sin municipio se rechaza en la construcción (decisión
	// documentada, ver DESIGN.md).
	Municipio string `json:"municipio,omitempty"`
	Vereda    string `json:"vereda,omitempty"`

	// Rango de fechas inclusivo; un extremo nil queda abierto.
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Dimensiones demográficas (solo aplican a casos humanos).
	Sex      string `json:"sexo,omitempty"`
	AgeGroup string `json:"grupo_edad,omitempty"`
}

// NewFilterCriteria valida y construye un criterio. Rechaza vereda sin
// municipio y rangos de fecha invertidos; en ese caso el llamador debe
// conservar su criterio anterior.
func NewFilterCriteria(municipio, vereda string, from, to *time.Time, sex, ageGroup string) (FilterCriteria, error) {
	if vereda != "" && municipio == "" {
		return FilterCriteria{}, errors.ErrFilterValidation.WithDetails(map[string]interface{}{
			"reason": "vereda filter requires municipio",
			"vereda": vereda,
		})
	}
	if from != nil && to != nil && from.After(*to) {
		return FilterCriteria{}, errors.ErrFilterValidation.WithDetails(map[string]interface{}{
			"reason":    "date range start after end",
			"date_from": from.Format("2006-01-02"),
			"date_to":   to.Format("2006-01-02"),
		})
	}
	return FilterCriteria{
		Municipio: municipio,
		Vereda:    vereda,
		DateFrom:  from,
		DateTo:    to,
		Sex:       sex,
		AgeGroup:  ageGroup,
	}, nil
}

// Equal - dos criterios son iguales sólo si todas las dimensiones coinciden.
func (fc FilterCriteria) Equal(other FilterCriteria) bool {
	if fc.Municipio != other.Municipio || fc.Vereda != other.Vereda ||
		fc.Sex != other.Sex || fc.AgeGroup != other.AgeGroup {
		return false
	}
	return equalDate(fc.DateFrom, other.DateFrom) && equalDate(fc.DateTo, other.DateTo)
}

func equalDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// WithLocation - copia del criterio con la dimensión de ubicación
// reescrita. Lo usan las transiciones de navegación del mapa.
func (fc FilterCriteria) WithLocation(municipio, vereda string) FilterCriteria {
	fc.Municipio = municipio
	fc.Vereda = vereda
	return fc
}

// HasDateFilter - true si algún extremo del rango está definido.
func (fc FilterCriteria) HasDateFilter() bool {
	return fc.DateFrom != nil || fc.DateTo != nil
}

func (fc FilterCriteria) matchDate(d *time.Time) bool {
	if !fc.HasDateFilter() {
		return true
	}
	// Registros sin fecha quedan fuera de cualquier filtro temporal.
	if d == nil {
		return false
	}
	if fc.DateFrom != nil && d.Before(*fc.DateFrom) {
		return false
	}
	if fc.DateTo != nil && d.After(*fc.DateTo) {
		return false
	}
	return true
}

func (fc FilterCriteria) matchLocation(municipioNorm, veredaNorm string) bool {
	if fc.Municipio != "" && municipioNorm != fc.Municipio {
		return false
	}
	if fc.Vereda != "" && veredaNorm != fc.Vereda {
		return false
	}
	return true
}

// MatchCase - true si el caso satisface todos los predicados activos.
func (fc FilterCriteria) MatchCase(c CaseRecord) bool {
	if !fc.matchLocation(c.MunicipioNorm, c.VeredaNorm) {
		return false
	}
	if !fc.matchDate(c.OnsetDate) {
		return false
	}
	if fc.Sex != "" && c.Sex != fc.Sex {
		return false
	}
	if fc.AgeGroup != "" {
		if c.Age == nil || AgeGroupLabel(*c.Age) != fc.AgeGroup {
			return false
		}
	}
	return true
}

// MatchEpizootia - true si el evento satisface los predicados activos.
// La restricción a categoría Positivo no ocurre aquí: es incondicional
// y la aplica ApplyFilters antes de cualquier predicado de usuario.
func (fc FilterCriteria) MatchEpizootia(e EpizootiaRecord) bool {
	if !fc.matchLocation(e.MunicipioNorm, e.VeredaNorm) {
		return false
	}
	return fc.matchDate(e.CollectedAt)
}

// FilteredView - subconjunto derivado de los datos bajo un criterio.
// Se recalcula siempre, nunca se persiste: su vida útil está atada al
// criterio y al snapshot que lo produjeron.
type FilteredView struct {
	Casos      []CaseRecord      `json:"casos"`
	Epizootias []EpizootiaRecord `json:"epizootias"`
}

// ApplyFilters - motor de filtrado puro. Las epizootias se restringen
// primero a categoría Positivo (regla de negocio vigente, independiente
// de cualquier filtro de usuario) y después se aplican los predicados
// del criterio. Determinista y sin efectos sobre sus entradas.
func ApplyFilters(fc FilterCriteria, casos []CaseRecord, epizootias []EpizootiaRecord) FilteredView {
	view := FilteredView{
		Casos:      make([]CaseRecord, 0, len(casos)),
		Epizootias: make([]EpizootiaRecord, 0, len(epizootias)),
	}
	for _, c := range casos {
		if fc.MatchCase(c) {
			view.Casos = append(view.Casos, c)
		}
	}
	for _, e := range epizootias {
		if e.Category != CategoryPositive {
			continue
		}
		if fc.MatchEpizootia(e) {
			view.Epizootias = append(view.Epizootias, e)
		}
	}
	return view
}
