package domain

import "time"

// RiskLevel - clasificación ordinal de riesgo derivada de la actividad.
type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskThresholds - umbrales de la función escalonada de riesgo.
// Son parámetros de vigilancia, no lógica: llegan de configuración.
type RiskThresholds struct {
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// DefaultRiskThresholds - valores por defecto documentados:
// actividad ≥ 3 es medium, ≥ 7 es high.
func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{Medium: 3, High: 7}
}

// ClassifyActivity - función escalonada monótona actividad → nivel.
func (t RiskThresholds) ClassifyActivity(activity int) RiskLevel {
	switch {
	case activity >= t.High:
		return RiskHigh
	case activity >= t.Medium:
		return RiskMedium
	case activity >= 1:
		return RiskLow
	default:
		return RiskNone
	}
}

// LastEventInfo - referencia al evento más reciente de una serie.
type LastEventInfo struct {
	Exists    bool       `json:"exists"`
	Date      *time.Time `json:"date,omitempty"`
	Municipio string     `json:"municipio,omitempty"`
	Vereda    string     `json:"vereda,omitempty"`
}

// Metrics - agregados derivados de una FilteredView. Función pura de su
// entrada, sin estado propio: una vista vacía produce métricas en cero,
// nunca un error.
type Metrics struct {
	TotalCases              int           `json:"total_casos"`
	Deceased                int           `json:"fallecidos"`
	Alive                   int           `json:"vivos"`
	FatalityRate            float64       `json:"letalidad"`
	TotalPositiveEpizootics int           `json:"epizootias_positivas"`
	Activity                int           `json:"actividad"`
	RiskLevel               RiskLevel     `json:"nivel_riesgo"`
	MunicipiosWithCases     int           `json:"municipios_con_casos"`
	LastCase                LastEventInfo `json:"ultimo_caso"`
	LastPositiveEpizootia   LastEventInfo `json:"ultima_epizootia_positiva"`
}

// ComputeMetrics - agregación sobre la vista filtrada. Las epizootias de
// la vista ya están restringidas a Positivo por el motor de filtrado.
func ComputeMetrics(view FilteredView, thresholds RiskThresholds) Metrics {
	m := Metrics{
		TotalCases:              len(view.Casos),
		TotalPositiveEpizootics: len(view.Epizootias),
	}

	municipios := make(map[string]struct{})
	for _, c := range view.Casos {
		switch c.Outcome {
		case OutcomeDeceased:
			m.Deceased++
		case OutcomeAlive:
			m.Alive++
		}
		if c.MunicipioNorm != "" {
			municipios[c.MunicipioNorm] = struct{}{}
		}
		if c.OnsetDate != nil && (m.LastCase.Date == nil || c.OnsetDate.After(*m.LastCase.Date)) {
			m.LastCase = LastEventInfo{
				Exists:    true,
				Date:      c.OnsetDate,
				Municipio: c.Municipio,
				Vereda:    c.Vereda,
			}
		}
	}
	m.MunicipiosWithCases = len(municipios)

	for _, e := range view.Epizootias {
		if e.CollectedAt != nil && (m.LastPositiveEpizootia.Date == nil || e.CollectedAt.After(*m.LastPositiveEpizootia.Date)) {
			m.LastPositiveEpizootia = LastEventInfo{
				Exists:    true,
				Date:      e.CollectedAt,
				Municipio: e.Municipio,
				Vereda:    e.Vereda,
			}
		}
	}

	// Letalidad definida como 0 sin casos: nunca NaN ni división por cero.
	if m.TotalCases > 0 {
		m.FatalityRate = float64(m.Deceased) / float64(m.TotalCases) * 100
	}

	m.Activity = m.TotalCases + m.TotalPositiveEpizootics
	m.RiskLevel = thresholds.ClassifyActivity(m.Activity)

	return m
}
