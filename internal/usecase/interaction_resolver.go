package usecase

import (
	"time"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
)

// IntentType - intención lógica derivada de los eventos de puntero.
type IntentType string

const (
	// IntentNone - el evento no produce acción (clic fuera de entidades,
	// o entidad no alcanzable desde el nivel actual).
	IntentNone IntentType = "none"
	// IntentShowInfo - primer clic: mostrar atributos sin mutar estado.
	IntentShowInfo IntentType = "show_info"
	// IntentDrillDown - doble clic dentro de la ventana: descender.
	IntentDrillDown IntentType = "drill_down"
)

// Intent - resultado de resolver un evento de mapa.
type Intent struct {
	Type    IntentType         `json:"type"`
	Feature *domain.MapFeature `json:"feature,omitempty"`
}

// pendingTap - primer clic a la espera de su posible pareja.
type pendingTap struct {
	at      time.Time
	feature domain.MapFeature
}

// InteractionResolver traduce eventos crudos de puntero en intenciones.
// Un clic aislado muestra información; dos clics sobre la misma entidad
// dentro de la ventana son drill-down. El clic pendiente se consume al
// resolver un drill-down, de modo que un triple clic nunca dispara dos
// descensos. Sin estado entre resoluciones salvo el clic pendiente,
// uno por sesión; la serialización la aporta el mutex de la sesión.
type InteractionResolver struct {
	window  time.Duration
	pending *pendingTap
}

// NewInteractionResolver - resolver con la ventana de doble clic dada.
func NewInteractionResolver(window time.Duration) *InteractionResolver {
	return &InteractionResolver{window: window}
}

// drillable - true si una entidad de esta clase es alcanzable
// descendiendo desde el nivel actual.
func drillable(level domain.NavigationLevel, kind domain.FeatureKind) bool {
	switch level {
	case domain.LevelDepartment:
		return kind == domain.FeatureMunicipio
	case domain.LevelMunicipality:
		return kind == domain.FeatureVereda
	default:
		return false
	}
}

// Resolve - decide la intención del evento dado el nivel actual.
func (r *InteractionResolver) Resolve(level domain.NavigationLevel, event domain.MapEvent) Intent {
	if event.Feature == nil {
		r.pending = nil
		return Intent{Type: IntentNone}
	}

	feature := *event.Feature

	if r.pending != nil &&
		r.pending.feature == feature &&
		!event.Timestamp.Before(r.pending.at) &&
		event.Timestamp.Sub(r.pending.at) <= r.window {

		// Segundo clic dentro de la ventana: se consume el pendiente.
		r.pending = nil
		if drillable(level, feature.Kind) {
			return Intent{Type: IntentDrillDown, Feature: &feature}
		}
		return Intent{Type: IntentShowInfo, Feature: &feature}
	}

	// Primer clic (o clic sobre otra entidad, o fuera de ventana):
	// arranca un ciclo nuevo.
	r.pending = &pendingTap{at: event.Timestamp, feature: feature}
	return Intent{Type: IntentShowInfo, Feature: &feature}
}
