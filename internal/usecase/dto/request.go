package dto

import (
	"time"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/errors"
)

// UpdateFiltersRequest - cambio de filtros desde los widgets del
// sidebar. Los nombres llegan como los muestra la UI; el usecase los
// normaliza. Fechas en formato YYYY-MM-DD.
type UpdateFiltersRequest struct {
	Municipio string `json:"municipio" validate:"omitempty,max=120"`
	Vereda    string `json:"vereda" validate:"omitempty,max=120"`
	DateFrom  string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Sexo      string `json:"sexo" validate:"omitempty,oneof=Masculino Femenino"`
	GrupoEdad string `json:"grupo_edad" validate:"omitempty,max=20"`
}

// ParseDates - convierte los extremos del rango; un extremo vacío queda
// abierto. El rango invertido se rechaza después, en el dominio.
func (r UpdateFiltersRequest) ParseDates() (from, to *time.Time, err error) {
	if r.DateFrom != "" {
		t, perr := time.Parse("2006-01-02", r.DateFrom)
		if perr != nil {
			return nil, nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"field": "date_from", "value": r.DateFrom,
			})
		}
		from = &t
	}
	if r.DateTo != "" {
		t, perr := time.Parse("2006-01-02", r.DateTo)
		if perr != nil {
			return nil, nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"field": "date_to", "value": r.DateTo,
			})
		}
		// El extremo superior es inclusivo a nivel de día.
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	return from, to, nil
}

// InteractionRequest - evento crudo de puntero del renderizador del mapa.
type InteractionRequest struct {
	// TimestampMs - momento del evento en milisegundos epoch, medido
	// por el cliente para que la ventana de doble clic no dependa de
	// la latencia de red.
	TimestampMs int64           `json:"timestamp_ms" validate:"required,gt=0"`
	Lat         float64         `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon         float64         `json:"lon" validate:"omitempty,min=-180,max=180"`
	Feature     *FeaturePayload `json:"feature" validate:"omitempty"`
}

// FeaturePayload - entidad bajo el puntero, si la hay.
type FeaturePayload struct {
	Kind string `json:"kind" validate:"required,oneof=municipio vereda"`
	Name string `json:"name" validate:"required,max=120"`
}

// ToDomain - traduce el request al evento de dominio.
func (r InteractionRequest) ToDomain() domain.MapEvent {
	ev := domain.MapEvent{
		Timestamp: time.UnixMilli(r.TimestampMs),
		Lat:       r.Lat,
		Lon:       r.Lon,
	}
	if r.Feature != nil {
		ev.Feature = &domain.MapFeature{
			Kind: domain.FeatureKind(r.Feature.Kind),
			Name: r.Feature.Name,
		}
	}
	return ev
}
