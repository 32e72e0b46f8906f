package domain

import "time"

// FeatureKind - tipo de entidad geográfica bajo el puntero en el mapa.
type FeatureKind string

const (
	FeatureMunicipio FeatureKind = "municipio"
	FeatureVereda    FeatureKind = "vereda"
)

// MapFeature - entidad del mapa bajo el puntero al momento del evento.
type MapFeature struct {
	Kind FeatureKind `json:"kind"`
	Name string      `json:"name"`
}

// MapEvent - evento crudo de puntero entregado por el renderizador del
// mapa. Feature es nil cuando el clic cae fuera de toda entidad.
type MapEvent struct {
	Timestamp time.Time   `json:"timestamp"`
	Lat       float64     `json:"lat"`
	Lon       float64     `json:"lon"`
	Feature   *MapFeature `json:"feature,omitempty"`
}
