package dto

import "github.com/MitxelSantos/dashboard-casos-fa/internal/domain"

// SessionState - estado visible de una sesión del dashboard: navegación
// actual, criterio activo y ruta para la UI.
type SessionState struct {
	SessionID   string                 `json:"session_id"`
	Level       domain.NavigationLevel `json:"level"`
	Municipio   string                 `json:"municipio,omitempty"`
	Vereda      string                 `json:"vereda,omitempty"`
	Breadcrumbs []string               `json:"breadcrumbs"`
	Criteria    domain.FilterCriteria  `json:"criteria"`
}

// FilteredDataResponse - filas filtradas que consume el renderizador.
type FilteredDataResponse struct {
	Casos      []domain.CaseRecord      `json:"casos"`
	Epizootias []domain.EpizootiaRecord `json:"epizootias"`
	TotalCasos int                      `json:"total_casos"`
	TotalEpi   int                      `json:"total_epizootias"`
}

// FeatureInfo - atributos de la entidad clicada, para el popup de un
// clic simple.
type FeatureInfo struct {
	Kind       domain.FeatureKind `json:"kind"`
	Name       string             `json:"name"`
	Casos      int                `json:"casos"`
	Epizootias int                `json:"epizootias_positivas"`
}

// InteractionResponse - resultado de resolver un evento de mapa.
type InteractionResponse struct {
	Intent  string       `json:"intent"`
	Info    *FeatureInfo `json:"info,omitempty"`
	Session SessionState `json:"session"`
}

// GeographyResponse - municipios y veredas para los widgets del sidebar.
type GeographyResponse struct {
	Municipios []MunicipioEntry `json:"municipios"`
}

// MunicipioEntry - un municipio con sus veredas, nombres de despliegue.
type MunicipioEntry struct {
	Name    string   `json:"name"`
	Norm    string   `json:"norm"`
	Region  string   `json:"region,omitempty"`
	Veredas []string `json:"veredas"`
}
