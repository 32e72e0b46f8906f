package domain

import "time"

// DatasetSnapshot - versión inmutable de los datos fuente en memoria.
// El núcleo de filtrado opera siempre sobre un snapshot: la carga desde
// la base es un colaborador externo y nunca ocurre dentro de un filtro.
type DatasetSnapshot struct {
	Version    int64
	LoadedAt   time.Time
	Casos      []CaseRecord
	Epizootias []EpizootiaRecord
	Geography  *Geography

	// Registros del origen descartados en la carga (categoría
	// desconocida, municipio ausente). Se reportan en /stats.
	DroppedCasos      int
	DroppedEpizootias int
}

// Statistics - estadística agregada del snapshot para /stats.
type Statistics struct {
	SnapshotVersion   int64                     `json:"snapshot_version"`
	LoadedAt          time.Time                 `json:"loaded_at"`
	TotalCasos        int                       `json:"total_casos"`
	TotalEpizootias   int                       `json:"total_epizootias"`
	EpizootiasByCat   map[EpizootiaCategory]int `json:"epizootias_por_categoria"`
	Municipios        int                       `json:"municipios"`
	DroppedCasos      int                       `json:"casos_descartados"`
	DroppedEpizootias int                       `json:"epizootias_descartadas"`
}

// Stats - deriva la estadística del snapshot.
func (s *DatasetSnapshot) Stats() *Statistics {
	byCat := make(map[EpizootiaCategory]int)
	for _, e := range s.Epizootias {
		byCat[e.Category]++
	}
	municipios := 0
	if s.Geography != nil {
		municipios = s.Geography.MunicipioCount()
	}
	return &Statistics{
		SnapshotVersion:   s.Version,
		LoadedAt:          s.LoadedAt,
		TotalCasos:        len(s.Casos),
		TotalEpizootias:   len(s.Epizootias),
		EpizootiasByCat:   byCat,
		Municipios:        municipios,
		DroppedCasos:      s.DroppedCasos,
		DroppedEpizootias: s.DroppedEpizootias,
	}
}
