package domain

import "time"

// Nombres de streams (deben coincidir con el pipeline de importación
// que vuelca las hojas de cálculo a PostgreSQL).
const (
	StreamSurveillanceRefresh = "stream:surveillance:refresh"
	StreamSurveillanceDone    = "stream:surveillance:done"
)

// RefreshEvent - señal de que el pipeline reimportó los datos fuente y
// el snapshot en memoria debe recargarse.
type RefreshEvent struct {
	Source     string    `json:"source"`
	ImportedAt time.Time `json:"imported_at"`
}

// RefreshDoneEvent - resultado de una recarga de snapshot.
type RefreshDoneEvent struct {
	SnapshotVersion int64  `json:"snapshot_version"`
	TotalCasos      int    `json:"total_casos"`
	TotalEpizootias int    `json:"total_epizootias"`
	Error           string `json:"error,omitempty"`
}

// StreamMessage - mensaje crudo de un Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
