package worker

import (
	"context"
)

// Worker - interfaz común de los workers del servicio.
type Worker interface {
	// Start arranca el worker y bloquea hasta detenerlo.
	Start(ctx context.Context) error

	// Stop señala la detención.
	Stop() error

	// Name devuelve el nombre del worker.
	Name() string
}
