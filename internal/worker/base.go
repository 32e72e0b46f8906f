package worker

import (
	"sync"

	"go.uber.org/zap"
)

// BaseWorker - lógica compartida por todos los workers: nombre, señal
// de parada idempotente y consumer group.
type BaseWorker struct {
	name          string
	logger        *zap.Logger
	stopChan      chan struct{}
	stopped       bool
	mu            sync.Mutex
	consumerGroup string
}

// NewBaseWorker crea un BaseWorker.
func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:          name,
		logger:        logger,
		stopChan:      make(chan struct{}),
		consumerGroup: consumerGroup,
	}
}

// Name devuelve el nombre del worker.
func (w *BaseWorker) Name() string {
	return w.name
}

// Stop detiene el worker. Llamadas repetidas no tienen efecto.
func (w *BaseWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}

	w.logger.Info("Stopping worker", zap.String("name", w.name))
	close(w.stopChan)
	w.stopped = true

	return nil
}

// IsStopped indica si el worker ya fue detenido.
func (w *BaseWorker) IsStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// StopChan devuelve el canal de parada.
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

// ConsumerGroup devuelve el nombre del consumer group.
func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

// Logger devuelve el logger.
func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}
