package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain/repository"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/worker"
)

// SnapshotRefreshWorker - escucha los avisos del pipeline de importación
// y recarga el snapshot en memoria. Tras una recarga exitosa invalida
// las métricas y la estadística cacheadas y publica el resultado en el
// stream de confirmación.
type SnapshotRefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	datasetUC    *usecase.DatasetUseCase
	consumerName string
}

// NewSnapshotRefreshWorker crea un SnapshotRefreshWorker.
func NewSnapshotRefreshWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	datasetUC *usecase.DatasetUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *SnapshotRefreshWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &SnapshotRefreshWorker{
		BaseWorker:   worker.NewBaseWorker("snapshot-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		datasetUC:    datasetUC,
		consumerName: consumerName,
	}
}

// Start arranca el ciclo de consumo.
func (w *SnapshotRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SnapshotRefreshWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSurveillanceRefresh, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamSurveillanceRefresh, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *SnapshotRefreshWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.RefreshEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse refresh event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// ACK del mensaje corrupto para que no se atasque en pendientes.
		_ = w.streamRepo.AckMessage(ctx, domain.StreamSurveillanceRefresh, w.ConsumerGroup(), msg.ID)
		return
	}

	logger.Info("Refresh event received",
		zap.String("source", event.Source),
		zap.Time("imported_at", event.ImportedAt))

	done := w.reload(ctx)

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamSurveillanceDone, done); err != nil {
		logger.Warn("Failed to publish refresh result", zap.Error(err))
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamSurveillanceRefresh, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Warn("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}

// reload recarga el snapshot e invalida lo derivado. Un fallo deja el
// snapshot anterior intacto; las sesiones siguen sirviendo datos viejos.
func (w *SnapshotRefreshWorker) reload(ctx context.Context) domain.RefreshDoneEvent {
	logger := w.Logger()

	snap, err := w.datasetUC.Load(ctx)
	if err != nil {
		logger.Error("Snapshot reload failed", zap.Error(err))
		return domain.RefreshDoneEvent{Error: err.Error()}
	}

	if err := w.cacheRepo.InvalidateDerived(ctx); err != nil {
		logger.Warn("Failed to invalidate derived cache", zap.Error(err))
	}

	logger.Info("Snapshot reloaded",
		zap.Int64("version", snap.Version),
		zap.Int("casos", len(snap.Casos)),
		zap.Int("epizootias", len(snap.Epizootias)))

	return domain.RefreshDoneEvent{
		SnapshotVersion: snap.Version,
		TotalCasos:      len(snap.Casos),
		TotalEpizootias: len(snap.Epizootias),
	}
}
