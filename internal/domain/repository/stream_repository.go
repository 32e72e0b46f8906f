package repository

import (
	"context"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
)

// StreamRepository - interfaz para Redis Streams, canal de aviso entre
// el pipeline de importación y el worker de recarga.
type StreamRepository interface {
	// ConsumeStream lee mensajes del stream con consumer group.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage confirma el procesamiento de un mensaje.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup crea el consumer group si no existe.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream publica un mensaje en el stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
