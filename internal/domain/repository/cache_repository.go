package repository

import (
	"context"
	"time"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
)

// CacheRepository define el cache de agregados derivados.
type CacheRepository interface {
	// Get obtiene un valor por clave. Devuelve (nil, nil) si no existe.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set guarda un valor con TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete elimina una clave.
	Delete(ctx context.Context, key string) error

	// GetMetrics obtiene métricas cacheadas para una clave de criterio.
	GetMetrics(ctx context.Context, criteriaKey string) (*domain.Metrics, error)

	// SetMetrics guarda métricas para una clave de criterio.
	SetMetrics(ctx context.Context, criteriaKey string, m *domain.Metrics, ttl time.Duration) error

	// GetStats obtiene la estadística del snapshot cacheada.
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats guarda la estadística del snapshot.
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error

	// InvalidateDerived elimina métricas y estadística cacheadas;
	// se invoca al recargar el snapshot.
	InvalidateDerived(ctx context.Context) error
}
