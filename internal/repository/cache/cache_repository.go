package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain/repository"
)

// Prefijo común de todo agregado derivado; InvalidateDerived barre
// exactamente este espacio de claves.
const derivedPrefix = "dashboard:derived:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetMetrics(ctx context.Context, criteriaKey string) (*domain.Metrics, error) {
	data, err := r.Get(ctx, derivedPrefix+"metrics:"+criteriaKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var m domain.Metrics
	if err := json.Unmarshal(data, &m); err != nil {
		r.logger.Error("Failed to unmarshal metrics from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal metrics: %w", err)
	}
	return &m, nil
}

func (r *cacheRepository) SetMetrics(ctx context.Context, criteriaKey string, m *domain.Metrics, ttl time.Duration) error {
	data, err := json.Marshal(m)
	if err != nil {
		r.logger.Error("Failed to marshal metrics", zap.Error(err))
		return fmt.Errorf("marshal metrics: %w", err)
	}
	return r.Set(ctx, derivedPrefix+"metrics:"+criteriaKey, data, ttl)
}

func (r *cacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	data, err := r.Get(ctx, derivedPrefix+"stats")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.Statistics
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	return &stats, nil
}

func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}
	return r.Set(ctx, derivedPrefix+"stats", data, ttl)
}

// InvalidateDerived elimina todo agregado derivado del snapshot
// anterior. Se invoca tras cada recarga de datos.
func (r *cacheRepository) InvalidateDerived(ctx context.Context) error {
	var cursor uint64
	deleted := 0
	for {
		keys, next, err := r.client.Scan(ctx, cursor, derivedPrefix+"*", 100).Result()
		if err != nil {
			r.logger.Error("Failed to scan derived cache keys", zap.Error(err))
			return fmt.Errorf("cache scan error: %w", err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				r.logger.Error("Failed to delete derived cache keys", zap.Error(err))
				return fmt.Errorf("cache delete error: %w", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	r.logger.Info("Derived cache invalidated", zap.Int("keys", deleted))
	return nil
}
