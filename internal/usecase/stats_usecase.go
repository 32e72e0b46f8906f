package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain/repository"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/errors"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase/dto"
)

// StatsUseCase expone la estadística global del snapshot y la
// referencia geográfica para los widgets del sidebar.
type StatsUseCase struct {
	datasets  *DatasetUseCase
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	statsTTL  time.Duration
}

func NewStatsUseCase(
	datasets *DatasetUseCase,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	statsTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		datasets:  datasets,
		cacheRepo: cacheRepo,
		logger:    logger,
		statsTTL:  statsTTL,
	}
}

// Stats - estadística del dataset vigente. Primero el cache; los fallos
// de Redis no interrumpen, se deriva del snapshot en memoria.
func (uc *StatsUseCase) Stats(ctx context.Context) (*domain.Statistics, error) {
	if cached, err := uc.cacheRepo.GetStats(ctx); err == nil && cached != nil {
		if snap := uc.datasets.Snapshot(); snap != nil && cached.SnapshotVersion == snap.Version {
			return cached, nil
		}
	} else if err != nil {
		uc.logger.Warn("Stats cache read failed", zap.Error(err))
	}

	snap := uc.datasets.Snapshot()
	if snap == nil {
		return nil, errors.ErrInternalServer.WithDetails(map[string]interface{}{
			"reason": "dataset not loaded yet",
		})
	}

	stats := snap.Stats()
	if err := uc.cacheRepo.SetStats(ctx, stats, uc.statsTTL); err != nil {
		uc.logger.Warn("Stats cache write failed", zap.Error(err))
	}
	return stats, nil
}

// Geography - municipios y veredas con sus nombres de despliegue.
func (uc *StatsUseCase) Geography(ctx context.Context) (*dto.GeographyResponse, error) {
	snap := uc.datasets.Snapshot()
	if snap == nil {
		return nil, errors.ErrInternalServer.WithDetails(map[string]interface{}{
			"reason": "dataset not loaded yet",
		})
	}

	geo := snap.Geography
	resp := &dto.GeographyResponse{Municipios: make([]dto.MunicipioEntry, 0, geo.MunicipioCount())}
	for _, norm := range geo.Municipios() {
		veredas := geo.VeredasOf(norm)
		names := make([]string, 0, len(veredas))
		for _, v := range veredas {
			names = append(names, geo.VeredaDisplayName(norm, v))
		}
		resp.Municipios = append(resp.Municipios, dto.MunicipioEntry{
			Name:    geo.DisplayName(norm),
			Norm:    norm,
			Region:  geo.RegionOf(norm),
			Veredas: names,
		})
	}
	return resp, nil
}
