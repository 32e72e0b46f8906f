package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain/repository"
)

// DatasetUseCase mantiene el snapshot inmutable de los datos fuente en
// memoria. El núcleo de filtrado lee siempre el snapshot vigente; la
// base de datos sólo se toca en Load/Refresh. El intercambio de
// snapshot es atómico: ningún lector observa una carga a medias.
type DatasetUseCase struct {
	caseRepo      repository.CaseRepository
	epizootiaRepo repository.EpizootiaRepository
	geographyRepo repository.GeographyRepository
	logger        *zap.Logger

	snapshot atomic.Pointer[domain.DatasetSnapshot]
	version  atomic.Int64
}

// NewDatasetUseCase - creación del DatasetUseCase.
func NewDatasetUseCase(
	caseRepo repository.CaseRepository,
	epizootiaRepo repository.EpizootiaRepository,
	geographyRepo repository.GeographyRepository,
	logger *zap.Logger,
) *DatasetUseCase {
	return &DatasetUseCase{
		caseRepo:      caseRepo,
		epizootiaRepo: epizootiaRepo,
		geographyRepo: geographyRepo,
		logger:        logger,
	}
}

// Load carga (o recarga) los tres conjuntos y publica un snapshot
// nuevo. La geografía de referencia se completa con los municipios y
// veredas observados en los datos, como hace el origen.
func (uc *DatasetUseCase) Load(ctx context.Context) (*domain.DatasetSnapshot, error) {
	geo, err := uc.geographyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load geography: %w", err)
	}

	casos, droppedCasos, err := uc.caseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load casos: %w", err)
	}

	epizootias, droppedEpi, err := uc.epizootiaRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load epizootias: %w", err)
	}

	// Municipios/veredas presentes en los datos pero ausentes de la
	// hoja de referencia siguen siendo navegables.
	for _, c := range casos {
		geo.AddMunicipio(c.MunicipioNorm, c.Municipio, "")
		if c.VeredaNorm != "" {
			geo.AddVereda(c.MunicipioNorm, c.VeredaNorm, c.Vereda)
		}
	}
	for _, e := range epizootias {
		geo.AddMunicipio(e.MunicipioNorm, e.Municipio, "")
		if e.VeredaNorm != "" {
			geo.AddVereda(e.MunicipioNorm, e.VeredaNorm, e.Vereda)
		}
	}

	snap := &domain.DatasetSnapshot{
		Version:           uc.version.Add(1),
		LoadedAt:          time.Now(),
		Casos:             casos,
		Epizootias:        epizootias,
		Geography:         geo,
		DroppedCasos:      droppedCasos,
		DroppedEpizootias: droppedEpi,
	}
	uc.snapshot.Store(snap)

	uc.logger.Info("Dataset snapshot loaded",
		zap.Int64("version", snap.Version),
		zap.Int("casos", len(casos)),
		zap.Int("epizootias", len(epizootias)),
		zap.Int("municipios", geo.MunicipioCount()),
	)
	return snap, nil
}

// Snapshot devuelve el snapshot vigente, o nil si aún no hay carga.
func (uc *DatasetUseCase) Snapshot() *domain.DatasetSnapshot {
	return uc.snapshot.Load()
}
