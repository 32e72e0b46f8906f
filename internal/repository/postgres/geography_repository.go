package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain/repository"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/normalizer"
)

type geographyRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewGeographyRepository crea el repositorio de la geografía de
// referencia sobre la tabla `veredas` (municipio, vereda, región).
func NewGeographyRepository(db *DB, logger *zap.Logger) repository.GeographyRepository {
	return &geographyRepository{db: db, logger: logger}
}

type veredaRow struct {
	Municipio string  `db:"municipio"`
	Vereda    *string `db:"vereda"`
	Region    *string `db:"region"`
}

func (r *geographyRepository) GetAll(ctx context.Context) (*domain.Geography, error) {
	query := `
		SELECT municipio, vereda, region
		FROM veredas
		ORDER BY municipio, vereda
	`

	var rows []veredaRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select veredas: %w", err)
	}

	geo := domain.NewGeography()
	for _, row := range rows {
		municipioNorm := normalizer.Normalize(row.Municipio)
		if municipioNorm == "" {
			continue
		}
		region := ""
		if row.Region != nil {
			region = *row.Region
		}
		geo.AddMunicipio(municipioNorm, row.Municipio, region)
		if row.Vereda != nil {
			veredaNorm := normalizer.NormalizeVereda(*row.Vereda)
			geo.AddVereda(municipioNorm, veredaNorm, *row.Vereda)
		}
	}

	r.logger.Info("Reference geography loaded",
		zap.Int("municipios", geo.MunicipioCount()),
	)
	return geo, nil
}
