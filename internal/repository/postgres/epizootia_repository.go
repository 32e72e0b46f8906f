package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain/repository"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/normalizer"
)

type epizootiaRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewEpizootiaRepository crea el repositorio de eventos epizoóticos
// sobre la tabla `epizootias`.
func NewEpizootiaRepository(db *DB, logger *zap.Logger) repository.EpizootiaRepository {
	return &epizootiaRepository{db: db, logger: logger}
}

type epizootiaRow struct {
	ID          int64      `db:"id"`
	Municipio   *string    `db:"municipio"`
	Vereda      *string    `db:"vereda"`
	FechaRecol  *time.Time `db:"fecha_recoleccion"`
	Descripcion *string    `db:"descripcion"`
	Informante  *string    `db:"informante"`
}

func (r *epizootiaRepository) GetAll(ctx context.Context) ([]domain.EpizootiaRecord, int, error) {
	query := `
		SELECT id, municipio, vereda, fecha_recoleccion, descripcion, informante
		FROM epizootias
		ORDER BY id
	`

	var rows []epizootiaRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("select epizootias: %w", err)
	}

	records := make([]domain.EpizootiaRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		municipioNorm := ""
		if row.Municipio != nil {
			municipioNorm = normalizer.Normalize(*row.Municipio)
		}
		if municipioNorm == "" {
			dropped++
			r.logger.Warn("Dropping epizootia without municipio", zap.Int64("id", row.ID))
			continue
		}

		// La categoría se valida aquí, una sola vez; un texto fuera de
		// la enumeración cerrada descarta la fila.
		rawCat := ""
		if row.Descripcion != nil {
			rawCat = normalizer.Normalize(*row.Descripcion)
		}
		category, err := domain.ParseEpizootiaCategory(rawCat)
		if err != nil {
			dropped++
			r.logger.Warn("Dropping epizootia with unknown category",
				zap.Int64("id", row.ID),
				zap.String("descripcion", rawCat),
			)
			continue
		}

		rec := domain.EpizootiaRecord{
			ID:            row.ID,
			MunicipioNorm: municipioNorm,
			CollectedAt:   row.FechaRecol,
			Category:      category,
		}
		rec.Municipio = derefOr(row.Municipio, municipioNorm)
		if row.Vereda != nil {
			rec.Vereda = *row.Vereda
			rec.VeredaNorm = normalizer.NormalizeVereda(*row.Vereda)
		}
		if row.Informante != nil {
			rec.Informante = *row.Informante
		}

		records = append(records, rec)
	}

	r.logger.Info("Epizootias loaded",
		zap.Int("count", len(records)),
		zap.Int("dropped", dropped),
	)
	return records, dropped, nil
}
