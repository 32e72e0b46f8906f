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

type caseRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCaseRepository crea el repositorio de casos confirmados sobre la
// tabla `casos` que llena el pipeline de importación.
func NewCaseRepository(db *DB, logger *zap.Logger) repository.CaseRepository {
	return &caseRepository{db: db, logger: logger}
}

// casoRow - fila cruda de la tabla antes de normalizar.
type casoRow struct {
	ID             int64      `db:"id"`
	Municipio      *string    `db:"municipio"`
	Vereda         *string    `db:"vereda"`
	FechaInicio    *time.Time `db:"fecha_inicio_sintomas"`
	Edad           *int       `db:"edad"`
	Sexo           *string    `db:"sexo"`
	CondicionFinal *string    `db:"condicion_final"`
}

func (r *caseRepository) GetAll(ctx context.Context) ([]domain.CaseRecord, int, error) {
	query := `
		SELECT id, municipio, vereda, fecha_inicio_sintomas, edad, sexo, condicion_final
		FROM casos
		ORDER BY id
	`

	var rows []casoRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, 0, fmt.Errorf("select casos: %w", err)
	}

	records := make([]domain.CaseRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		municipioNorm := ""
		if row.Municipio != nil {
			municipioNorm = normalizer.Normalize(*row.Municipio)
		}
		// Un caso sin municipio no es ubicable en el mapa ni filtrable.
		if municipioNorm == "" {
			dropped++
			r.logger.Warn("Dropping caso without municipio", zap.Int64("id", row.ID))
			continue
		}

		rec := domain.CaseRecord{
			ID:            row.ID,
			MunicipioNorm: municipioNorm,
			OnsetDate:     row.FechaInicio,
			Age:           row.Edad,
		}
		rec.Municipio = derefOr(row.Municipio, municipioNorm)
		if row.Vereda != nil {
			rec.Vereda = *row.Vereda
			rec.VeredaNorm = normalizer.NormalizeVereda(*row.Vereda)
		}
		if row.Sexo != nil {
			rec.Sex = normalizeSex(*row.Sexo)
		}
		rec.Outcome = domain.ParseOutcome(derefOr(row.CondicionFinal, ""))

		records = append(records, rec)
	}

	r.logger.Info("Casos loaded",
		zap.Int("count", len(records)),
		zap.Int("dropped", dropped),
	)
	return records, dropped, nil
}

func normalizeSex(raw string) string {
	switch raw {
	case "M", "m", "Masculino", "MASCULINO":
		return "Masculino"
	case "F", "f", "Femenino", "FEMENINO":
		return "Femenino"
	default:
		return raw
	}
}

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
