package repository

import (
	"context"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
)

// CaseRepository define la lectura de casos humanos confirmados.
type CaseRepository interface {
	// GetAll devuelve todos los casos confirmados ya normalizados.
	// dropped cuenta filas del origen descartadas (sin municipio).
	GetAll(ctx context.Context) (records []domain.CaseRecord, dropped int, err error)
}

// EpizootiaRepository define la lectura de eventos epizoóticos.
type EpizootiaRepository interface {
	// GetAll devuelve todos los eventos notificados, de toda categoría;
	// la restricción a positivos es responsabilidad del dominio.
	// La categoría se valida aquí, en la frontera de carga: filas con
	// categoría desconocida se descartan y se cuentan en dropped.
	GetAll(ctx context.Context) (records []domain.EpizootiaRecord, dropped int, err error)
}

// GeographyRepository define la lectura de la geografía de referencia
// (hoja VEREDAS del origen: municipio, vereda, región).
type GeographyRepository interface {
	// GetAll devuelve la jerarquía municipio → veredas completa.
	GetAll(ctx context.Context) (*domain.Geography, error)
}
