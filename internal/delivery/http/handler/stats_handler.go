package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/utils"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase"
)

// StatsHandler atiende la estadística global y la referencia geográfica.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler crea un StatsHandler.
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Estadística del dataset
// @Description Totales de casos y epizootias del snapshot vigente, epizootias por categoría y filas descartadas en la carga
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	h.logger.Debug("Handling get statistics request")

	stats, err := h.statsUC.Stats(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// GetGeography godoc
// @Summary Referencia geográfica
// @Description Municipios del Tolima con sus veredas, para poblar los widgets del sidebar
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.GeographyResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/geography [get]
func (h *StatsHandler) GetGeography(c *fiber.Ctx) error {
	geo, err := h.statsUC.Geography(c.Context())
	if err != nil {
		h.logger.Error("Failed to get geography", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, geo, &utils.Meta{
		Total: len(geo.Municipios),
	})
}
