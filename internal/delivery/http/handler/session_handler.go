package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/errors"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/utils"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/validator"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase/dto"
)

// SessionHandler - manejador de las sesiones del dashboard: filtros,
// navegación e interacciones de mapa.
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

// NewSessionHandler - creación del SessionHandler.
func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Abrir una sesión del dashboard
// @Description Crea una sesión nueva en la vista departamental del Tolima, sin filtros aplicados
// @Tags Sessions
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	state, err := h.sessionUC.CreateSession(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: state})
}

// Get godoc
// @Summary Estado de la sesión
// @Description Devuelve el nivel de navegación, las migas de pan y el criterio de filtros vigentes
// @Tags Sessions
// @Produce json
// @Param id path string true "ID de la sesión"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.State(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// Data godoc
// @Summary Datos filtrados de la sesión
// @Description Devuelve los casos y las epizootias positivas que satisfacen el criterio vigente
// @Tags Sessions
// @Produce json
// @Param id path string true "ID de la sesión"
// @Success 200 {object} utils.SuccessResponse{data=dto.FilteredDataResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/data [get]
func (h *SessionHandler) Data(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := h.sessionUC.Data(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, data, &utils.Meta{
		Total: data.TotalCasos + data.TotalEpi,
	})
}

// Metrics godoc
// @Summary Métricas de la sesión
// @Description Métricas agregadas del conjunto filtrado: totales, letalidad, actividad y nivel de riesgo
// @Tags Sessions
// @Produce json
// @Param id path string true "ID de la sesión"
// @Success 200 {object} utils.SuccessResponse{data=domain.Metrics}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/metrics [get]
func (h *SessionHandler) Metrics(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	metrics, err := h.sessionUC.Metrics(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, metrics, nil)
}

// UpdateFilters godoc
// @Summary Cambiar los filtros de la sesión
// @Description Aplica un criterio nuevo desde el sidebar; la navegación del mapa se sincroniza con la ubicación del criterio. Un criterio inválido no altera el estado actual
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID de la sesión"
// @Param request body dto.UpdateFiltersRequest true "Criterio de filtros"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/filters [put]
func (h *SessionHandler) UpdateFilters(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateFiltersRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.UpdateFilters(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// Interact godoc
// @Summary Resolver una interacción de mapa
// @Description Un clic simple sobre una entidad devuelve sus atributos; un doble clic dentro de la ventana configurada desciende un nivel de navegación
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "ID de la sesión"
// @Param request body dto.InteractionRequest true "Evento de mapa"
// @Success 200 {object} utils.SuccessResponse{data=dto.InteractionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/interactions [post]
func (h *SessionHandler) Interact(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.InteractionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.sessionUC.Interact(c.Context(), id, req.ToDomain())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// DrillUp godoc
// @Summary Ascender un nivel de navegación
// @Description Vereda → municipio → departamento; en la vista departamental no tiene efecto
// @Tags Sessions
// @Produce json
// @Param id path string true "ID de la sesión"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/navigation/drill-up [post]
func (h *SessionHandler) DrillUp(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.DrillUp(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// ResetNavigation godoc
// @Summary Volver a la vista departamental
// @Description Restablece la navegación y limpia la dimensión de ubicación del criterio desde cualquier estado
// @Tags Sessions
// @Produce json
// @Param id path string true "ID de la sesión"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionState}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id}/navigation/reset [post]
func (h *SessionHandler) ResetNavigation(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.sessionUC.ResetNavigation(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, state, nil)
}

// Delete godoc
// @Summary Cerrar la sesión
// @Tags Sessions
// @Produce json
// @Param id path string true "ID de la sesión"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseSessionID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.sessionUC.DeleteSession(id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

func parseSessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"session_id": c.Params("id"),
		})
	}
	return id, nil
}
