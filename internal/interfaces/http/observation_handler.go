package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/application/usecase"
)

// ObservationHandler edición de observaciones.
type ObservationHandler struct {
	uc *usecase.ObservationUseCase
}

// NewObservationHandler construye el handler.
func NewObservationHandler(uc *usecase.ObservationUseCase) *ObservationHandler {
	return &ObservationHandler{uc: uc}
}

// Post godoc
// @Summary      Guardar la observación de una línea
// @Tags         observaciones
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateObservationRequest  true  "DESPACHO + ITEM y texto"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/observaciones [post]
func (h *ObservationHandler) Post(c *fiber.Ctx) error {
	var in dto.UpdateObservationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "success"})
}
