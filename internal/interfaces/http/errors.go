package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Importaciones-api/internal/application/dto"
	"github.com/jhoicas/Importaciones-api/internal/domain"
)

// writeError traduce errores de dominio a respuestas HTTP con dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoMatches):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_MATCHES", Message: domain.ErrNoMatches.Error()})
	case errors.Is(err, domain.ErrNoData):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_DATA", Message: domain.ErrNoData.Error()})
	case errors.Is(err, domain.ErrMissingColumns):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COLUMNS", Message: unwrapMessage(err, domain.ErrMissingColumns)})
	case errors.Is(err, domain.ErrUnsupportedFile):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FILE", Message: "formato de archivo no soportado (xlsx o csv)"})
	case errors.Is(err, domain.ErrEmptyFile):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_FILE", Message: domain.ErrEmptyFile.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: unwrapMessage(err, domain.ErrInvalidInput)})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// unwrapMessage devuelve el mensaje desde el sentinel en adelante, sin los
// prefijos de contexto que agregan las capas internas.
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return msg
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
