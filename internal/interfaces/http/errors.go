package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/employee-api/internal/application/dto"
	"github.com/jhoicas/employee-api/internal/application/validation"
	"github.com/jhoicas/employee-api/internal/domain"
	"github.com/jhoicas/employee-api/pkg/logger"
)

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Errors: verr.Fields})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el empleado fue creado concurrentemente, reintente"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	default:
		log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("subject", GetSubject(c)).
			Str("path", c.Path()).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}

// ErrorHandler handler de errores para fiber.Config; respeta *fiber.Error (404 de ruta, 405, body demasiado grande).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return c.Status(ferr.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: ferr.Message})
		}
		return writeError(c, log, err)
	}
}
