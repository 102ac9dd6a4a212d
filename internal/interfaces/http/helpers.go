package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/domain"
	"github.com/jhoicas/dealtrack-api/pkg/logger"
)

// pathID parsea el parámetro :id de la ruta como entero. Cualquier id no
// numérico se rechaza antes de tocar el modelo.
func pathID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// respondErr traduce errores de use case al contrato HTTP: validación → 400
// con su mensaje fijo, ErrNotFound → 404 con notFoundMsg, cualquier otro
// error de la capa de persistencia → 500 con failMsg genérico (el detalle
// queda solo en el log).
func respondErr(c *fiber.Ctx, log *logger.Logger, err error, notFoundMsg, failMsg string) error {
	if ve := dto.AsValidation(err); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: ve.Message})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: notFoundMsg})
	}
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("operación fallida")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: failMsg})
}
