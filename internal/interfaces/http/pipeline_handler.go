package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealtrack-api/internal/application/analytics"
	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/domain/pipeline"
	"github.com/jhoicas/dealtrack-api/pkg/logger"
)

// PipelineHandler expone el resumen y el tablero del pipeline (motor de
// filtrado y agregación).
type PipelineHandler struct {
	uc  *analytics.PipelineUseCase
	log *logger.Logger
}

// NewPipelineHandler construye el handler inyectando el caso de uso.
func NewPipelineHandler(uc *analytics.PipelineUseCase, log *logger.Logger) *PipelineHandler {
	return &PipelineHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Resumen por etapa del alcance de organización
// @Tags         pipeline
// @Produce      json
// @Param        organization_id  query  int  false  "Organización seleccionada (sin ella todo se reporta en cero)"
// @Success      200  {object}  dto.PipelineSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/deals/summary [get]
func (h *PipelineHandler) Summary(c *fiber.Ctx) error {
	orgID, ok := queryOrganizationID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid organization ID"})
	}
	out, err := h.uc.Summary(c.Context(), orgID)
	if err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to fetch deals")
	}
	return c.JSON(out)
}

// Board godoc
// @Summary      Tablero de negocios visibles (filtros de etapa y año)
// @Tags         pipeline
// @Produce      json
// @Param        organization_id  query  int     false  "Organización seleccionada"
// @Param        status           query  string  false  "Etapa o 'all'"
// @Param        year             query  string  false  "Año de creación o 'all'"
// @Success      200  {object}  dto.PipelineBoardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/deals/board [get]
func (h *PipelineHandler) Board(c *fiber.Ctx) error {
	orgID, ok := queryOrganizationID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid organization ID"})
	}
	var f analytics.Filter
	if raw := c.Query("status"); raw != "" && raw != "all" {
		stage, err := pipeline.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Deal status must be one of: " + pipeline.Joined()})
		}
		f.Stage = &stage
	}
	if raw := c.Query("year"); raw != "" && raw != "all" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Year filter must be a number or 'all'"})
		}
		f.Year = &year
	}
	out, err := h.uc.Board(c.Context(), orgID, f)
	if err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to fetch deals")
	}
	return c.JSON(out)
}

// queryOrganizationID parsea el query param organization_id. Ausente o vacío
// significa "sin selección" (nil): la compuerta dura del motor.
func queryOrganizationID(c *fiber.Ctx) (*int64, bool) {
	raw := c.Query("organization_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}
