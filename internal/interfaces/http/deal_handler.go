package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/application/usecase"
	"github.com/jhoicas/dealtrack-api/pkg/logger"
)

// DealHandler maneja las peticiones HTTP para el recurso Deal, incluidos los
// pasos adelante/atrás por el pipeline.
type DealHandler struct {
	uc  *usecase.DealUseCase
	log *logger.Logger
}

// NewDealHandler construye el handler inyectando el caso de uso.
func NewDealHandler(uc *usecase.DealUseCase, log *logger.Logger) *DealHandler {
	return &DealHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar negocios
// @Tags         deals
// @Produce      json
// @Success      200  {array}  dto.DealResponse
// @Router       /api/deals [get]
func (h *DealHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondErr(c, h.log, err, "Deal not found", "Failed to fetch deals")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener negocio por ID
// @Tags         deals
// @Produce      json
// @Param        id   path  int  true  "ID del negocio"
// @Success      200  {object}  dto.DealResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deals/{id} [get]
func (h *DealHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid deal ID"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, h.log, err, "Deal not found", "Failed to fetch deal")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Deal not found"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear negocio
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDealRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.DealResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/deals [post]
func (h *DealHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDealRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	cmd, err := in.Command()
	if err != nil {
		return respondErr(c, h.log, err, "", "")
	}
	out, err := h.uc.Create(c.Context(), *cmd)
	if err != nil {
		return respondErr(c, h.log, err, "Deal not found", "Failed to create deal")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar negocio (parcial)
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del negocio"
// @Param        body  body  dto.UpdateDealRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DealResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/deals/{id} [put]
func (h *DealHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid deal ID"})
	}
	var in dto.UpdateDealRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	cmd, err := in.Command()
	if err != nil {
		return respondErr(c, h.log, err, "", "")
	}
	out, err := h.uc.Update(c.Context(), id, *cmd)
	if err != nil {
		return respondErr(c, h.log, err, "Deal not found", "Failed to update deal")
	}
	return c.JSON(out)
}

// Advance godoc
// @Summary      Avanzar el negocio a la siguiente etapa del pipeline
// @Tags         deals
// @Produce      json
// @Param        id   path  int  true  "ID del negocio"
// @Success      200  {object}  dto.DealResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deals/{id}/advance [post]
func (h *DealHandler) Advance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid deal ID"})
	}
	out, err := h.uc.Advance(c.Context(), id)
	if err != nil {
		return respondErr(c, h.log, err, "Deal not found", "Failed to update deal")
	}
	return c.JSON(out)
}

// Revert godoc
// @Summary      Regresar el negocio a la etapa anterior del pipeline
// @Tags         deals
// @Produce      json
// @Param        id   path  int  true  "ID del negocio"
// @Success      200  {object}  dto.DealResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deals/{id}/revert [post]
func (h *DealHandler) Revert(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid deal ID"})
	}
	out, err := h.uc.Revert(c.Context(), id)
	if err != nil {
		return respondErr(c, h.log, err, "Deal not found", "Failed to update deal")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar negocio
// @Tags         deals
// @Param        id  path  int  true  "ID del negocio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deals/{id} [delete]
func (h *DealHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid deal ID"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondErr(c, h.log, err, "Deal not found", "Failed to delete deal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
