package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/application/usecase"
	"github.com/jhoicas/dealtrack-api/pkg/logger"
)

// OrganizationHandler maneja las peticiones HTTP para el recurso Organization.
type OrganizationHandler struct {
	uc  *usecase.OrganizationUseCase
	log *logger.Logger
}

// NewOrganizationHandler construye el handler inyectando el caso de uso.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase, log *logger.Logger) *OrganizationHandler {
	return &OrganizationHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar organizaciones
// @Tags         organizations
// @Produce      json
// @Success      200  {array}  dto.OrganizationResponse
// @Router       /api/organizations [get]
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to fetch organizations")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener organización por ID
// @Tags         organizations
// @Produce      json
// @Param        id   path  int  true  "ID de la organización"
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/{id} [get]
func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid organization ID"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to fetch organization")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Organization not found"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear organización
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizationRequest  true  "Datos de la organización"
// @Success      201   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/organizations [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizationRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	cmd, err := in.Command()
	if err != nil {
		return respondErr(c, h.log, err, "", "")
	}
	out, err := h.uc.Create(c.Context(), *cmd)
	if err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to create organization")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar organización
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la organización"
// @Param        body  body  dto.UpdateOrganizationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/organizations/{id} [put]
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid organization ID"})
	}
	var in dto.UpdateOrganizationRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	cmd, err := in.Command()
	if err != nil {
		return respondErr(c, h.log, err, "", "")
	}
	out, err := h.uc.Update(c.Context(), id, *cmd)
	if err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to update organization")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar organización (en cascada: cuentas y negocios)
// @Tags         organizations
// @Param        id  path  int  true  "ID de la organización"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid organization ID"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to delete organization")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
