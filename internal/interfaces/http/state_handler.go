package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/application/usecase"
	"github.com/jhoicas/dealtrack-api/pkg/logger"
)

// StateHandler expone el estado persistido de la aplicación (la última
// organización seleccionada).
type StateHandler struct {
	uc  *usecase.AppStateUseCase
	log *logger.Logger
}

// NewStateHandler construye el handler inyectando el caso de uso.
func NewStateHandler(uc *usecase.AppStateUseCase, log *logger.Logger) *StateHandler {
	return &StateHandler{uc: uc, log: log}
}

// GetSelectedOrganization godoc
// @Summary      Leer la organización seleccionada persistida
// @Tags         state
// @Produce      json
// @Success      200  {object}  dto.SelectedOrganizationResponse
// @Router       /api/state/selected-organization [get]
func (h *StateHandler) GetSelectedOrganization(c *fiber.Ctx) error {
	out, err := h.uc.SelectedOrganization(c.Context())
	if err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to fetch selected organization")
	}
	return c.JSON(out)
}

// PutSelectedOrganization godoc
// @Summary      Persistir la organización seleccionada
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PutSelectedOrganizationRequest  true  "Organización a seleccionar"
// @Success      200   {object}  dto.SelectedOrganizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/state/selected-organization [put]
func (h *StateHandler) PutSelectedOrganization(c *fiber.Ctx) error {
	var in dto.PutSelectedOrganizationRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	id, err := in.Command()
	if err != nil {
		return respondErr(c, h.log, err, "", "")
	}
	out, err := h.uc.SetSelectedOrganization(c.Context(), id)
	if err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to save selected organization")
	}
	return c.JSON(out)
}

// ClearSelectedOrganization godoc
// @Summary      Limpiar la organización seleccionada persistida
// @Tags         state
// @Success      204
// @Router       /api/state/selected-organization [delete]
func (h *StateHandler) ClearSelectedOrganization(c *fiber.Ctx) error {
	if err := h.uc.ClearSelectedOrganization(c.Context()); err != nil {
		return respondErr(c, h.log, err, "Organization not found", "Failed to clear selected organization")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
