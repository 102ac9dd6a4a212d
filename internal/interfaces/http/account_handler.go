package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/application/usecase"
	"github.com/jhoicas/dealtrack-api/pkg/logger"
)

// AccountHandler maneja las peticiones HTTP para el recurso Account.
type AccountHandler struct {
	uc  *usecase.AccountUseCase
	log *logger.Logger
}

// NewAccountHandler construye el handler inyectando el caso de uso.
func NewAccountHandler(uc *usecase.AccountUseCase, log *logger.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondErr(c, h.log, err, "Account not found", "Failed to fetch accounts")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cuenta por ID
// @Tags         accounts
// @Produce      json
// @Param        id   path  int  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid account ID"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondErr(c, h.log, err, "Account not found", "Failed to fetch account")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Account not found"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	cmd, err := in.Command()
	if err != nil {
		return respondErr(c, h.log, err, "", "")
	}
	out, err := h.uc.Create(c.Context(), *cmd)
	if err != nil {
		return respondErr(c, h.log, err, "Account not found", "Failed to create account")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cuenta (parcial)
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateAccountRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid account ID"})
	}
	var in dto.UpdateAccountRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	cmd, err := in.Command()
	if err != nil {
		return respondErr(c, h.log, err, "", "")
	}
	out, err := h.uc.Update(c.Context(), id, *cmd)
	if err != nil {
		return respondErr(c, h.log, err, "Account not found", "Failed to update account")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuenta
// @Tags         accounts
// @Param        id  path  int  true  "ID de la cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid account ID"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondErr(c, h.log, err, "Account not found", "Failed to delete account")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
