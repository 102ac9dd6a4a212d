package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
)

// CreateAccountRequest cuerpo crudo de POST /accounts.
type CreateAccountRequest struct {
	Name           json.RawMessage `json:"name"`
	OrganizationID json.RawMessage `json:"organization_id"`
}

// CreateAccountCommand comando tipado ya validado.
type CreateAccountCommand struct {
	Name           string
	OrganizationID int64
}

// Command valida el cuerpo y lo convierte en comando tipado.
func (r CreateAccountRequest) Command() (*CreateAccountCommand, error) {
	name, ok := asString(r.Name)
	if !present(r.Name) || !ok || name == "" {
		return nil, NewValidationError("Account name is required")
	}
	orgID, ok := asInt(r.OrganizationID)
	if !present(r.OrganizationID) || !ok || orgID == 0 {
		return nil, NewValidationError("Organization ID is required and must be a number")
	}
	return &CreateAccountCommand{Name: name, OrganizationID: orgID}, nil
}

// UpdateAccountRequest cuerpo crudo de PUT /accounts/:id (update parcial:
// solo los campos presentes cambian).
type UpdateAccountRequest struct {
	Name           json.RawMessage `json:"name"`
	OrganizationID json.RawMessage `json:"organization_id"`
}

// UpdateAccountCommand comando tipado; nil = campo no suministrado.
type UpdateAccountCommand struct {
	Name           *string
	OrganizationID *int64
}

// Command valida el cuerpo. Exige al menos un campo presente.
func (r UpdateAccountRequest) Command() (*UpdateAccountCommand, error) {
	if !present(r.Name) && !present(r.OrganizationID) {
		return nil, NewValidationError("At least one field (name or organization_id) is required for update")
	}
	cmd := &UpdateAccountCommand{}
	if present(r.Name) {
		name, ok := asString(r.Name)
		if !ok {
			return nil, NewValidationError("Account name must be a string")
		}
		cmd.Name = &name
	}
	if present(r.OrganizationID) {
		orgID, ok := asInt(r.OrganizationID)
		if !ok {
			return nil, NewValidationError("Organization ID must be a number")
		}
		cmd.OrganizationID = &orgID
	}
	return cmd, nil
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	OrganizationID int64     `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AccountToResponse convierte la entidad en DTO de salida.
func AccountToResponse(a *entity.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		OrganizationID: a.OrganizationID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
