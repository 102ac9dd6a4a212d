package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
)

// CreateOrganizationRequest cuerpo crudo de POST /organizations. Los campos
// se mantienen como RawMessage para distinguir ausente, mal tipado y válido.
type CreateOrganizationRequest struct {
	Name json.RawMessage `json:"name"`
}

// CreateOrganizationCommand comando tipado ya validado.
type CreateOrganizationCommand struct {
	Name string
}

// Command valida el cuerpo y lo convierte en comando tipado.
func (r CreateOrganizationRequest) Command() (*CreateOrganizationCommand, error) {
	name, ok := asString(r.Name)
	if !present(r.Name) || !ok || name == "" {
		return nil, NewValidationError("Organization name is required")
	}
	return &CreateOrganizationCommand{Name: name}, nil
}

// UpdateOrganizationRequest cuerpo crudo de PUT /organizations/:id.
type UpdateOrganizationRequest struct {
	Name json.RawMessage `json:"name"`
}

// UpdateOrganizationCommand comando tipado ya validado.
type UpdateOrganizationCommand struct {
	Name string
}

// Command valida el cuerpo. El nombre es obligatorio también en update.
func (r UpdateOrganizationRequest) Command() (*UpdateOrganizationCommand, error) {
	name, ok := asString(r.Name)
	if !present(r.Name) || !ok || name == "" {
		return nil, NewValidationError("Organization name is required for update")
	}
	return &UpdateOrganizationCommand{Name: name}, nil
}

// OrganizationResponse salida de una organización.
type OrganizationResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationToResponse convierte la entidad en DTO de salida.
func OrganizationToResponse(o *entity.Organization) *OrganizationResponse {
	if o == nil {
		return nil
	}
	return &OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
