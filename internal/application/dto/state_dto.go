package dto

import "encoding/json"

// SelectedOrganizationResponse estado persistido de la última organización
// seleccionada; nil cuando no hay selección.
type SelectedOrganizationResponse struct {
	OrganizationID *int64 `json:"organization_id"`
}

// PutSelectedOrganizationRequest cuerpo crudo de PUT /state/selected-organization.
type PutSelectedOrganizationRequest struct {
	OrganizationID json.RawMessage `json:"organization_id"`
}

// Command valida el cuerpo y devuelve el id seleccionado.
func (r PutSelectedOrganizationRequest) Command() (int64, error) {
	orgID, ok := asInt(r.OrganizationID)
	if !present(r.OrganizationID) || !ok || orgID == 0 {
		return 0, NewValidationError("Organization ID is required and must be a number")
	}
	return orgID, nil
}
