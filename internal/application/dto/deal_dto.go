package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/pipeline"
)

// CreateDealRequest cuerpo crudo de POST /deals.
type CreateDealRequest struct {
	AccountID      json.RawMessage `json:"account_id"`
	Value          json.RawMessage `json:"value"`
	Status         json.RawMessage `json:"status"`
	YearOfCreation json.RawMessage `json:"year_of_creation"`
}

// CreateDealCommand comando tipado ya validado. YearOfCreation nil = no
// suministrado (el use case aplica el año actual).
type CreateDealCommand struct {
	AccountID      int64
	Value          decimal.Decimal
	Status         pipeline.Stage
	YearOfCreation *int
}

// Command valida el cuerpo y lo convierte en comando tipado.
func (r CreateDealRequest) Command() (*CreateDealCommand, error) {
	accountID, ok := asInt(r.AccountID)
	if !present(r.AccountID) || !ok || accountID == 0 {
		return nil, NewValidationError("Account ID is required and must be a number")
	}
	value, ok := asDecimal(r.Value)
	if !present(r.Value) || !ok || value.IsZero() {
		return nil, NewValidationError("Deal value is required and must be a number")
	}
	if value.IsNegative() {
		return nil, NewValidationError("Deal value must be non-negative")
	}
	status, ok := asString(r.Status)
	if !present(r.Status) || !ok || !pipeline.Valid(pipeline.Stage(status)) {
		return nil, NewValidationError("Deal status is required and must be one of: " + pipeline.Joined())
	}
	cmd := &CreateDealCommand{
		AccountID: accountID,
		Value:     value,
		Status:    pipeline.Stage(status),
	}
	if present(r.YearOfCreation) {
		year, ok := asInt(r.YearOfCreation)
		if !ok {
			return nil, NewValidationError("Year of creation must be a number")
		}
		y := int(year)
		cmd.YearOfCreation = &y
	}
	return cmd, nil
}

// UpdateDealRequest cuerpo crudo de PUT /deals/:id (update parcial).
type UpdateDealRequest struct {
	AccountID json.RawMessage `json:"account_id"`
	Value     json.RawMessage `json:"value"`
	Status    json.RawMessage `json:"status"`
}

// UpdateDealCommand comando tipado; nil = campo no suministrado.
type UpdateDealCommand struct {
	AccountID *int64
	Value     *decimal.Decimal
	Status    *pipeline.Stage
}

// Command valida el cuerpo. Exige al menos un campo presente; cada campo
// presente se verifica de forma individual.
func (r UpdateDealRequest) Command() (*UpdateDealCommand, error) {
	if !present(r.AccountID) && !present(r.Value) && !present(r.Status) {
		return nil, NewValidationError("At least one field (account_id, value, or status) is required for update")
	}
	cmd := &UpdateDealCommand{}
	if present(r.AccountID) {
		accountID, ok := asInt(r.AccountID)
		if !ok {
			return nil, NewValidationError("Account ID must be a number")
		}
		cmd.AccountID = &accountID
	}
	if present(r.Value) {
		value, ok := asDecimal(r.Value)
		if !ok {
			return nil, NewValidationError("Deal value must be a number")
		}
		if value.IsNegative() {
			return nil, NewValidationError("Deal value must be non-negative")
		}
		cmd.Value = &value
	}
	if present(r.Status) {
		status, ok := asString(r.Status)
		if !ok || !pipeline.Valid(pipeline.Stage(status)) {
			return nil, NewValidationError("Deal status must be one of: " + pipeline.Joined())
		}
		st := pipeline.Stage(status)
		cmd.Status = &st
	}
	return cmd, nil
}

// DealResponse salida de un negocio.
type DealResponse struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"account_id"`
	Value          decimal.Decimal `json:"value"`
	Status         string          `json:"status"`
	YearOfCreation int             `json:"year_of_creation"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DealToResponse convierte la entidad en DTO de salida.
func DealToResponse(d *entity.Deal) *DealResponse {
	if d == nil {
		return nil
	}
	return &DealResponse{
		ID:             d.ID,
		AccountID:      d.AccountID,
		Value:          d.Value,
		Status:         string(d.Status),
		YearOfCreation: d.YearOfCreation,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
