package usecase

import (
	"context"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/domain"
	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// AccountUseCase aplica reglas de negocio para cuentas. Verifica en la
// frontera que organization_id referencie una organización existente (la DB
// no tiene FK declarada, fiel al esquema original).
type AccountUseCase struct {
	accounts repository.AccountRepository
	orgs     repository.OrganizationRepository
}

// NewAccountUseCase construye el caso de uso con sus puertos.
func NewAccountUseCase(accounts repository.AccountRepository, orgs repository.OrganizationRepository) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, orgs: orgs}
}

// Create crea una cuenta nueva dentro de una organización existente.
func (uc *AccountUseCase) Create(ctx context.Context, cmd dto.CreateAccountCommand) (*dto.AccountResponse, error) {
	org, err := uc.orgs.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, dto.NewValidationError("Organization ID must reference an existing organization")
	}
	account := &entity.Account{Name: cmd.Name, OrganizationID: cmd.OrganizationID}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return dto.AccountToResponse(account), nil
}

// GetByID obtiene una cuenta por id. Devuelve nil, nil si no existe.
func (uc *AccountUseCase) GetByID(ctx context.Context, id int64) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.AccountToResponse(account), nil
}

// List lista todas las cuentas.
func (uc *AccountUseCase) List(ctx context.Context) ([]dto.AccountResponse, error) {
	list, err := uc.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *dto.AccountToResponse(a))
	}
	return items, nil
}

// Update aplica un update parcial: solo los campos suministrados cambian y
// updated_at se refresca siempre que la mutación sea aceptada.
func (uc *AccountUseCase) Update(ctx context.Context, id int64, cmd dto.UpdateAccountCommand) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if cmd.OrganizationID != nil {
		org, err := uc.orgs.GetByID(ctx, *cmd.OrganizationID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, dto.NewValidationError("Organization ID must reference an existing organization")
		}
		account.OrganizationID = *cmd.OrganizationID
	}
	if cmd.Name != nil {
		account.Name = *cmd.Name
	}
	if err := uc.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return dto.AccountToResponse(account), nil
}

// Delete elimina una cuenta por id.
func (uc *AccountUseCase) Delete(ctx context.Context, id int64) error {
	return uc.accounts.Delete(ctx, id)
}
