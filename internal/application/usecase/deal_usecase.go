package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/domain"
	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/pipeline"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// DealUseCase aplica reglas de negocio para negocios: CRUD, verificación de
// que account_id referencie una cuenta existente, y los pasos simples
// adelante/atrás por el pipeline.
type DealUseCase struct {
	deals    repository.DealRepository
	accounts repository.AccountRepository
}

// NewDealUseCase construye el caso de uso con sus puertos.
func NewDealUseCase(deals repository.DealRepository, accounts repository.AccountRepository) *DealUseCase {
	return &DealUseCase{deals: deals, accounts: accounts}
}

// Create crea un negocio nuevo sobre una cuenta existente. Si no viene
// year_of_creation se usa el año actual del servidor.
func (uc *DealUseCase) Create(ctx context.Context, cmd dto.CreateDealCommand) (*dto.DealResponse, error) {
	account, err := uc.accounts.GetByID(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, dto.NewValidationError("Account ID must reference an existing account")
	}
	year := time.Now().Year()
	if cmd.YearOfCreation != nil {
		year = *cmd.YearOfCreation
	}
	deal := &entity.Deal{
		AccountID:      cmd.AccountID,
		Value:          cmd.Value,
		Status:         cmd.Status,
		YearOfCreation: year,
	}
	if err := uc.deals.Create(ctx, deal); err != nil {
		return nil, err
	}
	return dto.DealToResponse(deal), nil
}

// GetByID obtiene un negocio por id. Devuelve nil, nil si no existe.
func (uc *DealUseCase) GetByID(ctx context.Context, id int64) (*dto.DealResponse, error) {
	deal, err := uc.deals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.DealToResponse(deal), nil
}

// List lista todos los negocios.
func (uc *DealUseCase) List(ctx context.Context) ([]dto.DealResponse, error) {
	list, err := uc.deals.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DealResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *dto.DealToResponse(d))
	}
	return items, nil
}

// Update aplica un update parcial: solo los campos suministrados cambian,
// updated_at se refresca y el resto queda intacto.
func (uc *DealUseCase) Update(ctx context.Context, id int64, cmd dto.UpdateDealCommand) (*dto.DealResponse, error) {
	deal, err := uc.deals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrNotFound
	}
	if cmd.AccountID != nil {
		account, err := uc.accounts.GetByID(ctx, *cmd.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, dto.NewValidationError("Account ID must reference an existing account")
		}
		deal.AccountID = *cmd.AccountID
	}
	if cmd.Value != nil {
		deal.Value = *cmd.Value
	}
	if cmd.Status != nil {
		deal.Status = *cmd.Status
	}
	if err := uc.deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return dto.DealToResponse(deal), nil
}

// Advance mueve el negocio a la etapa inmediatamente siguiente del pipeline.
// Solo persiste el nuevo status (y updated_at); el resto queda intacto.
func (uc *DealUseCase) Advance(ctx context.Context, id int64) (*dto.DealResponse, error) {
	return uc.step(ctx, id, func(s pipeline.Stage) (pipeline.Stage, error) {
		next, ok := pipeline.Next(s)
		if !ok {
			return "", dto.NewValidationError("Deal is already at the last stage")
		}
		return next, nil
	})
}

// Revert mueve el negocio a la etapa inmediatamente anterior del pipeline.
func (uc *DealUseCase) Revert(ctx context.Context, id int64) (*dto.DealResponse, error) {
	return uc.step(ctx, id, func(s pipeline.Stage) (pipeline.Stage, error) {
		prev, ok := pipeline.Previous(s)
		if !ok {
			return "", dto.NewValidationError("Deal is already at the first stage")
		}
		return prev, nil
	})
}

func (uc *DealUseCase) step(ctx context.Context, id int64, move func(pipeline.Stage) (pipeline.Stage, error)) (*dto.DealResponse, error) {
	deal, err := uc.deals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrNotFound
	}
	stage, err := move(deal.Status)
	if err != nil {
		return nil, err
	}
	deal.Status = stage
	if err := uc.deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return dto.DealToResponse(deal), nil
}

// Delete elimina un negocio por id.
func (uc *DealUseCase) Delete(ctx context.Context, id int64) error {
	return uc.deals.Delete(ctx, id)
}
