package usecase

import (
	"context"
	"strconv"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/domain"
	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// OrganizationUseCase aplica reglas de negocio para organizaciones, incluido
// el borrado en cascada de cuentas y negocios dependientes.
type OrganizationUseCase struct {
	repo  repository.OrganizationRepository
	state repository.AppStateRepository
	tx    TxRunner
}

// NewOrganizationUseCase construye el caso de uso con sus puertos.
func NewOrganizationUseCase(repo repository.OrganizationRepository, state repository.AppStateRepository, tx TxRunner) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo, state: state, tx: tx}
}

// Create crea una organización nueva. La DB asigna id y timestamps.
func (uc *OrganizationUseCase) Create(ctx context.Context, cmd dto.CreateOrganizationCommand) (*dto.OrganizationResponse, error) {
	org := &entity.Organization{Name: cmd.Name}
	if err := uc.repo.Create(ctx, org); err != nil {
		return nil, err
	}
	return dto.OrganizationToResponse(org), nil
}

// GetByID obtiene una organización por id. Devuelve nil, nil si no existe.
func (uc *OrganizationUseCase) GetByID(ctx context.Context, id int64) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.OrganizationToResponse(org), nil
}

// List lista todas las organizaciones.
func (uc *OrganizationUseCase) List(ctx context.Context) ([]dto.OrganizationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrganizationResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *dto.OrganizationToResponse(o))
	}
	return items, nil
}

// Update cambia el nombre de una organización existente. Se verifica la
// existencia antes de escribir para distinguir "no existe" (ErrNotFound) de
// un update sin cambios efectivos; updated_at se refresca en ambos casos.
func (uc *OrganizationUseCase) Update(ctx context.Context, id int64, cmd dto.UpdateOrganizationCommand) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	org.Name = cmd.Name
	if err := uc.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return dto.OrganizationToResponse(org), nil
}

// Delete elimina una organización junto con todas sus cuentas y los negocios
// de esas cuentas, en orden de dependencia y dentro de una sola transacción:
// una falla intermedia revierte todo sin dejar huérfanos. Tras el commit se
// limpia la selección persistida si apuntaba a la organización borrada.
func (uc *OrganizationUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.tx.Run(ctx, func(
		orgs repository.OrganizationRepository,
		accounts repository.AccountRepository,
		deals repository.DealRepository,
	) error {
		list, err := accounts.ListByOrganization(ctx, id)
		if err != nil {
			return err
		}
		accountIDs := make([]int64, 0, len(list))
		for _, a := range list {
			accountIDs = append(accountIDs, a.ID)
		}
		if _, err := deals.DeleteByAccountIDs(ctx, accountIDs); err != nil {
			return err
		}
		if _, err := accounts.DeleteByOrganization(ctx, id); err != nil {
			return err
		}
		return orgs.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	value, ok, err := uc.state.Get(ctx, repository.StateSelectedOrganization)
	if err != nil {
		return err
	}
	if ok && value == strconv.FormatInt(id, 10) {
		return uc.state.Delete(ctx, repository.StateSelectedOrganization)
	}
	return nil
}
