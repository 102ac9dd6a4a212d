package usecase

import (
	"context"
	"strconv"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/domain"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// AppStateUseCase maneja el estado persistido de la aplicación: la última
// organización seleccionada (se carga al inicio del cliente, se guarda al
// cambiar y se limpia al borrar la organización).
type AppStateUseCase struct {
	state repository.AppStateRepository
	orgs  repository.OrganizationRepository
}

// NewAppStateUseCase construye el caso de uso con sus puertos.
func NewAppStateUseCase(state repository.AppStateRepository, orgs repository.OrganizationRepository) *AppStateUseCase {
	return &AppStateUseCase{state: state, orgs: orgs}
}

// SelectedOrganization devuelve el id persistido, o nil si no hay selección.
func (uc *AppStateUseCase) SelectedOrganization(ctx context.Context) (*dto.SelectedOrganizationResponse, error) {
	value, ok, err := uc.state.Get(ctx, repository.StateSelectedOrganization)
	if err != nil {
		return nil, err
	}
	out := &dto.SelectedOrganizationResponse{}
	if !ok {
		return out, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Valor corrupto en app_state: tratar como sin selección.
		return out, nil
	}
	out.OrganizationID = &id
	return out, nil
}

// SetSelectedOrganization persiste la selección. La organización debe existir.
func (uc *AppStateUseCase) SetSelectedOrganization(ctx context.Context, id int64) (*dto.SelectedOrganizationResponse, error) {
	org, err := uc.orgs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.state.Set(ctx, repository.StateSelectedOrganization, strconv.FormatInt(id, 10)); err != nil {
		return nil, err
	}
	return &dto.SelectedOrganizationResponse{OrganizationID: &id}, nil
}

// ClearSelectedOrganization borra la selección persistida (idempotente).
func (uc *AppStateUseCase) ClearSelectedOrganization(ctx context.Context) error {
	return uc.state.Delete(ctx, repository.StateSelectedOrganization)
}
