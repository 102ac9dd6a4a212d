package repository

import (
	"context"

	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
// La implementación vive en infrastructure.
type OrganizationRepository interface {
	// Create persiste la organización y completa ID y timestamps asignados por la DB.
	Create(ctx context.Context, org *entity.Organization) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Organization, error)
	List(ctx context.Context) ([]*entity.Organization, error)
	// Update escribe name y refresca updated_at. Devuelve domain.ErrNotFound si
	// el id no existe.
	Update(ctx context.Context, org *entity.Organization) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id int64) error
}
