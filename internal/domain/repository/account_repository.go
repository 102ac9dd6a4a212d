package repository

import (
	"context"

	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	// ListByOrganization devuelve las cuentas de una organización (alcance de
	// organización del motor de filtros y paso 1 del borrado en cascada).
	ListByOrganization(ctx context.Context, organizationID int64) ([]*entity.Account, error)
	// Update escribe todos los campos mutables y refresca updated_at.
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id int64) error
	// DeleteByOrganization borra todas las cuentas de la organización y devuelve
	// cuántas filas se eliminaron.
	DeleteByOrganization(ctx context.Context, organizationID int64) (int64, error)
}
