package repository

import (
	"context"

	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
)

// DealRepository define el puerto de persistencia para Deal (DIP).
type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
	List(ctx context.Context) ([]*entity.Deal, error)
	// ListByAccountIDs devuelve los negocios cuya cuenta está en accountIDs.
	// Con accountIDs vacío devuelve lista vacía sin consultar la DB.
	ListByAccountIDs(ctx context.Context, accountIDs []int64) ([]*entity.Deal, error)
	// Update escribe todos los campos mutables y refresca updated_at.
	Update(ctx context.Context, deal *entity.Deal) error
	Delete(ctx context.Context, id int64) error
	// DeleteByAccountIDs borra los negocios de las cuentas dadas y devuelve
	// cuántas filas se eliminaron.
	DeleteByAccountIDs(ctx context.Context, accountIDs []int64) (int64, error)
}
