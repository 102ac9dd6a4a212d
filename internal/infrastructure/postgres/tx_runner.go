package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/dealtrack-api/internal/application/usecase"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// Asegura que TxRunner implementa usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Lo usa el
// borrado en cascada de organizaciones para que la secuencia
// negocios → cuentas → organización sea atómica.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orgs repository.OrganizationRepository,
	accounts repository.AccountRepository,
	deals repository.DealRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orgRepo := NewOrganizationRepository(tx)
	accountRepo := NewAccountRepository(tx)
	dealRepo := NewDealRepository(tx)

	if err := fn(orgRepo, accountRepo, dealRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
