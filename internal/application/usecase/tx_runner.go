package usecase

import (
	"context"

	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción de la DB con los
// repositorios atados a ella. Lo usa el borrado en cascada de organizaciones
// para que una falla intermedia no deje huérfanos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orgs repository.OrganizationRepository,
		accounts repository.AccountRepository,
		deals repository.DealRepository,
	) error) error
}
