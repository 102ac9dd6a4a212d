package postgres

import (
	"context"
	"fmt"
)

// Migrate crea las tablas si no existen. El CHECK de deals.status debe
// coincidir con pipeline.Stages. No hay FKs declaradas: la integridad
// referencial se verifica en la frontera y el borrado en cascada lo orquesta
// el caso de uso dentro de una transacción.
func Migrate(ctx context.Context, q Querier) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS organizations (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			organization_id BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS deals (
			id BIGSERIAL PRIMARY KEY,
			account_id BIGINT NOT NULL,
			value NUMERIC(18,2) NOT NULL CHECK (value >= 0),
			status TEXT NOT NULL CHECK (status IN (
				'build_proposal',
				'pitch_proposal',
				'negotiation',
				'awaiting_signoff',
				'signed',
				'cancelled',
				'lost'
			)),
			year_of_creation INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_organization_id ON accounts (organization_id)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_account_id ON deals (account_id)`,
	}
	for _, stmt := range statements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
