package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dealtrack-api/internal/domain"
	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// Asegura que AccountRepo implementa repository.AccountRepository.
var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta nueva; la DB asigna id y timestamps.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (name, organization_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, account.Name, account.OrganizationID).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por id. Devuelve nil, nil si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	query := `
		SELECT id, name, organization_id, created_at, updated_at
		FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.q.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Name, &a.OrganizationID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// List devuelve todas las cuentas.
func (r *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	return r.listWhere(ctx, `ORDER BY id`)
}

// ListByOrganization devuelve las cuentas de una organización.
func (r *AccountRepo) ListByOrganization(ctx context.Context, organizationID int64) ([]*entity.Account, error) {
	return r.listWhere(ctx, `WHERE organization_id = $1 ORDER BY id`, organizationID)
}

func (r *AccountRepo) listWhere(ctx context.Context, clause string, args ...any) ([]*entity.Account, error) {
	query := `
		SELECT id, name, organization_id, created_at, updated_at
		FROM accounts ` + clause
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.OrganizationID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update escribe los campos mutables y refresca updated_at. ErrNotFound si el
// id no existe.
func (r *AccountRepo) Update(ctx context.Context, account *entity.Account) error {
	query := `
		UPDATE accounts SET name = $2, organization_id = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, account.ID, account.Name, account.OrganizationID).
		Scan(&account.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por id. ErrNotFound si el id no existe.
func (r *AccountRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByOrganization borra todas las cuentas de la organización (paso del
// borrado en cascada; va después de borrar los negocios de esas cuentas).
func (r *AccountRepo) DeleteByOrganization(ctx context.Context, organizationID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM accounts WHERE organization_id = $1`, organizationID)
	if err != nil {
		return 0, fmt.Errorf("delete accounts by organization: %w", err)
	}
	return cmd.RowsAffected(), nil
}
