package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dealtrack-api/internal/domain"
	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// Asegura que DealRepo implementa repository.DealRepository.
var _ repository.DealRepository = (*DealRepo)(nil)

// DealRepo implementación del puerto sobre PostgreSQL (usable con pool o tx).
type DealRepo struct {
	q Querier
}

// NewDealRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDealRepository(q Querier) *DealRepo {
	return &DealRepo{q: q}
}

// Create persiste un negocio nuevo; la DB asigna id y timestamps.
func (r *DealRepo) Create(ctx context.Context, deal *entity.Deal) error {
	query := `
		INSERT INTO deals (account_id, value, status, year_of_creation)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		deal.AccountID, deal.Value, string(deal.Status), deal.YearOfCreation,
	).Scan(&deal.ID, &deal.CreatedAt, &deal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por id. Devuelve nil, nil si no existe.
func (r *DealRepo) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	query := `
		SELECT id, account_id, value, status, year_of_creation, created_at, updated_at
		FROM deals WHERE id = $1`
	var d entity.Deal
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.AccountID, &d.Value, &d.Status, &d.YearOfCreation,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return &d, nil
}

// List devuelve todos los negocios.
func (r *DealRepo) List(ctx context.Context) ([]*entity.Deal, error) {
	return r.listWhere(ctx, `ORDER BY id`)
}

// ListByAccountIDs devuelve los negocios cuya cuenta está en accountIDs. Con
// la lista vacía no consulta la DB (una organización sin cuentas no tiene
// negocios por definición).
func (r *DealRepo) ListByAccountIDs(ctx context.Context, accountIDs []int64) ([]*entity.Deal, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	return r.listWhere(ctx, `WHERE account_id = ANY($1) ORDER BY id`, accountIDs)
}

func (r *DealRepo) listWhere(ctx context.Context, clause string, args ...any) ([]*entity.Deal, error) {
	query := `
		SELECT id, account_id, value, status, year_of_creation, created_at, updated_at
		FROM deals ` + clause
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var list []*entity.Deal
	for rows.Next() {
		var d entity.Deal
		if err := rows.Scan(
			&d.ID, &d.AccountID, &d.Value, &d.Status, &d.YearOfCreation,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update escribe los campos mutables y refresca updated_at. ErrNotFound si el
// id no existe.
func (r *DealRepo) Update(ctx context.Context, deal *entity.Deal) error {
	query := `
		UPDATE deals SET account_id = $2, value = $3, status = $4, year_of_creation = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		deal.ID, deal.AccountID, deal.Value, string(deal.Status), deal.YearOfCreation,
	).Scan(&deal.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update deal: %w", err)
	}
	return nil
}

// Delete elimina un negocio por id. ErrNotFound si el id no existe.
func (r *DealRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByAccountIDs borra los negocios de las cuentas dadas (primer paso del
// borrado en cascada).
func (r *DealRepo) DeleteByAccountIDs(ctx context.Context, accountIDs []int64) (int64, error) {
	if len(accountIDs) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM deals WHERE account_id = ANY($1)`, accountIDs)
	if err != nil {
		return 0, fmt.Errorf("delete deals by accounts: %w", err)
	}
	return cmd.RowsAffected(), nil
}
