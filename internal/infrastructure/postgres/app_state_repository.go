package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// Asegura que AppStateRepo implementa repository.AppStateRepository.
var _ repository.AppStateRepository = (*AppStateRepo)(nil)

// AppStateRepo almacén clave-valor del estado persistido de la aplicación
// sobre la tabla app_state.
type AppStateRepo struct {
	q Querier
}

// NewAppStateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppStateRepository(q Querier) *AppStateRepo {
	return &AppStateRepo{q: q}
}

// Get lee una clave. ok=false si no existe.
func (r *AppStateRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.q.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get app state %s: %w", key, err)
	}
	return value, true, nil
}

// Set guarda una clave (upsert).
func (r *AppStateRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set app state %s: %w", key, err)
	}
	return nil
}

// Delete borra una clave. Borrar una clave inexistente no es error.
func (r *AppStateRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM app_state WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete app state %s: %w", key, err)
	}
	return nil
}
