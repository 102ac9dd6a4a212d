package repository

import "context"

// Claves conocidas de app_state.
const (
	// StateSelectedOrganization id numérico de la última organización
	// seleccionada; sobrevive reinicios y se limpia al borrarla.
	StateSelectedOrganization = "selected_organization"
)

// AppStateRepository puerto clave-valor para el estado persistido de la
// aplicación (cargar al inicio, guardar al cambiar, limpiar al borrar).
type AppStateRepository interface {
	// Get devuelve ok=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
