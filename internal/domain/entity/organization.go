package entity

import "time"

// Organization raíz de propiedad: una organización agrupa cuentas (Account)
// y, a través de ellas, negocios (Deal).
type Organization struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
