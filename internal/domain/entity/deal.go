package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dealtrack-api/internal/domain/pipeline"
)

// Deal negocio en curso. Pertenece exactamente a una cuenta (Account) y
// avanza por las etapas del pipeline.
type Deal struct {
	ID             int64
	AccountID      int64
	Value          decimal.Decimal // valor monetario, no negativo (NUMERIC en DB)
	Status         pipeline.Stage
	YearOfCreation int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
