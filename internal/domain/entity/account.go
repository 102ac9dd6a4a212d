package entity

import "time"

// Account cuenta cliente. Pertenece exactamente a una organización.
type Account struct {
	ID             int64
	Name           string
	OrganizationID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
