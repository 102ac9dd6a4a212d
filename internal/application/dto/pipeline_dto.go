package dto

import "github.com/shopspring/decimal"

// StageSummary conteo y suma de valores de una etapa del pipeline. Las etapas
// sin negocios aparecen con conteo cero (cubetas vacías incluidas).
type StageSummary struct {
	Stage string          `json:"stage"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// BandTotals totales del resumen por banda: potenciales (etapas abiertas),
// reales (signed) y no disponibles (cancelled, lost).
type BandTotals struct {
	Potential   decimal.Decimal `json:"potential"`
	Actual      decimal.Decimal `json:"actual"`
	Unavailable decimal.Decimal `json:"unavailable"`
}

// PipelineSummaryResponse resumen por etapa del alcance de organización
// completo (los filtros de etapa/año no lo afectan). Sin organización
// seleccionada todo es cero.
type PipelineSummaryResponse struct {
	OrganizationID *int64         `json:"organization_id"`
	Stages         []StageSummary `json:"stages"`
	Totals         BandTotals     `json:"totals"`
}

// StageBucket cubeta de una etapa en el tablero: negocios visibles de esa
// etapa tras aplicar los filtros.
type StageBucket struct {
	Stage string          `json:"stage"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Deals []DealResponse  `json:"deals"`
}

// PipelineBoardResponse tablero de negocios visibles: alcance de organización
// acotado por filtros de etapa y año, particionado por etapa.
type PipelineBoardResponse struct {
	OrganizationID *int64        `json:"organization_id"`
	Status         string        `json:"status"`
	Year           string        `json:"year"`
	Stages         []StageBucket `json:"stages"`
	AvailableYears []int         `json:"available_years"`
}
