package analytics

import (
	"context"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dealtrack-api/internal/application/dto"
	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/pipeline"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// Filter filtros de visibilidad del tablero. nil = "all".
type Filter struct {
	Stage *pipeline.Stage
	Year  *int
}

// PipelineUseCase motor de filtrado y agregación del pipeline: compone el
// alcance de organización, el filtro de etapa y el filtro de año sobre el
// conjunto de negocios, y produce conteos y sumas por etapa.
type PipelineUseCase struct {
	accounts repository.AccountRepository
	deals    repository.DealRepository
}

// NewPipelineUseCase construye el caso de uso con sus puertos.
func NewPipelineUseCase(accounts repository.AccountRepository, deals repository.DealRepository) *PipelineUseCase {
	return &PipelineUseCase{accounts: accounts, deals: deals}
}

// Summary devuelve conteos y totales por etapa del alcance de organización
// completo, más los totales por banda. Los filtros de etapa/año no afectan
// este resumen. Sin organización seleccionada (nil) todo se reporta en cero
// sin consultar la DB: la selección es una compuerta dura, no un filtro.
func (uc *PipelineUseCase) Summary(ctx context.Context, organizationID *int64) (*dto.PipelineSummaryResponse, error) {
	out := &dto.PipelineSummaryResponse{
		OrganizationID: organizationID,
		Stages:         emptyStageSummaries(),
		Totals:         zeroBands(),
	}
	if organizationID == nil {
		return out, nil
	}
	orgDeals, err := uc.organizationScope(ctx, *organizationID)
	if err != nil {
		return nil, err
	}
	buckets := Partition(orgDeals)
	for i, s := range pipeline.Stages {
		out.Stages[i].Count = len(buckets[s])
		out.Stages[i].Total = sumValues(buckets[s])
	}
	out.Totals = Bands(orgDeals)
	return out, nil
}

// Board devuelve los negocios visibles (alcance de organización acotado por
// etapa y año) particionados por etapa, más los años disponibles del alcance
// completo. Misma compuerta dura que Summary para organización nil.
func (uc *PipelineUseCase) Board(ctx context.Context, organizationID *int64, f Filter) (*dto.PipelineBoardResponse, error) {
	out := &dto.PipelineBoardResponse{
		OrganizationID: organizationID,
		Status:         filterStageLabel(f),
		Year:           filterYearLabel(f),
		Stages:         emptyStageBuckets(),
		AvailableYears: []int{},
	}
	if organizationID == nil {
		return out, nil
	}
	orgDeals, err := uc.organizationScope(ctx, *organizationID)
	if err != nil {
		return nil, err
	}
	visible := Visible(orgDeals, f)
	buckets := Partition(visible)
	for i, s := range pipeline.Stages {
		out.Stages[i].Count = len(buckets[s])
		out.Stages[i].Total = sumValues(buckets[s])
		for _, d := range buckets[s] {
			out.Stages[i].Deals = append(out.Stages[i].Deals, *dto.DealToResponse(d))
		}
	}
	// Años del alcance completo, sin filtros, de más reciente a más antiguo.
	out.AvailableYears = availableYears(orgDeals)
	return out, nil
}

// organizationScope negocios cuya cuenta pertenece a la organización. Es la
// base del resumen y del tablero.
func (uc *PipelineUseCase) organizationScope(ctx context.Context, organizationID int64) ([]*entity.Deal, error) {
	accounts, err := uc.accounts.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	accountIDs := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		accountIDs = append(accountIDs, a.ID)
	}
	return uc.deals.ListByAccountIDs(ctx, accountIDs)
}

// Visible acota deals por etapa y año. Un filtro nil no restringe.
func Visible(deals []*entity.Deal, f Filter) []*entity.Deal {
	visible := make([]*entity.Deal, 0, len(deals))
	for _, d := range deals {
		if f.Stage != nil && d.Status != *f.Stage {
			continue
		}
		if f.Year != nil && d.YearOfCreation != *f.Year {
			continue
		}
		visible = append(visible, d)
	}
	return visible
}

// Partition reparte deals en una cubeta por etapa del pipeline, incluyendo
// cubetas vacías para etapas sin negocios.
func Partition(deals []*entity.Deal) map[pipeline.Stage][]*entity.Deal {
	buckets := make(map[pipeline.Stage][]*entity.Deal, len(pipeline.Stages))
	for _, s := range pipeline.Stages {
		buckets[s] = nil
	}
	for _, d := range deals {
		buckets[d.Status] = append(buckets[d.Status], d)
	}
	return buckets
}

// Bands suma los valores por banda del resumen: potential (etapas abiertas),
// actual (signed) y unavailable (cancelled, lost).
func Bands(deals []*entity.Deal) dto.BandTotals {
	totals := zeroBands()
	for _, d := range deals {
		switch pipeline.BandOf(d.Status) {
		case pipeline.BandActual:
			totals.Actual = totals.Actual.Add(d.Value)
		case pipeline.BandUnavailable:
			totals.Unavailable = totals.Unavailable.Add(d.Value)
		default:
			totals.Potential = totals.Potential.Add(d.Value)
		}
	}
	return totals
}

func sumValues(deals []*entity.Deal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deals {
		total = total.Add(d.Value)
	}
	return total
}

func availableYears(deals []*entity.Deal) []int {
	seen := make(map[int]bool, len(deals))
	years := make([]int, 0, len(deals))
	for _, d := range deals {
		if !seen[d.YearOfCreation] {
			seen[d.YearOfCreation] = true
			years = append(years, d.YearOfCreation)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func emptyStageSummaries() []dto.StageSummary {
	stages := make([]dto.StageSummary, len(pipeline.Stages))
	for i, s := range pipeline.Stages {
		stages[i] = dto.StageSummary{Stage: string(s), Total: decimal.Zero}
	}
	return stages
}

func emptyStageBuckets() []dto.StageBucket {
	stages := make([]dto.StageBucket, len(pipeline.Stages))
	for i, s := range pipeline.Stages {
		stages[i] = dto.StageBucket{Stage: string(s), Total: decimal.Zero, Deals: []dto.DealResponse{}}
	}
	return stages
}

func zeroBands() dto.BandTotals {
	return dto.BandTotals{Potential: decimal.Zero, Actual: decimal.Zero, Unavailable: decimal.Zero}
}

func filterStageLabel(f Filter) string {
	if f.Stage == nil {
		return "all"
	}
	return string(*f.Stage)
}

func filterYearLabel(f Filter) string {
	if f.Year == nil {
		return "all"
	}
	return strconv.Itoa(*f.Year)
}
