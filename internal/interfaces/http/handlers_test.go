package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/pipeline"
)

func doReq(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// Ciclo de vida completo de una organización por HTTP: crear, leer,
// actualizar, borrar y verificar el 404 posterior.
func TestOrganizationLifecycle(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doReq(t, app, http.MethodPost, "/api/organizations", `{"name": "Acme"}`)
	require.Equal(t, http.StatusCreated, status)
	created := decode(t, raw)
	assert.Equal(t, "Acme", created["name"])
	id := int64(created["id"].(float64))
	require.NotZero(t, id)

	path := fmt.Sprintf("/api/organizations/%d", id)

	status, raw = doReq(t, app, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Acme", decode(t, raw)["name"])

	status, raw = doReq(t, app, http.MethodPut, path, `{"name": "Acme Corp"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Acme Corp", decode(t, raw)["name"])

	status, _ = doReq(t, app, http.MethodDelete, path, "")
	require.Equal(t, http.StatusNoContent, status)

	status, raw = doReq(t, app, http.MethodGet, path, "")
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Organization not found", decode(t, raw)["error"])
}

func TestOrganizationCreate_Validacion(t *testing.T) {
	app, _ := newTestApp()

	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"json invalido", `{no es json`, "Invalid JSON body"},
		{"sin name", `{}`, "Organization name is required"},
		{"name vacio", `{"name": ""}`, "Organization name is required"},
		{"name numerico", `{"name": 7}`, "Organization name is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, raw := doReq(t, app, http.MethodPost, "/api/organizations", tc.body)
			require.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tc.msg, decode(t, raw)["error"])
		})
	}
}

func TestOrganization_IDInvalido(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doReq(t, app, http.MethodGet, "/api/organizations/abc", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid organization ID", decode(t, raw)["error"])
}

func TestAccountCreate_OrganizacionInexistente(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doReq(t, app, http.MethodPost, "/api/accounts", `{"name": "Acme Norte", "organization_id": 9}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Organization ID must reference an existing organization", decode(t, raw)["error"])
}

func TestAccountUpdate_CuerpoVacio(t *testing.T) {
	app, s := newTestApp()
	s.orgs[1] = &entity.Organization{ID: 1, Name: "Acme"}
	s.accounts[10] = &entity.Account{ID: 10, Name: "Acme Norte", OrganizationID: 1}

	status, raw := doReq(t, app, http.MethodPut, "/api/accounts/10", `{}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "At least one field (name or organization_id) is required for update", decode(t, raw)["error"])
}

func TestDealCreate_StatusInvalido(t *testing.T) {
	app, s := newTestApp()
	s.orgs[1] = &entity.Organization{ID: 1, Name: "Acme"}
	s.accounts[10] = &entity.Account{ID: 10, Name: "Acme Norte", OrganizationID: 1}

	status, raw := doReq(t, app, http.MethodPost, "/api/deals", `{"account_id": 10, "value": 100, "status": "pending"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Deal status is required and must be one of: "+pipeline.Joined(), decode(t, raw)["error"])
}

func TestDeal_IDInvalido(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doReq(t, app, http.MethodGet, "/api/deals/abc", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid deal ID", decode(t, raw)["error"])
}

func TestDealAdvanceYRevert(t *testing.T) {
	app, s := newTestApp()
	s.orgs[1] = &entity.Organization{ID: 1, Name: "Acme"}
	s.accounts[10] = &entity.Account{ID: 10, Name: "Acme Norte", OrganizationID: 1}
	s.deals[5] = &entity.Deal{ID: 5, AccountID: 10, Value: decimal.NewFromInt(300), Status: pipeline.StageNegotiation, YearOfCreation: 2024}

	status, raw := doReq(t, app, http.MethodPost, "/api/deals/5/advance", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "awaiting_signoff", decode(t, raw)["status"])

	status, raw = doReq(t, app, http.MethodPost, "/api/deals/5/revert", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "negotiation", decode(t, raw)["status"])

	// En la primera etapa no hay paso atrás.
	s.deals[5].Status = pipeline.StageBuildProposal
	status, raw = doReq(t, app, http.MethodPost, "/api/deals/5/revert", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Deal is already at the first stage", decode(t, raw)["error"])
}

func seedPipeline(s *memStore) {
	s.orgs[1] = &entity.Organization{ID: 1, Name: "Acme"}
	s.accounts[10] = &entity.Account{ID: 10, Name: "Acme Norte", OrganizationID: 1}
	s.accounts[11] = &entity.Account{ID: 11, Name: "Acme Sur", OrganizationID: 1}
	s.deals[100] = &entity.Deal{ID: 100, AccountID: 10, Value: decimal.NewFromInt(100), Status: pipeline.StageNegotiation, YearOfCreation: 2024}
	s.deals[101] = &entity.Deal{ID: 101, AccountID: 10, Value: decimal.NewFromInt(200), Status: pipeline.StageSigned, YearOfCreation: 2024}
	s.deals[102] = &entity.Deal{ID: 102, AccountID: 11, Value: decimal.NewFromInt(50), Status: pipeline.StageLost, YearOfCreation: 2023}
	s.nextID = 1000
}

func TestPipelineSummary(t *testing.T) {
	app, s := newTestApp()
	seedPipeline(s)

	status, raw := doReq(t, app, http.MethodGet, "/api/deals/summary?organization_id=1", "")
	require.Equal(t, http.StatusOK, status)
	out := decode(t, raw)

	totals := out["totals"].(map[string]any)
	assert.Equal(t, float64(100), totals["potential"])
	assert.Equal(t, float64(200), totals["actual"])
	assert.Equal(t, float64(50), totals["unavailable"])
	assert.Len(t, out["stages"].([]any), 7)
}

// Sin organization_id el resumen es todo ceros: compuerta dura.
func TestPipelineSummary_SinOrganizacion(t *testing.T) {
	app, s := newTestApp()
	seedPipeline(s)

	status, raw := doReq(t, app, http.MethodGet, "/api/deals/summary", "")
	require.Equal(t, http.StatusOK, status)
	out := decode(t, raw)

	assert.Nil(t, out["organization_id"])
	totals := out["totals"].(map[string]any)
	assert.Equal(t, float64(0), totals["potential"])
	assert.Equal(t, float64(0), totals["actual"])
	assert.Equal(t, float64(0), totals["unavailable"])
}

func TestPipelineBoard_Filtros(t *testing.T) {
	app, s := newTestApp()
	seedPipeline(s)

	status, raw := doReq(t, app, http.MethodGet, "/api/deals/board?organization_id=1&status=signed&year=2024", "")
	require.Equal(t, http.StatusOK, status)
	out := decode(t, raw)

	assert.Equal(t, "signed", out["status"])
	assert.Equal(t, "2024", out["year"])
	for _, b := range out["stages"].([]any) {
		bucket := b.(map[string]any)
		if bucket["stage"] == "signed" {
			assert.Equal(t, float64(1), bucket["count"])
			continue
		}
		assert.Equal(t, float64(0), bucket["count"])
	}
	assert.Equal(t, []any{float64(2024), float64(2023)}, out["available_years"].([]any))
}

func TestPipelineBoard_FiltrosInvalidos(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doReq(t, app, http.MethodGet, "/api/deals/board?status=pending", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Deal status must be one of: "+pipeline.Joined(), decode(t, raw)["error"])

	status, raw = doReq(t, app, http.MethodGet, "/api/deals/board?year=abc", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Year filter must be a number or 'all'", decode(t, raw)["error"])

	status, raw = doReq(t, app, http.MethodGet, "/api/deals/summary?organization_id=abc", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid organization ID", decode(t, raw)["error"])
}

// La selección persistida sobrevive a reinicios del cliente y se limpia al
// borrar la organización seleccionada.
func TestSelectedOrganizationState(t *testing.T) {
	app, s := newTestApp()
	s.orgs[7] = &entity.Organization{ID: 7, Name: "Acme"}

	status, raw := doReq(t, app, http.MethodPut, "/api/state/selected-organization", `{"organization_id": 7}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(7), decode(t, raw)["organization_id"])

	status, raw = doReq(t, app, http.MethodGet, "/api/state/selected-organization", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(7), decode(t, raw)["organization_id"])

	status, _ = doReq(t, app, http.MethodDelete, "/api/organizations/7", "")
	require.Equal(t, http.StatusNoContent, status)

	status, raw = doReq(t, app, http.MethodGet, "/api/state/selected-organization", "")
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, decode(t, raw)["organization_id"])
}

func TestSelectedOrganization_NoExiste(t *testing.T) {
	app, _ := newTestApp()

	status, raw := doReq(t, app, http.MethodPut, "/api/state/selected-organization", `{"organization_id": 99}`)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Organization not found", decode(t, raw)["error"])
}

// El borrado en cascada por HTTP no deja cuentas ni negocios huérfanos.
func TestOrganizationDelete_CascadaPorHTTP(t *testing.T) {
	app, s := newTestApp()
	seedPipeline(s)

	status, _ := doReq(t, app, http.MethodDelete, "/api/organizations/1", "")
	require.Equal(t, http.StatusNoContent, status)

	assert.Empty(t, s.accounts)
	assert.Empty(t, s.deals)

	status, raw := doReq(t, app, http.MethodGet, "/api/deals/100", "")
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Deal not found", decode(t, raw)["error"])
}
