package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dealtrack-api/internal/application/analytics"
	"github.com/jhoicas/dealtrack-api/internal/application/usecase"
	"github.com/jhoicas/dealtrack-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	AccountUC      *usecase.AccountUseCase
	DealUC         *usecase.DealUseCase
	PipelineUC     *analytics.PipelineUseCase
	AppStateUC     *usecase.AppStateUseCase
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Organizations
	organizations := api.Group("/organizations")
	organizationHandler := NewOrganizationHandler(deps.OrganizationUC, deps.Log)
	organizations.Get("/", organizationHandler.List)
	organizations.Post("/", organizationHandler.Create)
	organizations.Get("/:id", organizationHandler.GetByID)
	organizations.Put("/:id", organizationHandler.Update)
	organizations.Delete("/:id", organizationHandler.Delete)

	// Accounts
	accounts := api.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC, deps.Log)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)

	// Deals: las rutas fijas (summary, board) van antes de /:id
	deals := api.Group("/deals")
	dealHandler := NewDealHandler(deps.DealUC, deps.Log)
	pipelineHandler := NewPipelineHandler(deps.PipelineUC, deps.Log)
	deals.Get("/summary", pipelineHandler.Summary)
	deals.Get("/board", pipelineHandler.Board)
	deals.Get("/", dealHandler.List)
	deals.Post("/", dealHandler.Create)
	deals.Get("/:id", dealHandler.GetByID)
	deals.Put("/:id", dealHandler.Update)
	deals.Delete("/:id", dealHandler.Delete)
	deals.Post("/:id/advance", dealHandler.Advance)
	deals.Post("/:id/revert", dealHandler.Revert)

	// Estado persistido de la aplicación
	state := api.Group("/state")
	stateHandler := NewStateHandler(deps.AppStateUC, deps.Log)
	state.Get("/selected-organization", stateHandler.GetSelectedOrganization)
	state.Put("/selected-organization", stateHandler.PutSelectedOrganization)
	state.Delete("/selected-organization", stateHandler.ClearSelectedOrganization)
}
