package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-core-api/internal/application/auth"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	AccountUC      *records.AccountUseCase
	ContactUC      *records.ContactUseCase
	OpportunityUC  *records.OpportunityUseCase
	LeadUC         *records.LeadUseCase
	CaseUC         *records.CaseUseCase
	ExportUC       *records.ExportUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Organizations (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	orgs := api.Group("/orgs")
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	orgs.Get("/", orgHandler.List)
	orgs.Post("/", orgHandler.Create)
	orgs.Get("/:id", orgHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Accounts (protegido)
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC, deps.ExportUC)
	contactHandler := NewContactHandler(deps.ContactUC)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/get-or-create", accountHandler.GetOrCreate)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Post("/:id/description", accountHandler.UpdateDescription)
	accounts.Delete("/:id", RequireRole("admin"), accountHandler.Delete)
	accounts.Get("/:id/contacts", contactHandler.ListByAccount)
	accounts.Get("/:id/export.xml", accountHandler.ExportXML)
	accounts.Get("/:id/pdf", accountHandler.ExportPDF)

	// Contacts (protegido)
	contacts := protected.Group("/contacts")
	contacts.Post("/", contactHandler.Create)
	contacts.Post("/derive-link", contactHandler.DeriveAndLink)

	// Opportunities (protegido)
	opps := protected.Group("/opportunities")
	oppHandler := NewOpportunityHandler(deps.OpportunityUC)
	opps.Post("/", oppHandler.Create)
	opps.Post("/bulk-upsert", oppHandler.BulkUpsert)
	opps.Get("/:id", oppHandler.GetByID)

	// Leads (protegido)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", leadHandler.Create)
	leads.Post("/bulk-roundtrip", leadHandler.BulkRoundTrip)

	// Cases (protegido)
	cases := protected.Group("/cases")
	caseHandler := NewCaseHandler(deps.CaseUC)
	cases.Post("/bulk-roundtrip", caseHandler.BulkRoundTrip)
}
