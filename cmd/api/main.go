package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/crm-core-api/internal/application/auth"
	"github.com/jhoicas/crm-core-api/internal/application/records"
	"github.com/jhoicas/crm-core-api/internal/application/usecase"
	infraexport "github.com/jhoicas/crm-core-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/crm-core-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-core-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/crm-core-api/internal/interfaces/http"
	"github.com/jhoicas/crm-core-api/pkg/config"
	"github.com/jhoicas/crm-core-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	oppRepo := postgres.NewOpportunityRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	orgUC := usecase.NewOrganizationUseCase(orgRepo)
	accountUC := records.NewAccountUseCase(accountRepo)
	contactUC := records.NewContactUseCase(contactRepo, accountUC, txRunner)
	oppUC := records.NewOpportunityUseCase(oppRepo, txRunner)
	leadUC := records.NewLeadUseCase(leadRepo, txRunner)
	caseUC := records.NewCaseUseCase(accountRepo, txRunner)

	// Exportación de la ficha de cuenta: XML (etree) y PDF (maroto)
	xmlBuilder := infraexport.NewXMLBuilderService()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	exportUC := records.NewExportUseCase(accountRepo, contactRepo, oppRepo, xmlBuilder, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Core API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrganizationUC: orgUC,
		AccountUC:      accountUC,
		ContactUC:      contactUC,
		OpportunityUC:  oppUC,
		LeadUC:         leadUC,
		CaseUC:         caseUC,
		ExportUC:       exportUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
