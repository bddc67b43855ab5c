package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/auth"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/medication"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/reports"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/stock"
	infrapdf "github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/infrastructure/pdf"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/interfaces/http"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/pkg/config"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	medRepo := postgres.NewMedicationRepository(pool)
	logRepo := postgres.NewStockLogRepository(pool)
	usageRepo := postgres.NewUsageHistoryRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	restockRepo := postgres.NewRestockRequestRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	medicationUC := medication.NewUseCase(medRepo)
	useMedUC := stock.NewUseMedicationUseCase(txRunner)
	adjustUC := stock.NewAdjustStockUseCase(txRunner)
	restockUC := stock.NewRestockUseCase(txRunner, medRepo, restockRepo)

	// PDF: libro auditable de sustancias controladas
	pdfGenerator := infrapdf.NewMarotoLedgerGenerator()
	reportUC := reports.NewLedgerReportUseCase(medRepo, logRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MedicationUC: medicationUC,
		UseMedUC:     useMedUC,
		AdjustUC:     adjustUC,
		RestockUC:    restockUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		LogRepo:      logRepo,
		UsageRepo:    usageRepo,
		NotifRepo:    notifRepo,
		Logger:       log,
		JWTSecret:    cfg.JWT.Secret,
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
