package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/auth"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/medication"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/reports"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/application/stock"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MedicationUC *medication.UseCase
	UseMedUC     *stock.UseMedicationUseCase
	AdjustUC     *stock.AdjustStockUseCase
	RestockUC    *stock.RestockUseCase
	ReportUC     *reports.LedgerReportUseCase
	AuthUC       *auth.AuthUseCase
	LogRepo      repository.StockLogRepository
	UsageRepo    repository.UsageHistoryRepository
	NotifRepo    repository.NotificationRepository
	Logger       *logger.Logger
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de medicamentos (lectura para cualquier usuario autenticado;
	// alta y edición solo admin)
	meds := protected.Group("/medications")
	medicationHandler := NewMedicationHandler(deps.MedicationUC)
	meds.Get("/", medicationHandler.List)
	meds.Get("/:id", medicationHandler.GetByID)
	meds.Get("/:id/stock", medicationHandler.GetStock)
	meds.Post("/", RequireAdmin(), medicationHandler.Create)
	meds.Put("/:id", RequireAdmin(), medicationHandler.Update)

	// Libro de stock e historial de uso (veterinarios y admins)
	stockHandler := NewStockHandler(deps.UseMedUC, deps.AdjustUC, deps.LogRepo, deps.UsageRepo)
	meds.Get("/:id/log", RequireClinician(), stockHandler.ListLog)
	meds.Get("/:id/usages", RequireClinician(), stockHandler.ListUsageByMedication)

	stockGroup := protected.Group("/stock")
	stockGroup.Post("/usages", RequireClinician(), stockHandler.UseMedications)
	stockGroup.Post("/adjustments", RequireAdmin(), stockHandler.AdjustStock)

	patients := protected.Group("/patients")
	patients.Get("/:id/usages", RequireClinician(), stockHandler.ListUsageByPatient)

	// Reposición (crear: veterinarios y admins; aprobar/rechazar/completar/borrar: admin)
	restocks := protected.Group("/restocks")
	restockHandler := NewRestockHandler(deps.RestockUC, deps.Logger)
	restocks.Post("/", RequireClinician(), restockHandler.Create)
	restocks.Get("/", RequireClinician(), restockHandler.List)
	restocks.Post("/:id/approve", RequireAdmin(), restockHandler.Approve)
	restocks.Post("/:id/reject", RequireAdmin(), restockHandler.Reject)
	restocks.Post("/:id/complete", RequireAdmin(), restockHandler.Complete)
	restocks.Delete("/:id", RequireAdmin(), restockHandler.Delete)

	// Notificaciones administrativas (solo admin)
	notifs := protected.Group("/notifications", RequireAdmin())
	notificationHandler := NewNotificationHandler(deps.NotifRepo)
	notifs.Get("/", notificationHandler.List)
	notifs.Patch("/:id/read", notificationHandler.MarkRead)

	// Reportes (solo admin)
	reportsGroup := protected.Group("/reports", RequireAdmin())
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/controlled-ledger", reportHandler.ControlledLedger)
}
