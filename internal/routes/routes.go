package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/StudioBelezaApps/salon-crm/internal/audit"
	"github.com/StudioBelezaApps/salon-crm/internal/chat"
	"github.com/StudioBelezaApps/salon-crm/internal/config"
	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/handlers"
	infraRepo "github.com/StudioBelezaApps/salon-crm/internal/infra/repository"
	"github.com/StudioBelezaApps/salon-crm/internal/middleware"
	"github.com/StudioBelezaApps/salon-crm/internal/session"
	ucAppointment "github.com/StudioBelezaApps/salon-crm/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	chatStore chat.Store,
	sessions *session.Manager,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	store := gateway.NewStore(db, log)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(store)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// Toda mudança de sessão vira linha de auditoria.
	go func() {
		_, events := sessions.Subscribe()
		for ev := range events {
			userID := ev.UserID
			auditDispatcher.Dispatch(audit.Event{
				UserID:   &userID,
				Action:   string(ev.Type),
				Entity:   "session",
				Metadata: map[string]any{"email": ev.Email},
			})
		}
	}()

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	var primary ucAppointment.Submitter
	if cfg.Appointments.EndpointURL != "" {
		primary = ucAppointment.NewHTTPSubmitter(cfg.Appointments.EndpointURL)
	}
	fallback := ucAppointment.NewStoreSubmitter(appointmentRepo)
	submitter := ucAppointment.NewTwoStepSubmitter(primary, fallback, log)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		submitter,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)

	clientHandler := handlers.NewClientHandler(store)
	productHandler := handlers.NewProductHandler(store)
	serviceHandler := handlers.NewServiceHandler(store)
	professionalHandler := handlers.NewProfessionalHandler(store)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		transitionAppointmentUC,
		deleteAppointmentUC,
	)

	financialHandler := handlers.NewFinancialHandler(store)
	settingsHandler := handlers.NewSettingsHandler(store)
	automationHandler := handlers.NewAutomationHandler(store)
	chatHandler := handlers.NewChatHandler(chatStore)
	dashboardHandler := handlers.NewDashboardHandler(store, appointmentRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(store)

	publicHandler := handlers.NewPublicHandler(appointmentRepo)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/callback", authHandler.Callback)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/refresh", authHandler.Refresh)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.PUT("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/professionals", professionalHandler.List)
			secured.POST("/professionals", professionalHandler.Create)
			secured.PUT("/professionals/:id", professionalHandler.Update)
			secured.DELETE("/professionals/:id", professionalHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.POST("/appointments/:id/complete", appointmentHandler.Complete)
			secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/financial/entries", financialHandler.List)
			secured.POST("/financial/incomes", financialHandler.CreateIncome)
			secured.POST("/financial/expenses", financialHandler.CreateExpense)
			secured.GET("/financial/report", financialHandler.Report)

			secured.GET("/settings/general", settingsHandler.GetGeneral)
			secured.PUT("/settings/general", settingsHandler.PutGeneral)
			secured.GET("/settings/loyalty", settingsHandler.GetLoyalty)
			secured.PUT("/settings/loyalty", settingsHandler.PutLoyalty)

			secured.GET("/automations", automationHandler.List)
			secured.POST("/automations", automationHandler.Create)
			secured.POST("/automations/:id/toggle", automationHandler.Toggle)
			secured.DELETE("/automations/:id", automationHandler.Delete)

			secured.GET("/chat/contacts", chatHandler.Contacts)
			secured.GET("/chat/contacts/:id/messages", chatHandler.Conversation)
			secured.POST("/chat/contacts/:id/messages", chatHandler.Send)

			secured.GET("/dashboard", dashboardHandler.Summary)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
