package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BeautyProBR/beautypro-api/internal/audit"
	"github.com/BeautyProBR/beautypro-api/internal/config"
	domain "github.com/BeautyProBR/beautypro-api/internal/domain/appointment"
	"github.com/BeautyProBR/beautypro-api/internal/handlers"
	infraRepo "github.com/BeautyProBR/beautypro-api/internal/infra/repository"
	"github.com/BeautyProBR/beautypro-api/internal/middleware"
	"github.com/BeautyProBR/beautypro-api/internal/storage"
	ucAppointment "github.com/BeautyProBR/beautypro-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		domain.DayWindow{
			Start: cfg.BookingDayStart,
			End:   cfg.BookingDayEnd,
		},
		time.Duration(cfg.SlotIntervalMin)*time.Minute,
	)

	createPublicUC := ucAppointment.NewCreatePublicAppointment(
		appointmentRepo,
		availabilityUC,
		auditDispatcher,
	)

	resolveUC := ucAppointment.NewResolveAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	proposeUC := ucAppointment.NewProposeReschedule(
		appointmentRepo,
		auditDispatcher,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	servicePhotoHandler := handlers.NewServicePhotoHandler(db, photoStore)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		listUC,
		resolveUC,
		proposeUC,
	)

	financialHandler := handlers.NewFinancialHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createPublicUC)

	publicRateLimit := middleware.PublicRateLimit(cfg, rdb)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (link de agendamento)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(publicRateLimit)
		{
			publicAPI.GET("/professional/:publicID", publicHandler.GetProfessional)
			publicAPI.GET("/available-times/:publicID", publicHandler.AvailableTimes)
		}

		api.POST("/appointments/public/:publicID", publicRateLimit, publicHandler.CreateAppointment)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/user/profile", profileHandler.GetProfile)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)
			secured.POST("/services/:id/photo", servicePhotoHandler.Upload)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.POST("/appointments/:id/propose-reschedule", appointmentHandler.ProposeReschedule)

			// ------------------------------
			// FINANCIAL
			// ------------------------------
			secured.GET("/financial", financialHandler.List)
			secured.POST("/financial", financialHandler.Create)
			secured.GET("/financial/balance", financialHandler.Balance)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
