package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	engine "github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/studio-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	ucAvailability "github.com/BruksfildServices01/studio-scheduler/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/studio-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	auditDispatcher *audit.Dispatcher,
	cfg *config.Config,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.BookingTimezone)
	clock := timezone.NewSystemClock(loc)
	availabilityEngine := engine.NewEngine(loc)

	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAvailability.NewGetAvailability(
		bookingRepo,
		availabilityEngine,
		clock,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		loc,
		clock,
	)

	changeBookingStatusUC := ucBooking.NewChangeBookingStatus(
		bookingRepo,
		auditDispatcher,
		clock,
	)

	listBookingsByMonthUC := ucBooking.NewListBookingsByMonth(
		bookingRepo,
		loc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	studioHandler := handlers.NewStudioHandler(db, auditDispatcher)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, loc)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		changeBookingStatusUC,
		listBookingsByMonthUC,
		clock,
		loc,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(rdb, "public", cfg.RateLimitPerMinute, time.Minute))
		{
			publicAPI.GET("/studios/:id/availability", availabilityHandler.Get)
			publicAPI.POST("/studios/:id/bookings", bookingHandler.Create)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(middleware.RateLimit(rdb, "auth", cfg.RateLimitPerMinute, time.Minute))
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/studio", studioHandler.Get)
			admin.PATCH("/studio", studioHandler.Update)

			admin.GET("/bookings/month", bookingHandler.ListByMonth)
			admin.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			admin.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			admin.PATCH("/bookings/:id/complete", bookingHandler.Complete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
