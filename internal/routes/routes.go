package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmoura-dev/barber-booking-api/internal/audit"
	"github.com/dmoura-dev/barber-booking-api/internal/cache"
	"github.com/dmoura-dev/barber-booking-api/internal/config"
	"github.com/dmoura-dev/barber-booking-api/internal/handlers"
	"github.com/dmoura-dev/barber-booking-api/internal/holidays"
	infraRepo "github.com/dmoura-dev/barber-booking-api/internal/infra/repository"
	"github.com/dmoura-dev/barber-booking-api/internal/middleware"
	"github.com/dmoura-dev/barber-booking-api/internal/storage"
	ucBooking "github.com/dmoura-dev/barber-booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	calendar *holidays.Calendar,
	store *cache.Store,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	imageStore := storage.NewImageStore(cfg)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		calendar,
		store,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		calendar,
		store,
		auditDispatcher,
	)

	setStatusUC := ucBooking.NewSetBookingStatus(
		bookingRepo,
		store,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListBookingsByDate(
		bookingRepo,
	)

	statsUC := ucBooking.NewGetStats(
		bookingRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createBookingUC)
	bookingHandler := handlers.NewBookingHandler(db, listByDateUC, setStatusUC)
	serviceHandler := handlers.NewServiceHandler(db, imageStore)
	statsHandler := handlers.NewStatsHandler(statsUC)
	barbershopHandler := handlers.NewBarbershopHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (sessão de cliente)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)

			logged := publicAPI.Group("/")
			logged.Use(middleware.AuthMiddleware(cfg))
			{
				logged.GET("/:slug/availability", publicHandler.Availability)
				logged.POST("/:slug/bookings", publicHandler.CreateBooking)
			}
		}

		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.GET("/bookings", publicHandler.MyBookings)
		}

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		api.POST("/admin/login", authHandler.AdminLogin)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminMiddleware(cfg))
		{
			admin.GET("/barbershop", barbershopHandler.Get)
			admin.PATCH("/barbershop", barbershopHandler.Update)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)
			admin.POST("/services/:id/image", serviceHandler.UploadImage)

			admin.GET("/bookings/today", bookingHandler.ListToday)
			admin.GET("/bookings/:date", bookingHandler.ListByDate)
			admin.PATCH("/booking/:id/status", bookingHandler.SetStatus)

			admin.GET("/stats", statsHandler.Get)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
