package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cheflinkhq/chef-marketplace/internal/audit"
	"github.com/cheflinkhq/chef-marketplace/internal/cache"
	"github.com/cheflinkhq/chef-marketplace/internal/chat"
	"github.com/cheflinkhq/chef-marketplace/internal/config"
	"github.com/cheflinkhq/chef-marketplace/internal/handlers"
	infraRepo "github.com/cheflinkhq/chef-marketplace/internal/infra/repository"
	"github.com/cheflinkhq/chef-marketplace/internal/middleware"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
	"github.com/cheflinkhq/chef-marketplace/internal/storage"
	ucBooking "github.com/cheflinkhq/chef-marketplace/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	store, err := storage.FromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	chefListCache := cache.New(cfg)

	chatHub := chat.NewHub()
	go chatHub.Run()

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	listForCustomerUC := ucBooking.NewListBookingsForCustomer(bookingRepo)
	listForChefUC := ucBooking.NewListBookingsForChef(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)
	chefHandler := handlers.NewChefHandler(db, store, chefListCache, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(db, chefListCache, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listForCustomerUC,
		listForChefUC,
		updateStatusUC,
	)

	// ======================================================
	// CHAT (websocket broadcast)
	// ======================================================
	r.GET("/ws/chat", chatHub.Serve)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CHEF DIRECTORY
		// ------------------------------
		api.GET("/chefs/public", chefHandler.GetVerifiedChefs)
		api.GET("/chefs/user/:userId", chefHandler.GetChefByUserID)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// chef self-service
			secured.GET("/chefs/me", chefHandler.GetMyProfile)
			secured.POST("/chefs", chefHandler.UpsertProfile)
			secured.PUT("/chefs/profile", chefHandler.UpsertProfile)
			secured.POST("/chefs/menu", chefHandler.AddMenuItem)

			// bookings
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.ListForCustomer)
			secured.GET("/bookings/chef", bookingHandler.ListForChef)
			secured.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)

			// admin
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/pending", adminHandler.ListPendingChefs)
				admin.PUT("/approve/:id", adminHandler.ApproveChef)
				admin.DELETE("/reject/:id", adminHandler.RejectChef)
				admin.GET("/audit-logs", adminHandler.ListAuditLogs)
			}
		}

		// parameterized route last so /chefs/public and /chefs/me win
		api.GET("/chefs/:id", chefHandler.GetChefByID)
	}
}
