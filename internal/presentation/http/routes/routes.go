package routes

import (
	"time"

	"github.com/framelight/studio-api/internal/config"
	domainRepo "github.com/framelight/studio-api/internal/domain/repository"
	"github.com/framelight/studio-api/internal/presentation/http/handler"
	"github.com/framelight/studio-api/internal/presentation/http/middleware"
	"github.com/framelight/studio-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Client    *handler.ClientHandler
	Catalog   *handler.CatalogHandler
	Booking   *handler.BookingHandler
	Invoice   *handler.InvoiceHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		if deps.IdempotencyRepo != nil {
			protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			}))
		}

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/auth/profile", h.Auth.Profile)

	clients := rg.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	packages := rg.Group("/packages")
	{
		packages.GET("", h.Catalog.ListPackages)
		packages.POST("", h.Catalog.CreatePackage)
		packages.GET("/:id", h.Catalog.GetPackage)
		packages.PUT("/:id", h.Catalog.UpdatePackage)
		packages.DELETE("/:id", h.Catalog.DeletePackage)
	}

	addons := rg.Group("/addons")
	{
		addons.GET("", h.Catalog.ListAddons)
		addons.POST("", h.Catalog.CreateAddon)
		addons.GET("/:id", h.Catalog.GetAddon)
		addons.PUT("/:id", h.Catalog.UpdateAddon)
		addons.DELETE("/:id", h.Catalog.DeleteAddon)
	}

	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.Booking.List)
		bookings.POST("", h.Booking.Create)
		bookings.GET("/:id", h.Booking.Get)
		bookings.PUT("/:id", h.Booking.Update)
		bookings.DELETE("/:id", h.Booking.Delete)
		bookings.POST("/:id/payments", h.Booking.RecordPayment)
		bookings.GET("/:id/payments", h.Booking.ListPayments)
		bookings.GET("/:id/invoice", h.Invoice.Get)
		bookings.GET("/:id/invoice/pdf", h.Invoice.GetPDF)
	}

	rg.GET("/dashboard", h.Dashboard.Stats)
}
