package main

import (
	"log"

	"github.com/framelight/studio-api/internal/application/service"
	"github.com/framelight/studio-api/internal/config"
	"github.com/framelight/studio-api/internal/infrastructure/cache"
	"github.com/framelight/studio-api/internal/infrastructure/database"
	"github.com/framelight/studio-api/internal/infrastructure/repository"
	"github.com/framelight/studio-api/internal/presentation/http/handler"
	"github.com/framelight/studio-api/internal/presentation/http/routes"
	"github.com/framelight/studio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default catalog and admin user
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	addonRepo := repository.NewAddonRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Wrap the catalog repositories with a Redis read-through cache when
	// an address is configured
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		packageRepo = cache.NewPackageCache(packageRepo, rdb, cfg.Redis.CacheTTL)
		addonRepo = cache.NewAddonCache(addonRepo, rdb, cfg.Redis.CacheTTL)
		log.Printf("Catalog cache enabled via Redis at %s", cfg.Redis.Addr)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	clientService := service.NewClientService(clientRepo)
	catalogService := service.NewCatalogService(packageRepo, addonRepo)
	bookingService := service.NewBookingService(bookingRepo, clientRepo, paymentRepo)
	invoiceService := service.NewInvoiceService(bookingRepo, packageRepo, addonRepo)
	dashboardService := service.NewDashboardService(bookingRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Client:    handler.NewClientHandler(clientService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Booking:   handler.NewBookingHandler(bookingService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, &cfg.Invoice),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start server
	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s (env: %s)", cfg.App.Name, addr, cfg.App.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
