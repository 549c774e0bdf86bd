package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
	"netplas-inventory/internal/router"
	"netplas-inventory/internal/service"
	"netplas-inventory/internal/ws"
	"netplas-inventory/pkg/config"
	"netplas-inventory/pkg/database"
	"netplas-inventory/pkg/jwt"
	"netplas-inventory/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Setup Database
	db := database.ConnectDB(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 3. Setup WebSocket Hub and the optional broker
	wsHub := ws.NewHub()
	go wsHub.Run()

	publisher := events.Multi(wsHub)
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("Failed to connect to AMQP broker: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = events.Multi(wsHub, amqpPublisher)
		log.Printf("Publishing events to exchange %q", cfg.AMQPExchange)
	}

	// 4. Dependency Injection (Wiring Layers)
	repos := repository.New(db)
	policy := password.NewPolicy(cfg.PasswordMinLength, cfg.PasswordMaxSimilarity)
	issuer := jwt.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	services := router.Services{
		Auth:          service.NewAuthService(repos, issuer, policy, publisher),
		Users:         service.NewUserService(repos, policy, publisher),
		ProductStocks: service.NewProductStockService(repos, publisher),
		RawStocks:     service.NewRawStockService(repos, publisher),
		Catalog:       service.NewCatalogService(repos, publisher),
		Clients:       service.NewClientService(repos, publisher),
		Suppliers:     service.NewSupplierService(repos, publisher),
		Orders:        service.NewOrderService(repos, publisher),
		Damage:        service.NewDamageService(repos, publisher),
		Budget:        service.NewBudgetService(repos),
		Hub:           wsHub,
	}

	// 5. Seed the admin account
	seedAdmin(services.Users, cfg)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	router.Setup(app, services)

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	wsHub.Stop()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server exited")
}

// seedAdmin creates the configured admin account on first start. Nothing is
// seeded without SEED_ADMIN_PASSWORD; config validation pairs it with its own
// SEED_ADMIN_SECRET_ANSWER.
func seedAdmin(users service.UserService, cfg *config.Config) {
	if cfg.SeedAdminPassword == "" {
		return
	}

	_, err := users.CreateUser(nil, service.CreateUserRequest{
		Email:        cfg.SeedAdminEmail,
		Password:     cfg.SeedAdminPassword,
		Name:         "Netplas",
		Surname:      "Administrator",
		Role:         model.RoleAdmin,
		SecretAnswer: cfg.SeedAdminSecretAnswer,
	})
	switch {
	case err == nil:
		log.Printf("Admin user created: %s", cfg.SeedAdminEmail)
	case service.KindOf(err) == service.KindConflict:
		// Already seeded on an earlier start
	default:
		log.Printf("Warning: Failed to create admin user: %v", err)
	}
}
