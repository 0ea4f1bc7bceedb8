package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-pos-ws/internal/handler"
	"go-pos-ws/internal/middleware"
	"go-pos-ws/internal/model"
	"go-pos-ws/internal/repository"
	"go-pos-ws/internal/service"
	"go-pos-ws/internal/ws"
	"go-pos-ws/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.Sale{}, &model.SaleItem{}, &model.User{}, &model.Setting{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	userRepo := repository.NewUserRepo(db)

	saleService := service.NewSaleService(productRepo, saleRepo, db, wsHub)
	productService := service.NewProductService(productRepo, wsHub)
	settingService := service.NewSettingService(settingRepo)
	snapshotService := service.NewSnapshotService(db)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo)

	saleHandler := handler.NewSaleHandler(saleService)
	productHandler := handler.NewProductHandler(productService)
	settingHandler := handler.NewSettingHandler(settingService)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Ledger v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Products
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Sales
	protected.Get("/sales", saleHandler.GetSales)
	protected.Get("/sales/:id", saleHandler.GetSale)
	protected.Post("/sales", saleHandler.CreateSale)
	protected.Delete("/sales/:id", saleHandler.VoidSale)

	// Settings
	protected.Get("/settings", settingHandler.GetSettings)
	protected.Put("/settings", settingHandler.UpsertSettings)

	// Backup / restore (Admin only)
	protected.Get("/backup/export", middleware.RequireRole(model.RoleAdmin), snapshotHandler.ExportSnapshot)
	protected.Post("/backup/restore", middleware.RequireRole(model.RoleAdmin), snapshotHandler.RestoreSnapshot)

	// User management (Admin only)
	protected.Get("/users", middleware.RequireRole(model.RoleAdmin), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequireRole(model.RoleAdmin), userHandler.GetUser)
	protected.Post("/users", middleware.RequireRole(model.RoleAdmin), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequireRole(model.RoleAdmin), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequireRole(model.RoleAdmin), userHandler.DeleteUser)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Drain the pool only after in-flight units of work have completed.
	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("failed to close database pool")
	}

	log.Info().Msg("Server exited")
}

// seedAdmin creates the default admin user if no user exists yet
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		FullName: "Administrator",
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Warn().Err(err).Msg("failed to hash admin password")
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Warn().Err(err).Msg("failed to create admin user")
	} else {
		log.Info().Msg("admin user created: admin / admin123")
	}
}
