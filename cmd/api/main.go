package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NasmeenI/Inventory-pro/internal/handler"
	"github.com/NasmeenI/Inventory-pro/internal/middleware"
	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/repository"
	"github.com/NasmeenI/Inventory-pro/internal/service"
	"github.com/NasmeenI/Inventory-pro/internal/ws"
	"github.com/NasmeenI/Inventory-pro/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.TransactionRequest{}, &model.User{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	requestRepo := repository.NewRequestRepo(db)
	userRepo := repository.NewUserRepo(db)

	authService := service.NewAuthService(userRepo)
	productService := service.NewProductService(productRepo, db, wsHub)
	requestService := service.NewRequestService(requestRepo, productRepo, db, wsHub)
	scanService := service.NewScanService(productRepo, wsHub)
	dashService := service.NewDashboardService(productRepo, requestRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	requestHandler := handler.NewRequestHandler(requestService)
	scanHandler := handler.NewScanHandler(scanService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Pro v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)
	auth.Get("/me", middleware.RequireAuth(userRepo), authHandler.Me)

	// The catalog is public; everything mutating is not.
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/products/:id/code", productHandler.GetIdentityCode)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Product mutation (admin only)
	protected.Post("/products", middleware.RequireAdmin(), productHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequireAdmin(), productHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequireAdmin(), productHandler.DeleteProduct)
	protected.Put("/products/:id/stock", middleware.RequireAdmin(), productHandler.SetStock)

	// Transaction requests (fine-grained rules live in internal/policy)
	protected.Get("/requests", requestHandler.GetRequests)
	protected.Get("/requests/:id", requestHandler.GetRequest)
	protected.Post("/requests", requestHandler.CreateRequest)
	protected.Put("/requests/:id", requestHandler.UpdateRequest)
	protected.Delete("/requests/:id", requestHandler.DeleteRequest)
	protected.Put("/requests/:id/approve", middleware.RequireAdmin(), requestHandler.ApproveRequest)
	protected.Put("/requests/:id/reject", middleware.RequireAdmin(), requestHandler.RejectRequest)

	// Scanner
	protected.Post("/scans", scanHandler.SubmitScan)
	protected.Get("/scans/recent", scanHandler.RecentScans)
	protected.Delete("/scans", scanHandler.ClearScans)

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/dashboard/activity", dashHandler.GetRecentActivity)

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
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin account when none exists yet.
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Name:     "Administrator",
		Email:    email,
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Printf("Admin user created: %s", email)
}
