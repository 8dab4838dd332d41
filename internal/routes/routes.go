package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/aquashop/internal/config"
	"github.com/example/aquashop/internal/handlers"
	"github.com/example/aquashop/internal/middleware"
	"github.com/example/aquashop/internal/services"
)

// Register wires up all HTTP routes: the session-guarded HTML dashboard at
// the root and the token-guarded JSON API under /api.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, gateway services.Gateway) {
	sessions := middleware.NewSessionStore()
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	adminAuthHandler := handlers.NewAdminAuthHandler(db, sessions)
	adminFishHandler := handlers.NewAdminFishHandler(db, cfg.UploadDir)
	adminUserHandler := handlers.NewAdminUserHandler(db)
	adminOrderHandler := handlers.NewAdminOrderHandler(db)

	authHandler := handlers.NewAuthHandler(db, cfg)
	fishHandler := handlers.NewFishHandler(db)
	orderHandler := handlers.NewOrderHandler(db, telegram)
	paymentHandler := handlers.NewPaymentHandler(db, gateway)

	// Dashboard (HTML, session cookie)
	app.Get("/", adminAuthHandler.LoginForm)
	app.Post("/", adminAuthHandler.Login)
	app.Get("/logout", adminAuthHandler.Logout)

	admin := app.Group("", middleware.RequireAdmin(sessions))
	admin.Get("/home", adminFishHandler.Home)
	admin.Get("/create_fish", adminFishHandler.CreateForm)
	admin.Post("/create_fish", adminFishHandler.Create)
	admin.Get("/retrieve_fish", adminFishHandler.List)
	admin.Get("/update_fish/:id", adminFishHandler.UpdateForm)
	admin.Post("/update_fish/:id", adminFishHandler.Update)
	admin.Get("/delete_fish/:id", adminFishHandler.DeleteForm)
	admin.Post("/delete_fish/:id", adminFishHandler.Delete)
	admin.Get("/userlist", adminUserHandler.List)
	admin.Get("/user/block/:id", adminUserHandler.Block)
	admin.Get("/user/unblock/:id", adminUserHandler.Unblock)
	admin.Get("/orders", adminOrderHandler.List)
	admin.Get("/orders/:id", adminOrderHandler.Detail)
	admin.Post("/orders/:id/status", adminOrderHandler.UpdateStatus)

	// Public API (bearer token where noted)
	api := app.Group("/api")
	api.Get("/fishes", fishHandler.ListFishes)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/create-payment-intent", paymentHandler.CreateIntent)

	protected := api.Group("", middleware.AuthMiddleware(cfg))
	protected.Get("/profile", authHandler.Profile)
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Post("/payments/verify", paymentHandler.VerifyPayment)
}
