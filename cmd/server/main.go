package main

import (
	"log"

	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/example/aquashop/internal/config"
	"github.com/example/aquashop/internal/database"
	"github.com/example/aquashop/internal/routes"
	"github.com/example/aquashop/internal/services"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := database.EnsureDefaultAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	app := routes.NewApp("./views", cfg.SessionKey)
	app.Use(logger.New())
	app.Static("/uploads", cfg.UploadDir)

	gateway := services.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	routes.Register(app, db, cfg, gateway)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
