package routes

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// NewApp builds the fiber application: view engine, cookie encryption and
// the shared error handler. Routes are wired separately via Register.
// sessionKey must be a base64 encoded 32-byte key.
func NewApp(viewsDir, sessionKey string) *fiber.App {
	engine := html.New(viewsDir, ".html")

	app := fiber.New(fiber.Config{
		AppName:      "Aquashop Backend",
		Views:        engine,
		BodyLimit:    100 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(encryptcookie.New(encryptcookie.Config{Key: sessionKey}))

	return app
}

// errorHandler converts fiber errors into JSON for API routes and plain
// responses for the dashboard. Unexpected errors are logged and hidden
// behind a generic 500.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{"error": message})
	}

	return c.Status(code).SendString(message)
}
