// Package server assembles the Fiber application and its routes.
package server

import (
	"errors"

	"grocery/internal/handlers"
	"grocery/internal/metrics"
	"grocery/internal/middleware"
	"grocery/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Log         *zap.Logger
	CORSOrigins string

	Auth          *services.AuthService
	Users         *services.UserService
	Profiles      *services.ProfileService
	Items         *services.ItemService
	ShoppingLists *services.ShoppingListService
}

// New builds the Fiber app. /, /status, /api-docs, /metrics, /user/signup and
// /user/login are public; every other route requires a bearer token.
func New(d Deps) *fiber.App {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	if d.CORSOrigins == "" {
		d.CORSOrigins = "*"
	}
	metrics.Init()

	app := fiber.New(fiber.Config{
		AppName:               "grocery",
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	// --- Middleware ---
	app.Use(middleware.Recover(log))
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.Metrics())

	// --- Public routes ---
	handlers.NewSystemHandler().RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	userHandler := handlers.NewUserHandler(d.Users, d.Auth, log)
	userHandler.RegisterPublicRoutes(app)

	// --- Protected routes ---
	protected := app.Group("", middleware.AuthRequired(d.Auth, log))
	handlers.NewItemHandler(d.Items, log).RegisterRoutes(protected)
	handlers.NewShoppingListHandler(d.ShoppingLists, log).RegisterRoutes(protected)
	handlers.NewProfileHandler(d.Profiles, log).RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code, msg = fe.Code, fe.Message
	}
	return c.Status(code).JSON(fiber.Map{
		"status":       "error",
		"errorMessage": msg,
	})
}
