package server

import (
	"log"

	"notekeep-be/internal/bootstrap"
	"notekeep-be/internal/config"
	"notekeep-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, notes are plain text
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	authRequired := serverutils.AuthRequired(c.Tokens)

	c.AuthController.RegisterRoutes(app)
	c.NoteController.RegisterRoutes(app, authRequired)
	c.UserController.RegisterRoutes(app, authRequired)

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		sqlDB, err := c.DB.DB()
		if err != nil || sqlDB.PingContext(ctx.Context()) != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).SendString("unavailable")
		}
		return ctx.SendString("ok")
	})
}
