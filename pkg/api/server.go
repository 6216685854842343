package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/travigo/journey-explainer/pkg/api/routes"
	"github.com/travigo/journey-explainer/pkg/config"
	"github.com/travigo/journey-explainer/pkg/ollama"
	"github.com/travigo/journey-explainer/pkg/planner"
)

func NewApp(cfg *config.Config, journeyPlanner *planner.Planner, model ollama.Service) *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName:               "journey-explainer",
		ErrorHandler:          routes.ErrorHandler,
		DisableStartupMessage: true,
	})

	webApp.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
	}))
	webApp.Use(NewLogger())
	webApp.Use(NewRecoverer())

	routes.StatusRouter(webApp, cfg, model)
	routes.JourneysRouter(webApp, journeyPlanner, model)

	return webApp
}

func SetupServer(listen string, cfg *config.Config, journeyPlanner *planner.Planner, model ollama.Service) error {
	webApp := NewApp(cfg, journeyPlanner, model)

	return webApp.Listen(listen)
}
