package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/journey-explainer/pkg/config"
	"github.com/travigo/journey-explainer/pkg/ollama"
)

const (
	serviceName    = "London Journey Planner API"
	serviceVersion = "1.0.0"
)

func StatusRouter(router fiber.Router, cfg *config.Config, model ollama.Service) {
	router.Get("/", getRoot(cfg, model))
	router.Get("/status", getStatus(cfg, model))
}

func getRoot(cfg *config.Config, model ollama.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ollamaStatus := "unavailable"
		if model.IsLive(c.UserContext()) {
			ollamaStatus = "available"
		}

		return c.JSON(fiber.Map{
			"status":       "online",
			"service":      serviceName,
			"version":      serviceVersion,
			"ollama":       ollamaStatus,
			"ollama_model": cfg.Ollama.Model,
			"endpoints": []fiber.Map{
				{"GET /": "Health check"},
				{"GET /journey": "Get journey plans (from_, to)"},
				{"GET /journey/explain": "Get AI explanation (from_, to, index)"},
				{"POST /explain/custom": "Explain a journey (from_station, to_station, journey_index)"},
				{"GET /status": "Detailed service status"},
			},
		})
	}
}

func getStatus(cfg *config.Config, model ollama.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		available := model.IsLive(c.UserContext())

		tflStatus := "unconfigured"
		if cfg.TfL.HasCredentials() {
			tflStatus = "configured"
		}

		connection := "disconnected"
		if available {
			connection = "connected"
		}

		ollamaStatus := fiber.Map{
			"available": available,
			"host":      cfg.Ollama.Host,
			"model":     cfg.Ollama.Model,
			"status":    connection,
		}

		if available {
			models, err := model.ListModels(c.UserContext())
			if err != nil {
				log.Warn().Err(err).Msg("Failed to list Ollama models")
			} else {
				modelNames := []string{}
				for _, listed := range models {
					modelNames = append(modelNames, listed.Name)
				}
				ollamaStatus["models"] = modelNames
			}
		}

		return c.JSON(fiber.Map{
			"backend": "running",
			"tfl_api": tflStatus,
			"ollama":  ollamaStatus,
		})
	}
}
