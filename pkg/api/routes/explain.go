package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/journey-explainer/pkg/ollama"
	"github.com/travigo/journey-explainer/pkg/planner"
)

type customExplanationRequest struct {
	FromStation  string `json:"from_station"`
	ToStation    string `json:"to_station"`
	JourneyIndex *int   `json:"journey_index"`
}

func getJourneyExplanation(journeyPlanner *planner.Planner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := stationParameter(c)
		to := c.Query("to")

		index, err := strconv.Atoi(c.Query("index", "0"))
		if err != nil {
			return sendError(c, fiber.StatusBadRequest, "Parameter index should be an integer")
		}

		explained, err := journeyPlanner.ExplainJourney(c.UserContext(), from, to, index)
		if err != nil {
			status, message := errorResponse(err, "Failed to generate explanation: ")
			return sendError(c, status, message)
		}

		return c.JSON(fiber.Map{
			"explanation":   explained.Explanation.Text,
			"journey_index": explained.Index,
			"from":          from,
			"to":            to,
			"journey_summary": fiber.Map{
				"duration": explained.Journey.Duration,
				"changes":  explained.Journey.Changes(),
				"modes":    explained.Journey.Modes(),
			},
			"ollama_used": explained.Explanation.ModelUsed,
		})
	}
}

// postCustomExplanation reports input problems as 400 and every other failure as a plain 500
func postCustomExplanation(journeyPlanner *planner.Planner, model ollama.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request customExplanationRequest
		if err := c.BodyParser(&request); err != nil {
			return sendError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		index := 0
		if request.JourneyIndex != nil {
			index = *request.JourneyIndex
		}

		explained, err := journeyPlanner.ExplainJourney(c.UserContext(), request.FromStation, request.ToStation, index)
		if err != nil {
			status, message := errorResponse(err, "")
			if status != fiber.StatusBadRequest {
				return sendError(c, fiber.StatusInternalServerError, err.Error())
			}
			return sendError(c, status, message)
		}

		return c.JSON(fiber.Map{
			"explanation":      explained.Explanation.Text,
			"ollama_available": model.IsLive(c.UserContext()),
		})
	}
}
