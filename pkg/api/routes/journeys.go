package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/journey-explainer/pkg/ctdf"
	"github.com/travigo/journey-explainer/pkg/ollama"
	"github.com/travigo/journey-explainer/pkg/planner"
)

func JourneysRouter(router fiber.Router, journeyPlanner *planner.Planner, model ollama.Service) {
	router.Get("/journey", getJourneys(journeyPlanner, model))
	router.Get("/journey/explain", getJourneyExplanation(journeyPlanner))
	router.Post("/explain/custom", postCustomExplanation(journeyPlanner, model))
}

// stationParameter reads from_ and accepts from as an alias
func stationParameter(c *fiber.Ctx) string {
	if from := c.Query("from_"); from != "" {
		return from
	}

	return c.Query("from")
}

func getJourneys(journeyPlanner *planner.Planner, model ollama.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := stationParameter(c)
		to := c.Query("to")

		results, err := journeyPlanner.PlanJourney(c.UserContext(), from, to)
		if err != nil {
			status, message := errorResponse(err, "Internal error: ")
			return sendError(c, status, message)
		}

		journeysReduced, err := reduceJourneys(results.Journeys)
		if err != nil {
			return sendError(c, fiber.StatusInternalServerError, "Internal error: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"from":             from,
			"to":               to,
			"from_id":          results.FromStation.PrimaryIdentifier,
			"to_id":            results.ToStation.PrimaryIdentifier,
			"journeys":         journeysReduced,
			"count":            len(results.Journeys),
			"ollama_available": model.IsLive(c.UserContext()),
		})
	}
}

// reduceJourneys drops the internal stop references from the client response
func reduceJourneys(journeys []ctdf.JourneyPlan) (interface{}, error) {
	return sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, journeys)
}
