package routes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/journey-explainer/pkg/dataaggregator/source"
	"github.com/travigo/journey-explainer/pkg/planner"
)

// errorResponse maps the pipeline's error taxonomy onto a status code and client message.
// Anything unrecognised is an internal error reported with internalPrefix.
func errorResponse(err error, internalPrefix string) (int, string) {
	var validationError *planner.ValidationError
	var upstreamError *source.UpstreamError

	switch {
	case errors.As(err, &validationError):
		return fiber.StatusBadRequest, validationError.Message
	case errors.Is(err, source.ErrStationNotFound):
		return fiber.StatusNotFound, "Could not find valid stations"
	case errors.Is(err, source.ErrNoJourneys):
		return fiber.StatusNotFound, "No journeys found"
	case errors.As(err, &upstreamError):
		return fiber.StatusBadGateway, fmt.Sprintf("TfL API error: %d", upstreamError.StatusCode)
	case errors.Is(err, source.ErrUpstreamTimeout):
		return fiber.StatusGatewayTimeout, "TfL API timeout"
	default:
		return fiber.StatusInternalServerError, internalPrefix + err.Error()
	}
}

func sendError(c *fiber.Ctx, status int, message string) error {
	c.SendStatus(status)
	return c.JSON(fiber.Map{
		"detail": message,
	})
}

// ErrorHandler renders errors that escape a handler, such as unknown routes, in the same shape
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		code = fiberError.Code
	}

	return sendError(c, code, err.Error())
}
