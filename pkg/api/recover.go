package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/panics"
)

// NewRecoverer turns a panicking handler into a 500 response
func NewRecoverer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		var catcher panics.Catcher

		catcher.Try(func() {
			err = c.Next()
		})

		if recovered := catcher.Recovered(); recovered != nil {
			log.Error().
				Str("path", c.Path()).
				Str("stack", string(recovered.Stack)).
				Msgf("Recovered from panic: %v", recovered.Value)

			return fiber.NewError(fiber.StatusInternalServerError, "Internal error: "+fmt.Sprint(recovered.Value))
		}

		return err
	}
}
