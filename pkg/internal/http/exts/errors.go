package exts

import (
	"errors"

	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// NotFound renders the custom not-found response.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"code":  fiber.StatusNotFound,
		"error": "page not found",
		"path":  c.OriginalURL(),
	})
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, ErrLoginRequired), errors.Is(err, services.ErrUnauthorized):
		return c.Redirect(LoginRedirectURL(c), fiber.StatusFound)
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":   fiber.StatusBadRequest,
			"error":  "invalid form",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		return NotFound(c)
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"code":  fiber.StatusForbidden,
			"error": err.Error(),
		})
	case errors.As(err, &fiberErr):
		if fiberErr.Code == fiber.StatusNotFound {
			return NotFound(c)
		}
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"code":  fiberErr.Code,
			"error": fiberErr.Message,
		})
	}

	log.Error().Err(err).Str("path", c.OriginalURL()).Msg("An error occurred when handling request...")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":  fiber.StatusInternalServerError,
		"error": "internal server error",
	})
}
