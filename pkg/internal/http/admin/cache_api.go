package admin

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/cache"
	"github.com/gofiber/fiber/v2"
)

func adminClearPageCache(pages *cache.PageCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := pages.Clear(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
