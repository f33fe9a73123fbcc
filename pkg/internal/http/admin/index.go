package admin

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/cache"
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"github.com/gofiber/fiber/v2"
)

// guard runs on matched admin routes only, unknown admin paths fall through to the not found handler.
func guard(c *fiber.Ctx) error {
	if err := exts.EnsureAdmin(c); err != nil {
		return err
	}
	return c.Next()
}

func MapControllers(app *fiber.App, baseURL string, pages *cache.PageCache) {
	admin := app.Group(baseURL)
	{
		admin.Get("/groups", guard, adminListGroup)
		admin.Post("/groups", guard, adminCreateGroup)
		admin.Delete("/groups/:slug", guard, adminDeleteGroup)
		admin.Delete("/cache", guard, adminClearPageCache(pages))
	}
}
