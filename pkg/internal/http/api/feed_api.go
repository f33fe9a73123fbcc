package api

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listGroupPost(c *fiber.Ctx) error {
	requested := services.ParsePageNumber(c.Query("page"))

	listing, err := services.ListGroupPost(c.Params("slug"), requested)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"group": listing.Group,
		"page":  listing.Page,
		"data":  listing.Data,
	})
}

func listFollowedPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	requested := services.ParsePageNumber(c.Query("page"))
	listing, err := services.ListFollowedPost(exts.GetViewer(c), requested)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"follow": true,
		"page":   listing.Page,
		"data":   listing.Data,
	})
}
