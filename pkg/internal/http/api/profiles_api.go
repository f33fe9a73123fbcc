package api

import (
	"fmt"

	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func getProfile(c *fiber.Ctx) error {
	requested := services.ParsePageNumber(c.Query("page"))

	listing, err := services.ListAuthorPost(c.Params("username"), exts.GetViewer(c), requested)
	if err != nil {
		return err
	}

	return c.JSON(listing)
}

func followAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	username := c.Params("username")

	if _, err := services.FollowAccount(user, username); err != nil {
		return err
	}

	return c.Redirect(fmt.Sprintf("/profile/%s/", username), fiber.StatusFound)
}

func unfollowAccount(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	username := c.Params("username")

	if err := services.UnfollowAccount(user, username); err != nil {
		return err
	}

	return c.Redirect(fmt.Sprintf("/profile/%s/", username), fiber.StatusFound)
}
