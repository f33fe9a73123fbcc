package admin

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func adminListGroup(c *fiber.Ctx) error {
	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func adminCreateGroup(c *fiber.Ctx) error {
	var data struct {
		Title       string `json:"title" validate:"required,max=200"`
		Slug        string `json:"slug" validate:"required,lowercase,max=64"`
		Description string `json:"description" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Title, data.Slug, data.Description)
	if err != nil {
		return err
	}

	log.Info().Str("slug", group.Slug).Msg("Group created by administrator.")
	return c.Status(fiber.StatusCreated).JSON(group)
}

func adminDeleteGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return err
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	log.Info().Str("slug", group.Slug).Msg("Group deleted by administrator.")
	return c.SendStatus(fiber.StatusOK)
}
