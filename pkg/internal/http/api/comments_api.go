package api

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func createComment(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, _ := c.ParamsInt("postId", 0)

	var data services.CommentForm
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := services.NewComment(user, uint(id), data); err != nil {
		var validationErr *services.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		// Rejected comments go back to the post like accepted ones
		log.Debug().Err(err).Int("post", id).Msg("Rejected an invalid comment.")
	}

	return c.Redirect(fmt.Sprintf("/posts/%d/", id), fiber.StatusFound)
}
