package api

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/journal/pkg/internal/cache"
	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

func listIndexPost(pages *cache.PageCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requested := services.ParsePageNumber(c.Query("page"))

		body, err := pages.Serve(c.Context(), requested, func(page int) ([]byte, int, error) {
			listing, err := services.ListAllPost(page)
			if err != nil {
				return nil, 0, err
			}
			body, err := jsoniter.Marshal(fiber.Map{
				"index": true,
				"page":  listing.Page,
				"data":  listing.Data,
			})
			return body, listing.Page.Number, err
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", int(pages.Window().Seconds())))
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(body)
	}
}

func getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return exts.NotFound(c)
	}

	detail, err := services.GetPostDetail(uint(id))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"post":       detail.Post,
		"post_count": detail.PostCount,
		"comments":   detail.Comments,
		"form": fiber.Map{
			"action": fmt.Sprintf("/posts/%d/comment/", detail.Post.ID),
			"fields": []string{"text"},
		},
	})
}

func postFormSchema() fiber.Map {
	return fiber.Map{
		"fields":   []string{"text", "group", "image"},
		"required": []string{"text"},
	}
}

func getCreatePostForm(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}

	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"form":   postFormSchema(),
		"groups": groups,
	})
}

// readPostImage stores the optional "image" upload of a multipart submission.
// Plain form bodies and multipart bodies without the field carry no image.
func readPostImage(c *fiber.Ctx) (*models.PostImage, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if file == nil {
		return nil, nil
	}

	image, err := services.StorePostImage(file)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// discardPostImage drops an upload whose post was never saved.
func discardPostImage(image *models.PostImage) {
	if image == nil {
		return
	}
	if err := services.RemovePostImage(*image); err != nil {
		log.Warn().Err(err).Str("path", image.Path).Msg("Failed to remove an orphan image...")
	}
}

func createPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data services.PostForm
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := services.ValidateNewPost(&data); err != nil {
		return err
	}

	image, err := readPostImage(c)
	if err != nil {
		return err
	}

	if _, err := services.NewPost(user, data, image); err != nil {
		discardPostImage(image)
		return err
	}

	return c.Redirect(fmt.Sprintf("/profile/%s/", user.Name), fiber.StatusFound)
}

func getEditPostForm(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, _ := c.ParamsInt("postId", 0)
	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return err
	}
	if post.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d/", post.ID), fiber.StatusFound)
	}

	groups, err := services.ListGroup()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"form":    postFormSchema(),
		"groups":  groups,
		"is_edit": true,
		"post":    post,
	})
}

func editPost(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	id, _ := c.ParamsInt("postId", 0)
	detail := fmt.Sprintf("/posts/%d/", id)

	var data services.PostForm
	if err := c.BodyParser(&data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return err
	}
	if post.AuthorID != user.ID {
		return c.Redirect(detail, fiber.StatusFound)
	}
	if err := services.ValidateEditPost(&data); err != nil {
		return err
	}

	image, err := readPostImage(c)
	if err != nil {
		return err
	}

	if _, err := services.EditPost(user, post.ID, data, image); err != nil {
		discardPostImage(image)
		if errors.Is(err, services.ErrForbidden) {
			return c.Redirect(detail, fiber.StatusFound)
		}
		return err
	}

	return c.Redirect(detail, fiber.StatusFound)
}
