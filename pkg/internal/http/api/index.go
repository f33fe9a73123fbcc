package api

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/cache"
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, pages *cache.PageCache) {
	app.Get("/", listIndexPost(pages))
	app.Get("/group/:slug/", listGroupPost)
	app.Get("/follow/", listFollowedPost)

	app.Get("/create/", getCreatePostForm)
	app.Post("/create/", createPost)

	posts := app.Group("/posts/:postId")
	{
		posts.Get("/", getPost)
		posts.Get("/edit/", getEditPostForm)
		posts.Post("/edit/", editPost)
		posts.Post("/comment/", createComment)
	}

	profiles := app.Group("/profile/:username")
	{
		profiles.Get("/", getProfile)
		profiles.Get("/follow/", followAccount)
		profiles.Post("/follow/", followAccount)
		profiles.Get("/unfollow/", unfollowAccount)
		profiles.Post("/unfollow/", unfollowAccount)
	}

	about := app.Group("/about")
	{
		about.Get("/author/", getAboutAuthor)
		about.Get("/tech/", getAboutTech)
	}
}
