package api

import (
	pkg "git.solsynth.dev/hypernet/journal/pkg/internal"
	"github.com/gofiber/fiber/v2"
)

func getAboutAuthor(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title":       "About the author",
		"description": "Journal is a small blogging service where people publish posts, comment and follow each other.",
	})
}

func getAboutTech(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title":   "Technologies",
		"name":    pkg.AppName,
		"version": pkg.AppVersion,
		"stack":   []string{"Go", "Fiber", "GORM", "PostgreSQL", "Ristretto"},
	})
}
