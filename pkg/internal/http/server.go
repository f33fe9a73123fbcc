package http

import (
	pkg "git.solsynth.dev/hypernet/journal/pkg/internal"
	"git.solsynth.dev/hypernet/journal/pkg/internal/cache"
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/admin"
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/journal/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/journal/pkg/internal/monitoring"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var IReader *exts.TokenReader

type HTTPApp struct {
	app *fiber.App
}

func NewServer(pages *cache.PageCache) *HTTPApp {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          pkg.AppName,
		AppName:               pkg.AppName,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             16 * 1024 * 1024,
		EnablePrintRoutes:     viper.GetBool("debug.print_routes"),
		ErrorHandler:          exts.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
	}))

	app.Use(logger.New(logger.Config{
		Format: "${status} | ${latency} | ${method} ${path}\n",
		Output: log.Logger,
	}))
	app.Use(monitoring.NewMiddleware())

	app.Use(exts.ContextMiddleware(IReader))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	admin.MapControllers(app, "/admin", pages)
	api.MapAPIs(app, pages)

	app.Use(exts.NotFound)

	return &HTTPApp{app}
}

// App exposes the underlying fiber application, used by the tests to issue requests.
func (v *HTTPApp) App() *fiber.App {
	return v.app
}

func (v *HTTPApp) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

func (v *HTTPApp) Shutdown() error {
	return v.app.Shutdown()
}
