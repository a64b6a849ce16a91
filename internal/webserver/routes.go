package webserver

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aldana/webmetrics/internal/webserver/controller"
)

func routes(app *fiber.App, controllers Controllers, supportedLanguages []string) {
	api := app.Group("/api")

	api.Get("/reports", controllers.Reports.Create)
	api.Get("/tables/:id", controllers.Reports.Table)
	api.Delete("/tables/:id", controllers.Reports.Delete)
	api.Delete("/tables", controllers.Reports.Rollback)

	langGroup := app.Group(fmt.Sprintf("/:lang<regex(%s)>", strings.Join(supportedLanguages, "|")), func(c *fiber.Ctx) error {
		c.Locals("Lang", c.Params("lang"))
		c.Locals("SupportedLanguages", supportedLanguages)
		c.Locals("Version", c.App().Config().AppName)
		return c.Next()
	})

	langGroup.Get("/", controllers.Home.Dashboard)

	app.Get("/", func(c *fiber.Ctx) error {
		return controller.Root(c, supportedLanguages)
	})
}
