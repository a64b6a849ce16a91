package webserver

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/message"
	"gorm.io/gorm"

	"github.com/aldana/webmetrics/internal/archive"
	"github.com/aldana/webmetrics/internal/model"
	"github.com/aldana/webmetrics/internal/report"
	"github.com/aldana/webmetrics/internal/webserver/controller/home"
	"github.com/aldana/webmetrics/internal/webserver/controller/reports"
)

type Controllers struct {
	Reports      *reports.Controller
	Home         *home.Controller
	ErrorHandler func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, db *gorm.DB, printers map[string]*message.Printer) Controllers {
	visitsRepository := &model.VisitRepository{DB: db}
	registry := report.NewRegistry()
	archiveService := archive.NewService(visitsRepository, registry)

	return Controllers{
		Reports: reports.NewController(archiveService, registry, printers, cfg.Timezone),
		Home:    home.NewController(archiveService, registry, visitsRepository, printers, cfg.Timezone),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			if strings.HasPrefix(c.Path(), "/api") {
				return c.Status(code).JSON(fiber.Map{"error": err.Error()})
			}

			renderErr := c.Status(code).Render("error", fiber.Map{
				"Lang":    "en",
				"Title":   "Webmetrics",
				"Code":    code,
				"Message": err.Error(),
			}, "layout")

			if renderErr != nil {
				log.Println(renderErr)
				// In case the Render fails
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}

			return nil
		},
	}
}
