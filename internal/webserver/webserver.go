package webserver

import (
	"embed"
	"io/fs"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/message"

	"github.com/aldana/webmetrics/internal/i18n"
	"github.com/aldana/webmetrics/internal/infrastructure"
)

//go:embed embedded
var embedded embed.FS

// Config holds the settings the web layer needs from the host application.
type Config struct {
	Version  string
	Timezone string
}

// Translations exposes the embedded translation dictionaries so the host
// application can build its printers from them.
func Translations() fs.FS {
	dir, err := fs.Sub(embedded, "embedded/translations")
	if err != nil {
		log.Fatal(err)
	}
	return dir
}

// New builds the Fiber application and sets up the required routes.
func New(cfg Config, printers map[string]*message.Printer, controllers Controllers) *fiber.App {
	views, err := fs.Sub(embedded, "embedded/views")
	if err != nil {
		log.Fatal(err)
	}
	engine, err := infrastructure.TemplateEngine(views, printers)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		AppName:               cfg.Version,
		DisableStartupMessage: true,
		ErrorHandler:          controllers.ErrorHandler,
	})

	routes(app, controllers, i18n.SupportedLanguages(printers))

	return app
}
