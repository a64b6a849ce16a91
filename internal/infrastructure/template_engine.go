package infrastructure

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/message"
)

// TemplateEngine builds the HTML rendering engine used by the dashboard,
// wiring the translation printers into the templates through the "t" func.
func TemplateEngine(viewsFS fs.FS, printers map[string]*message.Printer) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...interface{}) template.HTML {
		return template.HTML(printers[lang].Sprintf(key, values...))
	})

	return engine, nil
}
