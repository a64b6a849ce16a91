package reports

import (
	"golang.org/x/text/message"

	"github.com/aldana/webmetrics/internal/period"
	"github.com/aldana/webmetrics/internal/report"
)

type archiver interface {
	BuildReport(p *period.Period) (int, error)
	Rollback(checkpoint int)
}

type tablesRegistry interface {
	Get(id int) (*report.Table, error)
	Delete(id int)
	MostRecentID() int
}

type Controller struct {
	archive  archiver
	tables   tablesRegistry
	printers map[string]*message.Printer
	timezone string
}

func NewController(archive archiver, tables tablesRegistry, printers map[string]*message.Printer, timezone string) *Controller {
	return &Controller{
		archive:  archive,
		tables:   tables,
		printers: printers,
		timezone: timezone,
	}
}

func (c *Controller) printer(lang string) *message.Printer {
	if pr, ok := c.printers[lang]; ok {
		return pr
	}
	return c.printers["en"]
}
