package home

import (
	"golang.org/x/text/message"

	"github.com/aldana/webmetrics/internal/period"
	"github.com/aldana/webmetrics/internal/report"
)

type archiver interface {
	BuildReport(p *period.Period) (int, error)
}

type tablesRegistry interface {
	Get(id int) (*report.Table, error)
	Delete(id int)
}

type visitsCounter interface {
	Total() int64
}

type Controller struct {
	archive  archiver
	tables   tablesRegistry
	visits   visitsCounter
	printers map[string]*message.Printer
	timezone string
}

func NewController(archive archiver, tables tablesRegistry, visits visitsCounter, printers map[string]*message.Printer, timezone string) *Controller {
	return &Controller{
		archive:  archive,
		tables:   tables,
		visits:   visits,
		printers: printers,
		timezone: timezone,
	}
}
