package home

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aldana/webmetrics/internal/period"
)

// Dashboard renders the current week's visits. The table backing the page
// only lives for the duration of the request, so its handle is released
// once the rows have been handed to the view.
func (h *Controller) Dashboard(c *fiber.Ctx) error {
	lang := c.Params("lang")
	pr, ok := h.printers[lang]
	if !ok {
		return fiber.ErrNotFound
	}

	week, err := period.FromQuery(h.timezone, period.Week, "today")
	if err != nil {
		return fiber.ErrInternalServerError
	}
	id, err := h.archive.BuildReport(week)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	table, err := h.tables.Get(id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	defer h.tables.Delete(id)

	return c.Render("dashboard", fiber.Map{
		"Lang":        lang,
		"Title":       "Webmetrics",
		"PeriodTitle": week.LocalizedLongString(pr),
		"Rows":        table.Rows,
		"Totals":      table.Totals(),
		"TotalVisits": h.visits.Total(),
	}, "layout")
}
