package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aldana/webmetrics/internal/period"
)

// Create computes the report for the requested period and returns it along
// with the handle under which the table stays retrievable.
func (c *Controller) Create(ctx *fiber.Ctx) error {
	p, err := period.FromQuery(
		ctx.Query("tz", c.timezone),
		ctx.Query("period", period.Day),
		ctx.Query("date", "today"),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	id, err := c.archive.BuildReport(p)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	table, err := c.tables.Get(id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	pr := c.printer(ctx.Query("lang", "en"))
	return ctx.JSON(fiber.Map{
		"handle": id,
		"period": p.Label(),
		"range":  p.RangeString(),
		"title":  p.LocalizedLongString(pr),
		"rows":   table.Rows,
		"totals": table.Totals(),
	})
}
