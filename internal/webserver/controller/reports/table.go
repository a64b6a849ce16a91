package reports

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aldana/webmetrics/internal/report"
)

// Table returns a previously computed table by its handle.
func (c *Controller) Table(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	table, err := c.tables.Get(id)
	if errors.Is(err, report.ErrTableNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return ctx.JSON(table)
}

// Delete tombstones the table stored under the given handle. Deleting an
// unknown handle succeeds: the caller wanted it gone and it is.
func (c *Controller) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.ErrBadRequest
	}
	c.tables.Delete(id)
	return ctx.SendStatus(fiber.StatusNoContent)
}

// Rollback tombstones every table computed after the handle given in the
// "above" query parameter; without it the whole registry is reset.
func (c *Controller) Rollback(ctx *fiber.Ctx) error {
	c.archive.Rollback(ctx.QueryInt("above", 0))
	return ctx.SendStatus(fiber.StatusNoContent)
}
