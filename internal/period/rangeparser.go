package period

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rickb777/date/v2"
)

// ErrNotARange signals that an expression does not have the shape of a
// date range and may be retried as something else by the caller.
var ErrNotARange = errors.New("not a date range expression")

// ParseRange parses a range expression made of two date literals separated
// by a comma, such as "2026-08-01,2026-08-26". Either side may also be one
// of the relative keywords accepted by FromQuery, resolved against loc.
// Expressions without exactly two sides fail with ErrNotARange; sides that
// are not parseable dates fail with ErrInvalidDate.
func ParseRange(expr string, loc *time.Location) (start, end date.Date, err error) {
	parts := strings.Split(expr, ",")
	if len(parts) != 2 {
		return date.Zero, date.Zero, fmt.Errorf("%w: %q", ErrNotARange, expr)
	}
	start, err = parseDateSpec(strings.TrimSpace(parts[0]), loc)
	if err != nil {
		return date.Zero, date.Zero, err
	}
	end, err = parseDateSpec(strings.TrimSpace(parts[1]), loc)
	if err != nil {
		return date.Zero, date.Zero, err
	}
	return start, end, nil
}
