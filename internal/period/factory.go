package period

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/rickb777/date/v2"
)

// multiplePeriodPattern recognizes the "last<N>"/"previous<N>" shorthands.
// It is anchored and case-sensitive; the digits are optional and default
// to one period.
var multiplePeriodPattern = regexp.MustCompile(`^(last|previous)([0-9]*)$`)

// IsMultiplePeriod reports whether dateSpec describes more than one period
// of the given label, either through the last/previous shorthand or a
// literal range expression. A spec whose label is already "range" never
// counts as multiple: it is routed to a range period regardless.
func IsMultiplePeriod(dateSpec, label string) bool {
	if label == Range {
		return false
	}
	if multiplePeriodPattern.MatchString(dateSpec) {
		return true
	}
	_, _, err := ParseRange(dateSpec, time.UTC)
	return err == nil
}

// NewAdvanced builds a period from an already validated label and a raw
// date spec. Range expressions, last/previous shorthands and the explicit
// "range" label produce a range; anything else is parsed as a single date
// and handed over to New. Relative keywords resolve against loc.
func NewAdvanced(label, dateSpec string, loc *time.Location) (*Period, error) {
	if label == Range || IsMultiplePeriod(dateSpec, label) {
		return newRangeFromSpec(dateSpec, loc)
	}
	d, err := parseDateSpec(dateSpec, loc)
	if err != nil {
		return nil, err
	}
	return New(label, d)
}

// FromQuery builds a period from the usual report request parameters. An
// empty timezone defaults to UTC. The "range" label always yields a range
// bounded by today in the given timezone; for the other labels the
// relative keywords now, today, yesterday and yesterdaySameTime resolve
// against the timezone before delegating to New.
func FromQuery(timezone, label, dateSpec string) (*Period, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidDate, timezone)
	}
	return NewAdvanced(label, dateSpec, loc)
}

func newRangeFromSpec(dateSpec string, loc *time.Location) (*Period, error) {
	if m := multiplePeriodPattern.FindStringSubmatch(dateSpec); m != nil {
		n := 1
		if m[2] != "" {
			n, _ = strconv.Atoi(m[2])
			if n < 1 {
				n = 1
			}
		}
		end := todayIn(loc)
		if m[1] == "previous" {
			end--
		}
		return NewRange(end-date.Date(n-1), end)
	}
	start, end, err := ParseRange(dateSpec, loc)
	if err == nil {
		return NewRange(start, end)
	}
	if !errors.Is(err, ErrNotARange) {
		return nil, err
	}
	// A single date under the range label spans from that date to today.
	start, err = parseDateSpec(dateSpec, loc)
	if err != nil {
		return nil, err
	}
	return NewRange(start, todayIn(loc))
}

// parseDateSpec resolves a single date literal or relative keyword to a
// date in the given location.
func parseDateSpec(spec string, loc *time.Location) (date.Date, error) {
	switch spec {
	case "now", "today":
		return todayIn(loc), nil
	case "yesterday", "yesterdaySameTime":
		return todayIn(loc) - 1, nil
	}
	d, err := date.ParseISO(spec)
	if err != nil {
		return date.Zero, fmt.Errorf("%w: %q", ErrInvalidDate, spec)
	}
	return d, nil
}

func todayIn(loc *time.Location) date.Date {
	return date.NewAt(time.Now().In(loc))
}
