package period

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rickb777/date/v2"
	"golang.org/x/exp/slices"
	"golang.org/x/text/message"
)

// ISOFormat is the layout used for machine-readable period boundaries.
const ISOFormat = "2006-01-02"

// Recognized period labels. A period of any of the first four labels is
// anchored at a single date; a range carries its own start and end.
const (
	Day   = "day"
	Week  = "week"
	Month = "month"
	Year  = "year"
	Range = "range"
)

var (
	ErrInvalidKind = errors.New("invalid period kind")
	ErrInvalidDate = errors.New("invalid date")
)

// anchoredLabels are the labels accepted by New. Ranges are built through
// NewRange as they need two dates.
var anchoredLabels = []string{Day, Week, Month, Year}

// ids maps every label to the identifier the reporting layer stores
// alongside archived data.
var ids = map[string]int{
	Day:   1,
	Week:  2,
	Month: 3,
	Year:  4,
	Range: 5,
}

// Period is a calendar span (day, week, month, year or arbitrary range)
// which knows how to decompose itself into chronologically ordered
// subperiods. Subperiods are computed on first access and then kept for
// the lifetime of the instance, so reads are cheap but the first
// decomposition of a large range is not. Instances are safe for
// concurrent reads only once the subperiods have been generated.
type Period struct {
	label    string
	anchor   date.Date
	end      date.Date // ranges only
	sub      []*Period
	computed bool
}

// New returns a period of the given label anchored at d. Ranges have their
// own constructor, NewRange, as they need two dates.
func New(label string, d date.Date) (*Period, error) {
	if d == date.Zero {
		return nil, fmt.Errorf("%w: the zero date cannot anchor a period", ErrInvalidDate)
	}
	if !slices.Contains(anchoredLabels, label) {
		return nil, fmt.Errorf("%w %q", ErrInvalidKind, label)
	}
	return &Period{label: label, anchor: d}, nil
}

// NewRange returns a period covering the inclusive span between start and
// end. A range whose start is after its end is valid but empty.
func NewRange(start, end date.Date) (*Period, error) {
	if start == date.Zero || end == date.Zero {
		return nil, fmt.Errorf("%w: the zero date cannot bound a range", ErrInvalidDate)
	}
	return &Period{label: Range, anchor: start, end: end}, nil
}

// subs generates the subperiods on first call and returns the memoized
// sequence afterwards. Every accessor that depends on subperiods must go
// through it.
func (p *Period) subs() []*Period {
	if p.computed {
		return p.sub
	}
	p.computed = true
	switch p.label {
	case Week:
		start := p.anchor - date.Date(mondayOffset(p.anchor))
		p.sub = dayPeriods(start, start+6)
	case Month:
		year, month := p.anchor.Year(), p.anchor.Month()
		first := date.New(year, month, 1)
		p.sub = dayPeriods(first, first+date.Date(daysIn(year, month)-1))
	case Year:
		p.sub = make([]*Period, 0, 12)
		for m := time.January; m <= time.December; m++ {
			p.sub = append(p.sub, &Period{label: Month, anchor: date.New(p.anchor.Year(), m, 1)})
		}
	case Range:
		p.sub = dayPeriods(p.anchor, p.end)
	}
	return p.sub
}

// dayPeriods returns one day period per date in the inclusive span. An
// inverted span yields no periods.
func dayPeriods(start, end date.Date) []*Period {
	if start > end {
		return nil
	}
	list := make([]*Period, 0, int(end-start)+1)
	for d := start; d <= end; d++ {
		list = append(list, &Period{label: Day, anchor: d})
	}
	return list
}

// mondayOffset returns how many days d lies after the Monday of its week.
func mondayOffset(d date.Date) int {
	return (int(d.Weekday()) + 6) % 7
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p *Period) Label() string {
	return p.label
}

// ID returns the small integer identifier associated with the period label.
func (p *Period) ID() (int, error) {
	id, ok := ids[p.label]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrInvalidKind, p.label)
	}
	return id, nil
}

// DateStart returns the earliest date covered by the period, descending
// through subperiods until it reaches a leaf.
func (p *Period) DateStart() date.Date {
	sub := p.subs()
	if len(sub) == 0 {
		return p.anchor
	}
	return sub[0].DateStart()
}

// DateEnd returns the latest date covered by the period, descending
// through subperiods until it reaches a leaf.
func (p *Period) DateEnd() date.Date {
	sub := p.subs()
	if len(sub) == 0 {
		return p.anchor
	}
	return sub[len(sub)-1].DateEnd()
}

// Subperiods returns the immediate subperiods in chronological order. The
// returned sequence is fixed after the first call.
func (p *Period) Subperiods() []*Period {
	return p.subs()
}

func (p *Period) NumberOfSubperiods() int {
	return len(p.subs())
}

// StringParts formats each immediate subperiod using the given layout,
// one entry per subperiod. A day formats itself. An empty layout falls
// back to ISOFormat.
func (p *Period) StringParts(format string) []string {
	if format == "" {
		format = ISOFormat
	}
	if p.label == Day {
		return []string{p.anchor.Format(format)}
	}
	sub := p.subs()
	parts := make([]string, len(sub))
	for i, s := range sub {
		parts[i] = s.anchor.Format(format)
	}
	return parts
}

// DisplayString is a comma-joined rendering of StringParts, meant for
// humans and debugging rather than machine parsing.
func (p *Period) DisplayString() string {
	return strings.Join(p.StringParts(ISOFormat), ",")
}

// RangeString summarizes the full period span as "<start>,<end>" in ISO
// format, regardless of how the period decomposes internally.
func (p *Period) RangeString() string {
	return fmt.Sprintf("%s,%s", p.DateStart().Format(ISOFormat), p.DateEnd().Format(ISOFormat))
}

// PrettyString is an untranslated human-facing rendering of the period.
func (p *Period) PrettyString() string {
	switch p.label {
	case Day:
		return p.anchor.Format("Monday, January 2, 2006")
	case Week:
		return fmt.Sprintf("Week %s to %s", p.DateStart().Format(ISOFormat), p.DateEnd().Format(ISOFormat))
	case Month:
		return p.anchor.Format("January 2006")
	case Year:
		return p.anchor.Format("2006")
	}
	return fmt.Sprintf("From %s to %s", p.DateStart().Format(ISOFormat), p.DateEnd().Format(ISOFormat))
}

// LocalizedShortString renders a compact representation of the period in
// the language of the given printer. Numbers are kept out of the printer
// arguments on purpose: message printers apply digit grouping to years.
func (p *Period) LocalizedShortString(pr *message.Printer) string {
	switch p.label {
	case Day:
		return pr.Sprintf("%s %s", shortMonthName(pr, p.anchor.Month()), strconv.Itoa(p.anchor.Day()))
	case Week:
		return pr.Sprintf("Week %s", p.DateStart().Format(ISOFormat))
	case Month:
		return pr.Sprintf("%s %s", shortMonthName(pr, p.anchor.Month()), strconv.Itoa(p.anchor.Year()))
	case Year:
		return strconv.Itoa(p.anchor.Year())
	}
	return pr.Sprintf("%s - %s", p.DateStart().Format(ISOFormat), p.DateEnd().Format(ISOFormat))
}

// LocalizedLongString renders a full representation of the period in the
// language of the given printer.
func (p *Period) LocalizedLongString(pr *message.Printer) string {
	switch p.label {
	case Day:
		return pr.Sprintf("%s %s, %s", monthName(pr, p.anchor.Month()), strconv.Itoa(p.anchor.Day()), strconv.Itoa(p.anchor.Year()))
	case Week:
		return pr.Sprintf("Week %s to %s", p.DateStart().Format(ISOFormat), p.DateEnd().Format(ISOFormat))
	case Month:
		return pr.Sprintf("%s %s", monthName(pr, p.anchor.Month()), strconv.Itoa(p.anchor.Year()))
	case Year:
		return strconv.Itoa(p.anchor.Year())
	}
	return pr.Sprintf("From %s to %s", p.DateStart().Format(ISOFormat), p.DateEnd().Format(ISOFormat))
}

func monthName(pr *message.Printer, m time.Month) string {
	return pr.Sprintf(m.String())
}

func shortMonthName(pr *message.Printer, m time.Month) string {
	name := monthName(pr, m)
	runes := []rune(name)
	if len(runes) <= 3 {
		return name
	}
	return string(runes[:3])
}
