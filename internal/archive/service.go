package archive

import (
	"fmt"

	"github.com/rickb777/date/v2"
	"github.com/rickb777/date/v2/timespan"

	"github.com/aldana/webmetrics/internal/model"
	"github.com/aldana/webmetrics/internal/period"
	"github.com/aldana/webmetrics/internal/report"
)

type visitsRepository interface {
	TotalsByDay(start, end date.Date) ([]model.DailyTotals, error)
}

// Service computes visit reports for calendar periods. Every computed
// table is stored in the registry and referenced by handle, so callers can
// fetch intermediate results later or roll a batch of computations back to
// a checkpoint.
type Service struct {
	repository visitsRepository
	registry   *report.Registry
}

func NewService(repository visitsRepository, registry *report.Registry) *Service {
	return &Service{
		repository: repository,
		registry:   registry,
	}
}

// Registry returns the table registry the service archives its results in.
func (s *Service) Registry() *report.Registry {
	return s.registry
}

// BuildReport aggregates the visits covered by p into a table with one row
// per subperiod (a single row for leaf periods), registers the table and
// returns its handle.
func (s *Service) BuildReport(p *period.Period) (int, error) {
	start, end := p.DateStart(), p.DateEnd()
	totals, err := s.repository.TotalsByDay(start, end)
	if err != nil {
		return 0, fmt.Errorf("aggregating visits for %s: %w", p.RangeString(), err)
	}

	span := timespan.BetweenDates(start, end)
	byDay := make(map[date.Date]model.DailyTotals, int(span.Days()))
	for _, t := range totals {
		byDay[t.Date] = t
	}

	table := report.NewTable(fmt.Sprintf("visits_%s_%s", p.Label(), p.RangeString()))
	// Only a day period gets its single row here. An empty range also has
	// zero subperiods but must yield zero rows.
	if p.Label() == period.Day {
		table.AddRow(start.Format(period.ISOFormat), metricsBetween(byDay, start, end))
	}
	for _, sub := range p.Subperiods() {
		table.AddRow(sub.DateStart().Format(period.ISOFormat), metricsBetween(byDay, sub.DateStart(), sub.DateEnd()))
	}

	return s.registry.Add(table), nil
}

// Rollback tombstones every table computed after the given checkpoint
// handle. A zero checkpoint resets the registry completely.
func (s *Service) Rollback(checkpoint int) {
	s.registry.DeleteAllAbove(checkpoint)
}

func metricsBetween(byDay map[date.Date]model.DailyTotals, start, end date.Date) map[string]int64 {
	metrics := map[string]int64{"visits": 0, "pageviews": 0, "duration": 0}
	for d := start; d <= end; d++ {
		if t, ok := byDay[d]; ok {
			metrics["visits"] += t.Visits
			metrics["pageviews"] += t.Pageviews
			metrics["duration"] += t.Duration
		}
	}
	return metrics
}
