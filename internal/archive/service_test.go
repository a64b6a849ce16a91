package archive_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rickb777/date/v2"

	"github.com/aldana/webmetrics/internal/archive"
	"github.com/aldana/webmetrics/internal/model"
	"github.com/aldana/webmetrics/internal/period"
	"github.com/aldana/webmetrics/internal/report"
)

type repositoryMock struct {
	totals []model.DailyTotals
	err    error
	calls  int
}

func (r *repositoryMock) TotalsByDay(start, end date.Date) ([]model.DailyTotals, error) {
	r.calls++
	inRange := []model.DailyTotals{}
	for _, t := range r.totals {
		if t.Date >= start && t.Date <= end {
			inRange = append(inRange, t)
		}
	}
	return inRange, r.err
}

func fixtures() []model.DailyTotals {
	return []model.DailyTotals{
		{Date: date.New(2026, time.August, 24), Visits: 3, Pageviews: 9, Duration: 120},
		{Date: date.New(2026, time.August, 25), Visits: 2, Pageviews: 4, Duration: 60},
		{Date: date.New(2026, time.August, 26), Visits: 5, Pageviews: 10, Duration: 300},
	}
}

func TestBuildReportForDay(t *testing.T) {
	service := archive.NewService(&repositoryMock{totals: fixtures()}, report.NewRegistry())

	p, err := period.New(period.Day, date.New(2026, time.August, 25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, err := service.BuildReport(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("expected the first handle to be 1, got %d", id)
	}

	table, err := service.Registry().Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.RowCount() != 1 {
		t.Fatalf("expected a single row, got %d", table.RowCount())
	}
	if table.Rows[0].Metrics["visits"] != 2 || table.Rows[0].Metrics["pageviews"] != 4 {
		t.Errorf("unexpected metrics %v", table.Rows[0].Metrics)
	}
}

func TestBuildReportForRange(t *testing.T) {
	service := archive.NewService(&repositoryMock{totals: fixtures()}, report.NewRegistry())

	p, err := period.NewRange(date.New(2026, time.August, 24), date.New(2026, time.August, 26))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, err := service.BuildReport(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table, err := service.Registry().Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.RowCount() != 3 {
		t.Fatalf("expected one row per day, got %d", table.RowCount())
	}
	if table.Rows[0].Label != "2026-08-24" {
		t.Errorf("expected rows in chronological order, first is %q", table.Rows[0].Label)
	}
	totals := table.Totals()
	if totals["visits"] != 10 || totals["pageviews"] != 23 || totals["duration"] != 480 {
		t.Errorf("unexpected totals %v", totals)
	}
}

func TestBuildReportForInvertedRangeIsEmpty(t *testing.T) {
	service := archive.NewService(&repositoryMock{totals: fixtures()}, report.NewRegistry())

	p, err := period.NewRange(date.New(2026, time.August, 26), date.New(2026, time.August, 24))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, err := service.BuildReport(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table, err := service.Registry().Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.RowCount() != 0 {
		t.Errorf("expected an inverted range to produce no rows, got %d: %v", table.RowCount(), table.Rows)
	}
	if len(table.Totals()) != 0 {
		t.Errorf("expected empty totals, got %v", table.Totals())
	}
}

func TestBuildReportForYearAggregatesByMonth(t *testing.T) {
	repository := &repositoryMock{totals: fixtures()}
	service := archive.NewService(repository, report.NewRegistry())

	p, err := period.New(period.Year, date.New(2026, time.August, 26))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, err := service.BuildReport(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table, _ := service.Registry().Get(id)
	if table.RowCount() != 12 {
		t.Fatalf("expected one row per month, got %d", table.RowCount())
	}
	august := table.Rows[7]
	if august.Label != "2026-08-01" {
		t.Fatalf("expected the eighth row to be August, got %q", august.Label)
	}
	if august.Metrics["visits"] != 10 {
		t.Errorf("expected all fixture visits inside August, got %d", august.Metrics["visits"])
	}
	if table.Rows[0].Metrics["visits"] != 0 {
		t.Errorf("expected no visits in January, got %d", table.Rows[0].Metrics["visits"])
	}
	if repository.calls != 1 {
		t.Errorf("expected a single aggregation query, got %d", repository.calls)
	}
}

func TestBuildReportPropagatesRepositoryErrors(t *testing.T) {
	repositoryErr := errors.New("no such table")
	service := archive.NewService(&repositoryMock{err: repositoryErr}, report.NewRegistry())

	p, _ := period.New(period.Day, date.New(2026, time.August, 26))
	if _, err := service.BuildReport(p); !errors.Is(err, repositoryErr) {
		t.Errorf("expected the repository error to propagate, got %v", err)
	}
	if service.Registry().MostRecentID() != 0 {
		t.Errorf("expected no table to be registered on failure")
	}
}

func TestRollback(t *testing.T) {
	service := archive.NewService(&repositoryMock{totals: fixtures()}, report.NewRegistry())

	p, _ := period.New(period.Day, date.New(2026, time.August, 26))
	checkpoint, err := service.BuildReport(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := service.BuildReport(p)
	third, _ := service.BuildReport(p)

	service.Rollback(checkpoint)

	if _, err := service.Registry().Get(checkpoint); err != nil {
		t.Errorf("expected the checkpoint table to survive, got %v", err)
	}
	for _, id := range []int{second, third} {
		if _, err := service.Registry().Get(id); !errors.Is(err, report.ErrTableNotFound) {
			t.Errorf("expected table %d to be rolled back, got %v", id, err)
		}
	}
}
