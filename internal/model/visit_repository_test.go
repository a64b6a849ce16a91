package model_test

import (
	"testing"
	"time"

	"github.com/rickb777/date/v2"

	"github.com/aldana/webmetrics/internal/infrastructure"
	"github.com/aldana/webmetrics/internal/model"
)

func repository(t *testing.T) *model.VisitRepository {
	t.Helper()
	db := infrastructure.Connect("file::memory:")
	return &model.VisitRepository{DB: db}
}

func TestStore(t *testing.T) {
	repo := repository(t)

	visit := &model.Visit{
		VisitorID: "v001",
		Date:      date.New(2026, time.August, 24),
		Pageviews: 3,
		Duration:  120,
	}
	if err := repo.Store(visit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if visit.Uuid == "" {
		t.Error("expected a uuid to be assigned on store")
	}
	if repo.Total() != 1 {
		t.Errorf("expected 1 stored visit, got %d", repo.Total())
	}
}

func TestStoreRejectsInvalidVisits(t *testing.T) {
	cases := []struct {
		name  string
		visit model.Visit
	}{
		{"Missing visitor", model.Visit{Date: date.New(2026, time.August, 24), Pageviews: 1}},
		{"Missing date", model.Visit{VisitorID: "v001", Pageviews: 1}},
		{"No pageviews", model.Visit{VisitorID: "v001", Date: date.New(2026, time.August, 24)}},
		{"Negative duration", model.Visit{VisitorID: "v001", Date: date.New(2026, time.August, 24), Pageviews: 1, Duration: -1}},
	}

	repo := repository(t)
	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if err := repo.Store(&tcase.visit); err == nil {
				t.Error("expected an error, got none")
			}
		})
	}
	if repo.Total() != 0 {
		t.Errorf("expected no stored visits, got %d", repo.Total())
	}
}

func TestTotalsByDay(t *testing.T) {
	repo := repository(t)

	visits := []model.Visit{
		{VisitorID: "v001", Date: date.New(2026, time.August, 24), Pageviews: 3, Duration: 120},
		{VisitorID: "v002", Date: date.New(2026, time.August, 24), Pageviews: 1, Duration: 30},
		{VisitorID: "v003", Date: date.New(2026, time.August, 26), Pageviews: 5, Duration: 300},
		{VisitorID: "v004", Date: date.New(2026, time.September, 1), Pageviews: 2, Duration: 45},
	}
	for i := range visits {
		if err := repo.Store(&visits[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	totals, err := repo.TotalsByDay(date.New(2026, time.August, 1), date.New(2026, time.August, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected totals for 2 days, got %d", len(totals))
	}
	first := totals[0]
	if first.Date != date.New(2026, time.August, 24) {
		t.Errorf("expected chronological order, first day is %s", first.Date)
	}
	if first.Visits != 2 || first.Pageviews != 4 || first.Duration != 150 {
		t.Errorf("unexpected aggregates %+v", first)
	}
	if totals[1].Visits != 1 {
		t.Errorf("expected 1 visit on the 26th, got %d", totals[1].Visits)
	}
}
