package model

import (
	"github.com/rickb777/date/v2"
	"gorm.io/gorm"
)

// Visit is a single tracked visit to the measured site. Date is stored as
// the underlying day number of date.Date, which keeps range queries plain
// integer comparisons.
type Visit struct {
	gorm.Model
	Uuid      string    `gorm:"uniqueIndex"`
	VisitorID string    `gorm:"index"`
	Date      date.Date `gorm:"index"`
	Pageviews int
	Duration  int // seconds spent on the site
	Referrer  string
}

// Validate checks the visit fields before storing them.
func (v Visit) Validate() []string {
	errs := []string{}

	if v.VisitorID == "" {
		errs = append(errs, "Visitor ID cannot be empty")
	}
	if v.Date == date.Zero {
		errs = append(errs, "Date cannot be empty")
	}
	if v.Pageviews < 1 {
		errs = append(errs, "A visit must have at least one pageview")
	}
	if v.Duration < 0 {
		errs = append(errs, "Duration cannot be negative")
	}

	return errs
}
