package model

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2"
	"gorm.io/gorm"
)

type VisitRepository struct {
	DB *gorm.DB
}

// DailyTotals aggregates the visits of a single day.
type DailyTotals struct {
	Date      date.Date
	Visits    int64
	Pageviews int64
	Duration  int64
}

// TotalsByDay returns one aggregate per day with at least one visit inside
// the inclusive span, in chronological order.
func (v *VisitRepository) TotalsByDay(start, end date.Date) ([]DailyTotals, error) {
	totals := []DailyTotals{}
	result := v.DB.Model(&Visit{}).
		Select("date, count(*) as visits, sum(pageviews) as pageviews, sum(duration) as duration").
		Where("date BETWEEN ? AND ?", int64(start), int64(end)).
		Group("date").
		Order("date ASC").
		Scan(&totals)
	if result.Error != nil {
		log.Printf("error aggregating visits: %s\n", result.Error)
	}
	return totals, result.Error
}

// Store persists a new visit, assigning it a fresh uuid.
func (v *VisitRepository) Store(visit *Visit) error {
	if errs := visit.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid visit: %s", errs[0])
	}
	visit.Uuid = uuid.NewString()
	return v.DB.Create(visit).Error
}

func (v *VisitRepository) Total() int64 {
	var totalRows int64
	v.DB.Model(&Visit{}).Count(&totalRows)
	return totalRows
}
