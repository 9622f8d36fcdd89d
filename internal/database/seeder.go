package database

import (
	"fmt"
	"time"

	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/usecase"

	"gorm.io/gorm"
)

// SeedAll inserts the baseline compliance calendar: the next three WPS
// payment deadlines. Idempotent via FirstOrCreate, safe to run repeatedly.
func SeedAll(db *gorm.DB) error {
	for _, deadline := range upcomingWPSDeadlines(time.Now().UTC(), 3) {
		event := model.ComplianceEvent{
			EventType:       model.EventWPSDeadline,
			Title:           fmt.Sprintf("WPS Payment Deadline - %s", deadline.Format("January 2006")),
			Description:     "Wage Protection System payment deadline for the previous month's salaries.",
			EventDate:       deadline,
			AlertDaysBefore: 5,
			Severity:        model.SeverityCritical,
			IsActive:        true,
		}

		err := db.FirstOrCreate(&event, model.ComplianceEvent{
			EventType: model.EventWPSDeadline,
			EventDate: deadline,
		}).Error
		if err != nil {
			return fmt.Errorf("seed wps deadline %s: %w", deadline.Format("2006-01-02"), err)
		}
	}

	return nil
}

// upcomingWPSDeadlines returns the next n WPS deadlines on or after now's
// calendar day, one per month with no duplicates.
func upcomingWPSDeadlines(now time.Time, n int) []time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if usecase.WPSDeadline(month.Year(), month.Month()).Before(today) {
		month = month.AddDate(0, 1, 0)
	}

	deadlines := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		deadlines = append(deadlines, usecase.WPSDeadline(month.Year(), month.Month()))
		month = month.AddDate(0, 1, 0)
	}
	return deadlines
}
