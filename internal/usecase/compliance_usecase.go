package usecase

import (
	"fmt"
	"time"
	"unicode/utf8"

	"hr-portal-backend/internal/apperr"
	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"
	"hr-portal-backend/internal/validation"

	"go.uber.org/zap"
)

// CalendarSummary aggregates upcoming events by severity and timeframe.
type CalendarSummary struct {
	TotalEvents    int `json:"total_events"`
	CriticalCount  int `json:"critical_count"`
	WarningCount   int `json:"warning_count"`
	NormalCount    int `json:"normal_count"`
	Upcoming7Days  int `json:"upcoming_7_days"`
	Upcoming30Days int `json:"upcoming_30_days"`
}

type CreateEventInput struct {
	EventType       string `json:"event_type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EventDate       string `json:"event_date"` // YYYY-MM-DD
	AlertDaysBefore *int   `json:"alert_days_before"`
	Severity        string `json:"severity"`
	RelatedEntity   string `json:"related_entity"`
}

type ComplianceUsecase struct {
	repo repository.ComplianceRepository
	log  *zap.Logger
}

func NewComplianceUsecase(repo repository.ComplianceRepository, log *zap.Logger) *ComplianceUsecase {
	return &ComplianceUsecase{repo: repo, log: log}
}

// startOfDay truncates to a date boundary; event_date is a DATE column.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Upcoming returns events within [today, today+daysAhead], event_date asc.
func (u *ComplianceUsecase) Upcoming(daysAhead int, includeInactive bool) ([]model.ComplianceEvent, error) {
	if daysAhead < 1 || daysAhead > 365 {
		daysAhead = 60
	}
	today := startOfDay(time.Now().UTC())

	events, err := u.repo.FindInWindow(today, today.AddDate(0, 0, daysAhead), !includeInactive)
	if err != nil {
		u.log.Error("failed to list compliance events", zap.Error(err))
		return nil, fmt.Errorf("list compliance events: %w", err)
	}
	return events, nil
}

// Critical returns only active critical events within the window.
func (u *ComplianceUsecase) Critical(daysAhead int) ([]model.ComplianceEvent, error) {
	if daysAhead < 1 || daysAhead > 90 {
		daysAhead = 30
	}
	today := startOfDay(time.Now().UTC())

	events, err := u.repo.FindCriticalInWindow(today, today.AddDate(0, 0, daysAhead))
	if err != nil {
		u.log.Error("failed to list critical compliance events", zap.Error(err))
		return nil, fmt.Errorf("list critical events: %w", err)
	}
	return events, nil
}

// Summary counts active upcoming events by severity and by the fixed 7-day
// and daysAhead windows.
func (u *ComplianceUsecase) Summary(daysAhead int) (*CalendarSummary, error) {
	if daysAhead < 1 || daysAhead > 365 {
		daysAhead = 30
	}
	today := startOfDay(time.Now().UTC())
	sevenDays := today.AddDate(0, 0, 7)

	events, err := u.repo.FindInWindow(today, today.AddDate(0, 0, daysAhead), true)
	if err != nil {
		u.log.Error("failed to summarize compliance calendar", zap.Error(err))
		return nil, fmt.Errorf("summarize calendar: %w", err)
	}

	summary := &CalendarSummary{TotalEvents: len(events), Upcoming30Days: len(events)}
	for _, e := range events {
		switch e.Severity {
		case model.SeverityCritical:
			summary.CriticalCount++
		case model.SeverityWarning:
			summary.WarningCount++
		default:
			summary.NormalCount++
		}
		if !e.EventDate.After(sevenDays) {
			summary.Upcoming7Days++
		}
	}

	return summary, nil
}

// CreateEvent validates and inserts a new calendar event.
func (u *ComplianceUsecase) CreateEvent(in CreateEventInput) (*model.ComplianceEvent, error) {
	title := validation.SanitizeText(in.Title, 0)
	eventType := validation.SanitizeText(in.EventType, 0)

	fields := map[string]string{}
	if eventType == "" {
		fields["event_type"] = "event_type is required"
	}
	if title == "" {
		fields["title"] = "title is required"
	} else if utf8.RuneCountInString(title) > 200 {
		fields["title"] = "title must be at most 200 characters"
	}

	eventDate, err := time.Parse("2006-01-02", in.EventDate)
	if err != nil {
		fields["event_date"] = "event_date must be a date in YYYY-MM-DD format"
	}

	severity := model.SeverityNormal
	if in.Severity != "" {
		severity, err = model.ParseSeverity(in.Severity)
		if err != nil {
			fields["severity"] = "severity must be one of: normal, warning, critical"
		}
	}

	alertDays := 7
	if in.AlertDaysBefore != nil {
		alertDays = *in.AlertDaysBefore
		if alertDays < 0 || alertDays > 90 {
			fields["alert_days_before"] = "alert_days_before must be between 0 and 90"
		}
	}

	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	event := &model.ComplianceEvent{
		EventType:       eventType,
		Title:           title,
		Description:     validation.SanitizeText(in.Description, 0),
		EventDate:       eventDate,
		AlertDaysBefore: alertDays,
		Severity:        severity,
		RelatedEntity:   validation.SanitizeText(in.RelatedEntity, 100),
		IsActive:        true,
	}

	if err := u.repo.Create(event); err != nil {
		u.log.Error("failed to create compliance event",
			zap.String("event_type", eventType), zap.Error(err))
		return nil, fmt.Errorf("create compliance event: %w", err)
	}

	return event, nil
}

// WPSDeadline returns the Wage Protection System deadline for a month:
// the 10th, covering the previous month's salaries.
func WPSDeadline(year int, month time.Month) time.Time {
	return time.Date(year, month, 10, 0, 0, 0, 0, time.UTC)
}

// VisaExpiryAlerts returns the alert dates ahead of a visa expiry.
// UAE practice is to renew well in advance; defaults are 60, 30 and 7 days.
func VisaExpiryAlerts(expiry time.Time, daysBefore ...int) []time.Time {
	if len(daysBefore) == 0 {
		daysBefore = []int{60, 30, 7}
	}
	alerts := make([]time.Time, 0, len(daysBefore))
	for _, days := range daysBefore {
		alerts = append(alerts, expiry.AddDate(0, 0, -days))
	}
	return alerts
}
