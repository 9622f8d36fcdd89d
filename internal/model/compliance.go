package model

import (
	"fmt"
	"time"
)

// Severity grades a compliance event for visual indicators.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// ParseSeverity converts a raw string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityNormal, SeverityWarning, SeverityCritical:
		return Severity(s), nil
	}
	return "", fmt.Errorf("invalid severity: %q", s)
}

// Compliance event types tracked by the UAE calendar.
const (
	EventWPSDeadline   = "wps_deadline"
	EventVisaExpiry    = "visa_expiry"
	EventEmiratesID    = "emirates_id_expiry"
	EventMedicalExpiry = "medical_expiry"
	EventRamadanHours  = "ramadan_hours"
)

// ComplianceEvent is a UAE regulatory deadline on the compliance calendar.
// Independent of the request lifecycle.
type ComplianceEvent struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	EventType   string `json:"event_type" gorm:"size:50;not null;index"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Description string `json:"description" gorm:"type:text"`

	EventDate       time.Time `json:"event_date" gorm:"type:date;not null;index"`
	AlertDaysBefore int       `json:"alert_days_before" gorm:"default:7"`

	Severity Severity `json:"severity" gorm:"size:20;default:normal"`

	// Related entity (employee ID, company, ...), optional.
	RelatedEntity string `json:"related_entity" gorm:"size:100"`

	IsActive bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ComplianceEvent) TableName() string {
	return "compliance_calendar_events"
}
