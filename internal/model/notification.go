package model

import "time"

// Notification types written to the log.
const (
	NotifyRequestCreated  = "request_created"
	NotifyStatusUpdated   = "status_updated"
	NotifyComplianceAlert = "compliance_alert"
)

// NotificationLog is an append-only record of a notification. Rows are
// never updated after insert; status says whether it was actually dispatched
// ("sent") or only recorded ("logged").
type NotificationLog struct {
	ID uint `json:"id" gorm:"primaryKey"`

	NotificationType string `json:"notification_type" gorm:"size:50;not null;index"`
	Recipient        string `json:"recipient" gorm:"size:200;not null"` // email or phone
	Subject          string `json:"subject" gorm:"size:200"`
	Message          string `json:"message" gorm:"type:text;not null"`

	// Trigger context
	TriggerEntityType string `json:"trigger_entity_type" gorm:"size:50"` // request, compliance_event
	TriggerEntityID   uint   `json:"trigger_entity_id"`

	Status string `json:"status" gorm:"size:20;default:logged"`

	CreatedAt time.Time `json:"created_at"`
}

func (NotificationLog) TableName() string {
	return "notification_log"
}
