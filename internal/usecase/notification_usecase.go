package usecase

import (
	"fmt"

	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"
	"hr-portal-backend/internal/validation"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const hrTeamRecipient = "hr.team@company.ae"
const hrComplianceRecipient = "hr.compliance@company.ae"

// NotificationService records every notification in the append-only log and,
// when a mailer is configured, also dispatches it over SMTP. Without a mailer
// it is a pure stub: the row says what would have been sent.
//
// Notification failures never fail the operation that triggered them; they
// are logged and swallowed.
type NotificationService struct {
	repo   repository.NotificationRepository
	mailer *gomail.Dialer
	from   string
	log    *zap.Logger
}

// NewNotificationService builds the service. mailer may be nil (stub mode).
func NewNotificationService(repo repository.NotificationRepository, mailer *gomail.Dialer, from string, log *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, mailer: mailer, from: from, log: log}
}

func (s *NotificationService) record(notificationType, recipient, subject, message, entityType string, entityID uint) {
	entry := model.NotificationLog{
		NotificationType:  notificationType,
		Recipient:         recipient,
		Subject:           subject,
		Message:           message,
		TriggerEntityType: entityType,
		TriggerEntityID:   entityID,
		Status:            "logged",
	}

	// submitted_by is free text: it may be a name or a phone number rather
	// than an address, in which case the entry stays a log-only stub.
	if s.mailer != nil && validation.ValidEmail(recipient) {
		m := gomail.NewMessage()
		m.SetHeader("From", s.from)
		m.SetHeader("To", recipient)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", message)
		if err := s.mailer.DialAndSend(m); err != nil {
			s.log.Warn("notification dispatch failed",
				zap.String("type", notificationType),
				zap.String("recipient", recipient),
				zap.Error(err))
		} else {
			entry.Status = "sent"
		}
	}

	if err := s.repo.Create(&entry); err != nil {
		s.log.Error("failed to write notification log",
			zap.String("type", notificationType),
			zap.String("recipient", recipient),
			zap.Error(err))
	}
}

// RequestCreated notifies the employee and the HR team about a new request.
func (s *NotificationService) RequestCreated(req *model.Request) {
	employeeMessage := fmt.Sprintf(`Your request has been submitted successfully.

Reference: %s
Title: %s

You can track your request status at any time using your reference number.

Thank you,
UAE HR Portal Team`, req.Reference, req.Title)

	s.record(model.NotifyRequestCreated, req.SubmittedBy,
		fmt.Sprintf("Request Submitted - %s", req.Reference),
		employeeMessage, "request", req.ID)

	hrMessage := fmt.Sprintf(`New request submitted:

Reference: %s
Title: %s
Submitted by: %s

Review the request in the HR queue.`, req.Reference, req.Title, req.SubmittedBy)

	s.record(model.NotifyRequestCreated, hrTeamRecipient,
		fmt.Sprintf("New Request - %s", req.Reference),
		hrMessage, "request", req.ID)
}

var statusMessages = map[model.RequestStatus]string{
	model.StatusReviewing: "Your request is now under review.",
	model.StatusApproved:  "Good news! Your request has been approved.",
	model.StatusCompleted: "Your request has been completed.",
	model.StatusRejected:  "Your request was not approved. Please contact HR for details.",
}

// StatusUpdated notifies the employee about a status change.
func (s *NotificationService) StatusUpdated(req *model.Request) {
	statusMessage, ok := statusMessages[req.Status]
	if !ok {
		statusMessage = fmt.Sprintf("Status updated to: %s", req.Status)
	}

	message := fmt.Sprintf(`Request Status Update

Reference: %s
New Status: %s
`, req.Reference, statusMessage)

	if req.PublicNotes != "" {
		message += fmt.Sprintf("\nNotes: %s", req.PublicNotes)
	}
	message += "\n\nTrack your request at: [portal link]/track"

	s.record(model.NotifyStatusUpdated, req.SubmittedBy,
		fmt.Sprintf("Request Update - %s", req.Reference),
		message, "request", req.ID)
}

// ComplianceAlert notifies HR about a critical compliance deadline.
func (s *NotificationService) ComplianceAlert(event *model.ComplianceEvent, daysUntil int) {
	urgency := "IMPORTANT"
	if daysUntil <= 7 {
		urgency = "URGENT"
	}

	message := fmt.Sprintf(`%s COMPLIANCE ALERT

%s
Due Date: %s
Time Remaining: %d days

Please take immediate action to ensure compliance.

UAE HR Portal`, urgency, event.Title, event.EventDate.Format("2006-01-02"), daysUntil)

	s.record(model.NotifyComplianceAlert, hrComplianceRecipient,
		fmt.Sprintf("%s: %s", urgency, event.Title),
		message, "compliance_event", event.ID)
}

// Logs returns recent notification log entries, newest first, optionally
// filtered by type.
func (s *NotificationService) Logs(notificationType string, limit int) ([]model.NotificationLog, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.repo.List(notificationType, limit)
}
