package model

import (
	"fmt"
	"time"
)

// RequestStatus is the closed set of request lifecycle states.
type RequestStatus string

const (
	StatusSubmitted RequestStatus = "submitted"
	StatusReviewing RequestStatus = "reviewing"
	StatusApproved  RequestStatus = "approved"
	StatusCompleted RequestStatus = "completed"
	StatusRejected  RequestStatus = "rejected"
)

// AllStatuses returns every valid status, in lifecycle order.
func AllStatuses() []RequestStatus {
	return []RequestStatus{
		StatusSubmitted,
		StatusReviewing,
		StatusApproved,
		StatusCompleted,
		StatusRejected,
	}
}

// ParseRequestStatus converts a raw string into a RequestStatus.
// Unknown values are an error, never silently accepted.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusSubmitted, StatusReviewing, StatusApproved, StatusCompleted, StatusRejected:
		return RequestStatus(s), nil
	}
	return "", fmt.Errorf("invalid status: %q", s)
}

// Request is an employee request tracked by the portal.
// InternalNotes is HR-only and must never be rendered on a public endpoint;
// the tracking view redacts it.
type Request struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Reference   string        `json:"reference" gorm:"size:20;uniqueIndex;not null"`
	Title       string        `json:"title" gorm:"size:200;not null"`
	Description string        `json:"description" gorm:"type:text"`
	Status      RequestStatus `json:"status" gorm:"size:20;not null;default:submitted"`

	// Employee information
	SubmittedBy string    `json:"submitted_by" gorm:"size:100;not null"`
	SubmittedAt time.Time `json:"submitted_at"`

	// HR review information
	ReviewedBy string     `json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`

	// Notes
	PublicNotes   string `json:"public_notes" gorm:"type:text"`   // visible to employee
	InternalNotes string `json:"internal_notes" gorm:"type:text"` // HR-only

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
