package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hr-portal-backend/internal/apperr"
	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Friendly status labels shown to employees.
var statusLabels = map[model.RequestStatus]string{
	model.StatusSubmitted: "Submitted - Awaiting Review",
	model.StatusReviewing: "Under Review",
	model.StatusApproved:  "Approved",
	model.StatusCompleted: "Completed",
	model.StatusRejected:  "Not Approved",
}

// Next steps guidance per status.
var nextSteps = map[model.RequestStatus]string{
	model.StatusSubmitted: "Your request is in the queue. HR will review it shortly.",
	model.StatusReviewing: "HR is currently reviewing your request. You will be notified of any updates.",
	model.StatusApproved:  "Your request has been approved. HR will proceed with the next steps.",
	model.StatusCompleted: "Your request has been completed. No further action needed.",
	model.StatusRejected:  "Your request was not approved. Please contact HR for more information.",
}

// TimelineEvent is one entry in the public tracking timeline.
type TimelineEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"` // public notes only
}

// TrackingView is the employee-safe projection of a request. It carries no
// internal HR notes and no reviewer identity.
type TrackingView struct {
	Reference     string          `json:"reference"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	CurrentStatus string          `json:"current_status"`
	SubmittedBy   string          `json:"submitted_by"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	Timeline      []TimelineEvent `json:"timeline"`
	LastUpdated   time.Time       `json:"last_updated"`
	StatusLabel   string          `json:"status_label"`
	NextSteps     string          `json:"next_steps,omitempty"`
}

type TrackingUsecase struct {
	repo repository.RequestRepository
	log  *zap.Logger
}

func NewTrackingUsecase(repo repository.RequestRepository, log *zap.Logger) *TrackingUsecase {
	return &TrackingUsecase{repo: repo, log: log}
}

// StatusLabel returns the friendly label for a status, falling back to the
// raw value for anything outside the known set.
func StatusLabel(status model.RequestStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// Track builds the redacted tracking view for a reference.
//
// The timeline has at most two entries: the submission, and the latest
// review if one happened. Intermediate transitions are not retained (there
// is no history table), and that cap is deliberate.
func (u *TrackingUsecase) Track(reference string) (*TrackingView, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))

	req, err := u.repo.FindByReference(reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		u.log.Error("failed to load request for tracking",
			zap.String("reference", reference), zap.Error(err))
		return nil, fmt.Errorf("track request: %w", err)
	}

	timeline := []TimelineEvent{
		{
			Timestamp:   req.SubmittedAt,
			Status:      string(model.StatusSubmitted),
			Description: "Request submitted",
		},
	}

	if req.ReviewedAt != nil && req.Status != model.StatusSubmitted {
		timeline = append(timeline, TimelineEvent{
			Timestamp:   *req.ReviewedAt,
			Status:      string(req.Status),
			Description: fmt.Sprintf("Status changed to %s", StatusLabel(req.Status)),
			Notes:       req.PublicNotes,
		})
	}

	return &TrackingView{
		Reference:     req.Reference,
		Title:         req.Title,
		Description:   req.Description,
		CurrentStatus: string(req.Status),
		SubmittedBy:   req.SubmittedBy,
		SubmittedAt:   req.SubmittedAt,
		Timeline:      timeline,
		LastUpdated:   req.UpdatedAt,
		StatusLabel:   StatusLabel(req.Status),
		NextSteps:     nextSteps[req.Status],
	}, nil
}
