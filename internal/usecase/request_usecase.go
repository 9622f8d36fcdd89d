package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"hr-portal-backend/internal/apperr"
	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"
	"hr-portal-backend/internal/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// How many times a creation retries when two submissions race to the same
// reference sequence. Each attempt recomputes the sequence from a fresh count.
const maxReferenceAttempts = 3

type CreateRequestInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SubmittedBy string `json:"submitted_by"`
}

// UpdateRequestInput carries the PATCH body. Nil means "field not supplied";
// each field is settable without the others.
type UpdateRequestInput struct {
	Status        *string `json:"status"`
	PublicNotes   *string `json:"public_notes"`
	InternalNotes *string `json:"internal_notes"`
	ReviewedBy    *string `json:"reviewed_by"`
}

type RequestUsecase struct {
	repo     repository.RequestRepository
	notifier *NotificationService
	log      *zap.Logger
}

func NewRequestUsecase(repo repository.RequestRepository, notifier *NotificationService, log *zap.Logger) *RequestUsecase {
	return &RequestUsecase{repo: repo, notifier: notifier, log: log}
}

// nextReference computes REF-YYYY-NNN for the current year. Sequences past
// 999 are not guarded; the count-then-insert race is handled by the caller
// retrying on duplicate key.
func (u *RequestUsecase) nextReference() (string, error) {
	year := time.Now().UTC().Year()
	prefix := fmt.Sprintf("REF-%d-", year)

	count, err := u.repo.CountByReferencePrefix(prefix)
	if err != nil {
		return "", fmt.Errorf("count references: %w", err)
	}

	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

// Create sanitizes and validates the input, assigns a unique reference and
// persists the request with status submitted.
func (u *RequestUsecase) Create(in CreateRequestInput) (*model.Request, error) {
	title := validation.SanitizeText(in.Title, 0)
	description := validation.SanitizeText(in.Description, 0)
	submittedBy := validation.SanitizeText(in.SubmittedBy, 0)

	fields := map[string]string{}
	if title == "" {
		fields["title"] = "title is required"
	} else if utf8.RuneCountInString(title) > 200 {
		fields["title"] = "title must be at most 200 characters"
	}
	if utf8.RuneCountInString(description) > 2000 {
		fields["description"] = "description must be at most 2000 characters"
	}
	if submittedBy == "" {
		fields["submitted_by"] = "submitted_by is required"
	} else if utf8.RuneCountInString(submittedBy) > 100 {
		fields["submitted_by"] = "submitted_by must be at most 100 characters"
	}
	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}

	var lastErr error
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		reference, err := u.nextReference()
		if err != nil {
			lastErr = err
			break
		}

		req := &model.Request{
			Reference:   reference,
			Title:       title,
			Description: description,
			SubmittedBy: submittedBy,
			Status:      model.StatusSubmitted,
			SubmittedAt: time.Now().UTC(),
		}

		err = u.repo.Create(req)
		if err == nil {
			u.notifier.RequestCreated(req)
			return req, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the count-then-insert race; recompute and try again.
			u.log.Warn("reference collision, retrying",
				zap.String("reference", reference),
				zap.Int("attempt", attempt))
			lastErr = err
			continue
		}
		lastErr = err
		break
	}

	u.log.Error("failed to create request", zap.Error(lastErr))
	return nil, fmt.Errorf("create request: %w", lastErr)
}

// AllowTransition decides whether a status change is permitted. Any status
// may currently follow any other; a transition table would slot in here
// without touching callers.
func AllowTransition(from, to model.RequestStatus) bool {
	return true
}

// UpdateStatus applies an HR update to the request identified by reference.
// A malformed or unknown reference is a not-found; an invalid status value
// is a validation failure, kept distinct.
func (u *RequestUsecase) UpdateStatus(reference string, in UpdateRequestInput) (*model.Request, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if !validation.ValidReference(reference) {
		return nil, apperr.ErrNotFound
	}

	req, err := u.repo.FindByReference(reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		u.log.Error("failed to look up request",
			zap.String("reference", reference), zap.Error(err))
		return nil, fmt.Errorf("find request: %w", err)
	}

	statusChanged := false
	if in.Status != nil {
		newStatus, err := model.ParseRequestStatus(*in.Status)
		if err != nil {
			return nil, apperr.Validation("status",
				fmt.Sprintf("invalid status %q, must be one of: submitted, reviewing, approved, completed, rejected", *in.Status))
		}
		if !AllowTransition(req.Status, newStatus) {
			return nil, apperr.Validation("status",
				fmt.Sprintf("transition from %q to %q is not allowed", req.Status, newStatus))
		}
		statusChanged = req.Status != newStatus
		req.Status = newStatus
	}

	if in.PublicNotes != nil {
		req.PublicNotes = validation.SanitizeText(*in.PublicNotes, 0)
	}
	if in.InternalNotes != nil {
		req.InternalNotes = validation.SanitizeText(*in.InternalNotes, 0)
	}
	if in.ReviewedBy != nil && *in.ReviewedBy != "" {
		req.ReviewedBy = validation.SanitizeText(*in.ReviewedBy, 100)
		now := time.Now().UTC()
		req.ReviewedAt = &now
	}

	req.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(req); err != nil {
		u.log.Error("failed to update request",
			zap.String("reference", reference), zap.Error(err))
		return nil, fmt.Errorf("update request: %w", err)
	}

	if statusChanged {
		u.notifier.StatusUpdated(req)
	}

	return req, nil
}
