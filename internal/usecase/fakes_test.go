package usecase

import (
	"sort"
	"strings"
	"time"

	"hr-portal-backend/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// In-memory fakes implementing the repository interfaces, shared by the
// usecase tests in this package.

type fakeRequestRepo struct {
	requests []model.Request
	nextID   uint

	// Number of Creates to reject with a duplicate-key error before
	// accepting, to simulate the reference race.
	duplicateCreates int

	failWith error
}

func (f *fakeRequestRepo) Create(req *model.Request) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.duplicateCreates > 0 {
		f.duplicateCreates--
		return gorm.ErrDuplicatedKey
	}
	for _, r := range f.requests {
		if r.Reference == req.Reference {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	req.ID = f.nextID
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now
	f.requests = append(f.requests, *req)
	return nil
}

func (f *fakeRequestRepo) FindByReference(reference string) (*model.Request, error) {
	for _, r := range f.requests {
		if r.Reference == reference {
			cp := r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRequestRepo) Update(req *model.Request) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, r := range f.requests {
		if r.ID == req.ID {
			f.requests[i] = *req
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRequestRepo) List(status *model.RequestStatus, limit, offset int) ([]model.Request, error) {
	var filtered []model.Request
	for _, r := range f.requests {
		if status == nil || r.Status == *status {
			filtered = append(filtered, r)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	if offset >= len(filtered) {
		return []model.Request{}, nil
	}
	filtered = filtered[offset:]
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (f *fakeRequestRepo) CountByStatus(status model.RequestStatus) (int64, error) {
	var count int64
	for _, r := range f.requests {
		if r.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeRequestRepo) CountByReferencePrefix(prefix string) (int64, error) {
	var count int64
	for _, r := range f.requests {
		if strings.HasPrefix(r.Reference, prefix) {
			count++
		}
	}
	return count, nil
}

type fakeNotificationRepo struct {
	logs []model.NotificationLog
}

func (f *fakeNotificationRepo) Create(log *model.NotificationLog) error {
	log.ID = uint(len(f.logs) + 1)
	log.CreatedAt = time.Now().UTC()
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeNotificationRepo) List(notificationType string, limit int) ([]model.NotificationLog, error) {
	var out []model.NotificationLog
	for i := len(f.logs) - 1; i >= 0; i-- {
		if notificationType != "" && f.logs[i].NotificationType != notificationType {
			continue
		}
		out = append(out, f.logs[i])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeComplianceRepo struct {
	events []model.ComplianceEvent
}

func (f *fakeComplianceRepo) Create(event *model.ComplianceEvent) error {
	event.ID = uint(len(f.events) + 1)
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeComplianceRepo) FindInWindow(from, to time.Time, activeOnly bool) ([]model.ComplianceEvent, error) {
	var out []model.ComplianceEvent
	for _, e := range f.events {
		if e.EventDate.Before(from) || e.EventDate.After(to) {
			continue
		}
		if activeOnly && !e.IsActive {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (f *fakeComplianceRepo) FindCriticalInWindow(from, to time.Time) ([]model.ComplianceEvent, error) {
	all, _ := f.FindInWindow(from, to, true)
	var out []model.ComplianceEvent
	for _, e := range all {
		if e.Severity == model.SeverityCritical {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestNotifier(repo *fakeNotificationRepo) *NotificationService {
	return NewNotificationService(repo, nil, "no-reply@test.ae", zap.NewNop())
}

func newTestRequestUsecase() (*RequestUsecase, *fakeRequestRepo, *fakeNotificationRepo) {
	repo := &fakeRequestRepo{}
	notifRepo := &fakeNotificationRepo{}
	uc := NewRequestUsecase(repo, newTestNotifier(notifRepo), zap.NewNop())
	return uc, repo, notifRepo
}
