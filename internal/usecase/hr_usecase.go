package usecase

import (
	"fmt"

	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"

	"go.uber.org/zap"
)

const (
	defaultQueueLimit = 50
	maxQueueLimit     = 100
)

// QueueStats is the per-status breakdown for the HR dashboard.
type QueueStats struct {
	StatusCounts map[string]int64 `json:"status_counts"`
	Total        int64            `json:"total"`
}

type HRUsecase struct {
	repo repository.RequestRepository
	log  *zap.Logger
}

func NewHRUsecase(repo repository.RequestRepository, log *zap.Logger) *HRUsecase {
	return &HRUsecase{repo: repo, log: log}
}

// Queue returns the HR request queue, most recent first. An unrecognized
// status filter yields an empty page rather than an error.
func (u *HRUsecase) Queue(statusFilter string, limit, offset int) ([]model.Request, error) {
	if limit < 1 || limit > maxQueueLimit {
		limit = defaultQueueLimit
	}
	if offset < 0 {
		offset = 0
	}

	var status *model.RequestStatus
	if statusFilter != "" {
		parsed, err := model.ParseRequestStatus(statusFilter)
		if err != nil {
			return []model.Request{}, nil
		}
		status = &parsed
	}

	list, err := u.repo.List(status, limit, offset)
	if err != nil {
		u.log.Error("failed to list HR queue", zap.Error(err))
		return nil, fmt.Errorf("list queue: %w", err)
	}
	if list == nil {
		list = []model.Request{}
	}
	return list, nil
}

// Stats counts requests per status. Every status key is always present.
func (u *HRUsecase) Stats() (*QueueStats, error) {
	stats := &QueueStats{StatusCounts: make(map[string]int64)}

	for _, status := range model.AllStatuses() {
		count, err := u.repo.CountByStatus(status)
		if err != nil {
			u.log.Error("failed to count requests",
				zap.String("status", string(status)), zap.Error(err))
			return nil, fmt.Errorf("count by status: %w", err)
		}
		stats.StatusCounts[string(status)] = count
		stats.Total += count
	}

	return stats, nil
}
