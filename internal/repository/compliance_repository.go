package repository

import (
	"time"

	"hr-portal-backend/internal/model"

	"gorm.io/gorm"
)

type ComplianceRepository interface {
	Create(event *model.ComplianceEvent) error
	FindInWindow(from, to time.Time, activeOnly bool) ([]model.ComplianceEvent, error)
	FindCriticalInWindow(from, to time.Time) ([]model.ComplianceEvent, error)
}

type complianceRepository struct {
	db *gorm.DB
}

func NewComplianceRepository(db *gorm.DB) ComplianceRepository {
	return &complianceRepository{db}
}

func (r *complianceRepository) Create(event *model.ComplianceEvent) error {
	return r.db.Create(event).Error
}

func (r *complianceRepository) FindInWindow(from, to time.Time, activeOnly bool) ([]model.ComplianceEvent, error) {
	events := []model.ComplianceEvent{}
	query := r.db.Where("event_date >= ? AND event_date <= ?", from, to)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("event_date asc").Find(&events).Error
	return events, err
}

func (r *complianceRepository) FindCriticalInWindow(from, to time.Time) ([]model.ComplianceEvent, error) {
	events := []model.ComplianceEvent{}
	err := r.db.
		Where("event_date >= ? AND event_date <= ?", from, to).
		Where("severity = ?", model.SeverityCritical).
		Where("is_active = ?", true).
		Order("event_date asc").
		Find(&events).Error
	return events, err
}
