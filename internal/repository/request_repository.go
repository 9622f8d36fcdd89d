package repository

import (
	"hr-portal-backend/internal/model"

	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(req *model.Request) error
	FindByReference(reference string) (*model.Request, error)
	Update(req *model.Request) error
	List(status *model.RequestStatus, limit, offset int) ([]model.Request, error)
	CountByStatus(status model.RequestStatus) (int64, error)
	CountByReferencePrefix(prefix string) (int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db}
}

func (r *requestRepository) Create(req *model.Request) error {
	return r.db.Create(req).Error
}

func (r *requestRepository) FindByReference(reference string) (*model.Request, error) {
	var req model.Request
	err := r.db.Where("reference = ?", reference).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) Update(req *model.Request) error {
	return r.db.Save(req).Error
}

func (r *requestRepository) List(status *model.RequestStatus, limit, offset int) ([]model.Request, error) {
	// Never nil, so an empty page serializes as [] and not null.
	list := []model.Request{}
	query := r.db.Model(&model.Request{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *requestRepository) CountByStatus(status model.RequestStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Request{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByReferencePrefix counts references matching prefix (e.g. "REF-2026-").
// Used by reference generation to pick the next sequence number.
func (r *requestRepository) CountByReferencePrefix(prefix string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Request{}).Where("reference LIKE ?", prefix+"%").Count(&count).Error
	return count, err
}
