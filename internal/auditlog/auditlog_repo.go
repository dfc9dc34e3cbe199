package auditlog

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auditlog_repo.go -destination=mock/auditlog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Entry) error
	FindAll(ctx context.Context) ([]Entry, error)
	FindByRequest(ctx context.Context, requestID string) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Order("action_timestamp DESC, requested_date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByRequest(ctx context.Context, requestID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("action_timestamp DESC, requested_date ASC").
		Find(&entries).Error
	return entries, err
}
