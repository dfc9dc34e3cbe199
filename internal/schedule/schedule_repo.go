package schedule

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Upsert(ctx context.Context, e *Entry) error
	FindAll(ctx context.Context) ([]Entry, error)
	FindByStaff(ctx context.Context, staffID int) ([]Entry, error)
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

func (r *repository) Upsert(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "staff_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"department", "status", "updated_at"}),
		}).
		Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Order("date DESC, staff_id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByStaff(ctx context.Context, staffID int) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}
