package wfhrequest

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *Request) error
	FindAll(ctx context.Context) ([]Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	// FindByIDForUpdate takes a row-level lock on the request so concurrent
	// decisions on the same request serialize. Call inside a transaction.
	FindByIDForUpdate(ctx context.Context, id string) (*Request, error)
	FindByStaff(ctx context.Context, staffID int) ([]Request, error)
	FindByManager(ctx context.Context, managerID int) ([]Request, error)
	Update(ctx context.Context, r *Request) error
	ReplaceDates(ctx context.Context, r *Request, dates []RequestDate) error
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Preload("Dates", orderDates).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Preload("Dates", orderDates).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	// The lock only needs the request row; dates are immutable during a
	// decision once the row is held.
	err = r.db.WithContext(ctx).
		Where("request_id = ?", req.ID).
		Order("date ASC").
		Find(&req.Dates).Error
	return &req, err
}

func (r *repository) FindByStaff(ctx context.Context, staffID int) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Preload("Dates", orderDates).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByManager(ctx context.Context, managerID int) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Preload("Dates", orderDates).
		Where("reporting_manager_id = ?", managerID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Omit("Dates").Save(req).Error
}

func (r *repository) ReplaceDates(ctx context.Context, req *Request, dates []RequestDate) error {
	if err := r.db.WithContext(ctx).
		Where("request_id = ?", req.ID).
		Delete(&RequestDate{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dates).Error; err != nil {
		return err
	}
	req.Dates = dates
	return nil
}

func orderDates(db *gorm.DB) *gorm.DB {
	return db.Order("request_dates.date ASC")
}
