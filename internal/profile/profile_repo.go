package profile

import (
	"context"
	"errors"

	profileerrors "worknest/internal/profile/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, staffID int) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	FindAll(ctx context.Context) ([]Profile, error)
	FindTeam(ctx context.Context, managerID int) ([]Profile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, staffID int) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "staff_id = ?", staffID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, profileerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, profileerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Order("staff_id ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) FindTeam(ctx context.Context, managerID int) ([]Profile, error) {
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Where("reporting_manager_id = ?", managerID).
		Order("staff_id ASC").
		Find(&profiles).Error
	return profiles, err
}
