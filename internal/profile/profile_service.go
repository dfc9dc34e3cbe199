package profile

import (
	"context"
	"errors"
	"time"

	profileerrors "worknest/internal/profile/errors"
	"worknest/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	GetAll(ctx context.Context) ([]ProfileResponse, error)
	GetByID(ctx context.Context, staffID int) (*ProfileResponse, error)
	GetTeam(ctx context.Context, managerID int) ([]ProfileResponse, error)
	ReportingManager(ctx context.Context, staffID int) (*ProfileResponse, error)
}

type service struct {
	repo      Repository
	jwtSecret string
	logger    *zap.Logger
}

func NewService(repo Repository, jwtSecret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, jwtSecret: jwtSecret, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	p, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, profileerrors.ErrProfileNotFound) {
			// Same error as a wrong password so the response does not
			// reveal which emails exist.
			return nil, profileerrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to look up profile", 500)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, profileerrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(p)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Int("staff_id", p.StaffID), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to issue token", 500)
	}

	return &LoginResponse{Token: token, Profile: mapToResponse(p)}, nil
}

func (s *service) issueToken(p *Profile) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"staff_id":   p.StaffID,
		"role":       p.Role,
		"department": p.Department,
		"email":      p.Email,
		"iat":        now.Unix(),
		"exp":        now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *service) GetAll(ctx context.Context) ([]ProfileResponse, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list profiles", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list profiles", 500)
	}
	return mapAll(profiles), nil
}

func (s *service) GetByID(ctx context.Context, staffID int) (*ProfileResponse, error) {
	p, err := s.repo.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	resp := mapToResponse(p)
	return &resp, nil
}

func (s *service) GetTeam(ctx context.Context, managerID int) ([]ProfileResponse, error) {
	profiles, err := s.repo.FindTeam(ctx, managerID)
	if err != nil {
		s.logger.Error("failed to list team",
			zap.Int("manager_id", managerID),
			zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list team", 500)
	}
	return mapAll(profiles), nil
}

func (s *service) ReportingManager(ctx context.Context, staffID int) (*ProfileResponse, error) {
	p, err := s.repo.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if p.ReportingManagerID == nil {
		return nil, profileerrors.ErrNoReportingManager
	}

	manager, err := s.repo.FindByID(ctx, *p.ReportingManagerID)
	if err != nil {
		if errors.Is(err, profileerrors.ErrProfileNotFound) {
			return nil, profileerrors.ErrNoReportingManager
		}
		return nil, err
	}

	resp := mapToResponse(manager)
	return &resp, nil
}

func mapToResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		StaffID:            p.StaffID,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Email:              p.Email,
		Role:               p.Role,
		Department:         p.Department,
		Position:           p.Position,
		ReportingManagerID: p.ReportingManagerID,
	}
}

func mapAll(profiles []Profile) []ProfileResponse {
	resp := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, mapToResponse(&profiles[i]))
	}
	return resp
}
