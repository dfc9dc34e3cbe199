package schedule

import (
	"context"
	"time"

	"worknest/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, req UpsertEntryRequest) (*EntryResponse, error)
	GetAll(ctx context.Context) ([]EntryResponse, error)
	GetByStaff(ctx context.Context, staffID int) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Upsert(ctx context.Context, req UpsertEntryRequest) (*EntryResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperror.InvalidField("date")
	}

	entry := &Entry{
		StaffID:    req.StaffID,
		Date:       date,
		Department: req.Department,
		Status:     req.Status,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		s.logger.Error("failed to upsert schedule entry",
			zap.Int("staff_id", req.StaffID),
			zap.String("date", req.Date),
			zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to save schedule entry", 500)
	}

	resp := mapToResponse(*entry)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]EntryResponse, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list schedule", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list schedule", 500)
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapToResponse(e))
	}
	return resp, nil
}

func (s *service) GetByStaff(ctx context.Context, staffID int) ([]EntryResponse, error) {
	entries, err := s.repo.FindByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("failed to list schedule for staff",
			zap.Int("staff_id", staffID),
			zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to list schedule", 500)
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, mapToResponse(e))
	}
	return resp, nil
}

func mapToResponse(e Entry) EntryResponse {
	return EntryResponse{
		StaffID:    e.StaffID,
		Date:       e.Date.Format("2006-01-02"),
		Department: e.Department,
		Status:     e.Status,
	}
}
