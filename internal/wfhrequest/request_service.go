package wfhrequest

import (
	"context"
	"errors"
	"sort"
	"time"

	wfhrequesterrors "worknest/internal/wfhrequest/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ManagerInfo is what the profile service knows about a reporting manager.
type ManagerInfo struct {
	StaffID int
	Name    string
	Email   string
}

// ManagerResolver looks up who approves for a staff member. Implemented by
// the profile HTTP client; the original UI did this lookup itself and sent
// the result in the submit body, which let the fields drift.
//
//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type ManagerResolver interface {
	ReportingManager(ctx context.Context, staffID int) (ManagerInfo, error)
}

type Service interface {
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	GetAll(ctx context.Context) ([]RequestResponse, error)
	GetByID(ctx context.Context, id string) (RequestResponse, error)
	GetByStaff(ctx context.Context, staffID int) ([]RequestResponse, error)
	GetByManager(ctx context.Context, managerID int) ([]RequestResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	managers ManagerResolver
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, managers ManagerResolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("wfhrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wfhrequest.service")
	}
	return &service{db: db, repo: repo, managers: managers, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error) {
	s.logger.Debug("create request requested",
		zap.Int("staff_id", req.StaffID),
		zap.String("department", req.Department),
		zap.Strings("requested_dates", req.RequestedDates),
	)

	dates, err := parseRequestedDates(req.RequestedDates)
	if err != nil {
		s.logger.Warn("create request validation failed", zap.Error(err))
		return RequestResponse{}, err
	}

	timeOfDay := req.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = TimeOfDayFull
	}

	manager, err := s.managers.ReportingManager(ctx, req.StaffID)
	if err != nil {
		s.logger.Error("create request manager lookup failed",
			zap.Int("staff_id", req.StaffID),
			zap.Error(err),
		)
		return RequestResponse{}, wfhrequesterrors.ErrManagerLookupFailed
	}

	id := uuid.New()
	requestDates := make([]RequestDate, len(dates))
	for i, d := range dates {
		requestDates[i] = RequestDate{ID: uuid.New(), RequestID: id, Date: d}
	}

	r := &Request{
		ID:                    id,
		StaffID:               req.StaffID,
		Department:            req.Department,
		Reason:                req.Reason,
		TimeOfDay:             timeOfDay,
		Status:                StatusPending,
		ReportingManagerID:    manager.StaffID,
		ReportingManagerName:  manager.Name,
		ReportingManagerEmail: manager.Email,
		RequesterEmail:        req.RequesterEmail,
		Dates:                 requestDates,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, r)
	})
	if err != nil {
		s.logger.Error("create request persist failed", zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("create request success",
		zap.String("request_id", r.ID.String()),
		zap.Int("staff_id", r.StaffID),
		zap.Int("dates", len(r.Dates)),
	)

	return MapToResponse(*r), nil
}

func (s *service) GetAll(ctx context.Context) ([]RequestResponse, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RequestResponse{}, wfhrequesterrors.ErrInvalidRequestID
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RequestResponse{}, wfhrequesterrors.ErrRequestNotFound
		}
		return RequestResponse{}, err
	}
	return MapToResponse(*r), nil
}

func (s *service) GetByStaff(ctx context.Context, staffID int) ([]RequestResponse, error) {
	requests, err := s.repo.FindByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByManager(ctx context.Context, managerID int) ([]RequestResponse, error) {
	requests, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func parseRequestedDates(raw []string) ([]time.Time, error) {
	if len(raw) == 0 {
		return nil, wfhrequesterrors.ErrNoRequestedDates
	}

	seen := make(map[string]struct{}, len(raw))
	dates := make([]time.Time, 0, len(raw))
	for _, v := range raw {
		if _, dup := seen[v]; dup {
			return nil, wfhrequesterrors.ErrDuplicateDates
		}
		seen[v] = struct{}{}

		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, wfhrequesterrors.ErrInvalidDateFormat
		}
		dates = append(dates, t)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// MapToResponse is shared with the approval module, which returns updated
// request bodies from the same canonical shape.
func MapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		RequestID:             r.ID.String(),
		StaffID:               r.StaffID,
		Department:            r.Department,
		RequestedDates:        r.DateStrings(),
		TimeOfDay:             r.TimeOfDay,
		Reason:                r.Reason,
		Status:                r.Status,
		ReportingManagerID:    r.ReportingManagerID,
		ReportingManagerName:  r.ReportingManagerName,
		ReportingManagerEmail: r.ReportingManagerEmail,
		RequesterEmail:        r.RequesterEmail,
		ApproverComment:       r.ApproverComment,
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(requests []Request) []RequestResponse {
	resp := make([]RequestResponse, len(requests))
	for i, r := range requests {
		resp[i] = MapToResponse(r)
	}
	return resp
}
