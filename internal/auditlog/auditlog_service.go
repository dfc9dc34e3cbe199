package auditlog

import (
	"context"
	"encoding/json"
	"time"

	wfhrequesterrors "worknest/internal/wfhrequest/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const listCacheKey = "audit_log:list"

type Service interface {
	GetAll(ctx context.Context) ([]EntryResponse, error)
	GetByRequest(ctx context.Context, requestID string) ([]EntryResponse, error)
	// InvalidateCache is called by the orchestrator after a decision commits.
	InvalidateCache(ctx context.Context)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("auditlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auditlog.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]EntryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, listCacheKey).Result(); err == nil {
			var resp []EntryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight: the HR dashboard polls this list, one query per burst.
	v, err, _ := s.sf.Do(listCacheKey, func() (interface{}, error) {
		entries, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(entries)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, listCacheKey, jsonData, 5*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EntryResponse), nil
}

func (s *service) GetByRequest(ctx context.Context, requestID string) ([]EntryResponse, error) {
	if _, err := uuid.Parse(requestID); err != nil {
		return nil, wfhrequesterrors.ErrInvalidRequestID
	}

	entries, err := s.repo.FindByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(entries), nil
}

func (s *service) InvalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, listCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate audit log cache",
			zap.Error(err),
			zap.String("key", listCacheKey),
		)
	}
}

func mapToResponse(e Entry) EntryResponse {
	return EntryResponse{
		LogID:           e.ID.String(),
		RequestID:       e.RequestID.String(),
		RequesterEmail:  e.RequesterEmail,
		Action:          e.Action,
		ApproverID:      e.ApproverID,
		ApproverEmail:   e.ApproverEmail,
		RequestedDate:   e.RequestedDate.Format("2006-01-02"),
		Department:      e.Department,
		TimeOfDay:       e.TimeOfDay,
		Comment:         e.Comment,
		ActionTimestamp: e.ActionTimestamp.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(entries []Entry) []EntryResponse {
	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapToResponse(e)
	}
	return resp
}
