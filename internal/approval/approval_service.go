package approval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	approvalerrors "worknest/internal/approval/errors"
	"worknest/internal/auditlog"
	"worknest/internal/authz"
	"worknest/internal/events"
	"worknest/internal/messaging/kafka"
	"worknest/internal/schedule"
	"worknest/internal/wfhrequest"
	wfhrequesterrors "worknest/internal/wfhrequest/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// AuditCache is the slice of the audit log service the orchestrator needs
// after a committed decision.
type AuditCache interface {
	InvalidateCache(ctx context.Context)
}

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	Approve(ctx context.Context, requestID string, req DecisionRequest) (*DecisionResponse, error)
	Reject(ctx context.Context, requestID string, req DecisionRequest) (*DecisionResponse, error)
	Withdraw(ctx context.Context, requestID string, caller authz.Caller) (*DecisionResponse, error)
	Cancel(ctx context.Context, requestID string, caller authz.Caller) (*DecisionResponse, error)
	Update(ctx context.Context, requestID string, caller authz.Caller, req UpdateRequestRequest) (*DecisionResponse, error)
}

// service drives a decision as one database transaction (request row,
// audit entries, outbox events) with the request row held under an
// exclusive lock, then pushes schedule entries after commit so no lock is
// held across network I/O. The request status is the source of truth; a
// failed schedule push degrades to a warning, never a rollback.
type service struct {
	db        *gorm.DB
	requests  wfhrequest.Repository
	audit     auditlog.Repository
	cache     AuditCache
	outbox    kafka.OutboxRepository
	schedules schedule.Pusher
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	requests wfhrequest.Repository,
	audit auditlog.Repository,
	cache AuditCache,
	outbox kafka.OutboxRepository,
	schedules schedule.Pusher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{
		db:        db,
		requests:  requests,
		audit:     audit,
		cache:     cache,
		outbox:    outbox,
		schedules: schedules,
		logger:    l,
	}
}

func (s *service) Approve(ctx context.Context, requestID string, req DecisionRequest) (*DecisionResponse, error) {
	return s.decide(ctx, requestID, req, wfhrequest.StatusApproved, "Request approved")
}

func (s *service) Reject(ctx context.Context, requestID string, req DecisionRequest) (*DecisionResponse, error) {
	return s.decide(ctx, requestID, req, wfhrequest.StatusRejected, "Request rejected")
}

// decide is the shared approve/reject path: lock the row, verify the
// Pending precondition, then write the status change, one audit entry per
// date and one outbox event per date inside a single transaction.
func (s *service) decide(ctx context.Context, requestID string, req DecisionRequest, target, statusMsg string) (*DecisionResponse, error) {
	now := time.Now().UTC()
	var decided *wfhrequest.Request

	err := s.db.Transaction(func(tx *gorm.DB) error {
		r, err := s.lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if r.Status != wfhrequest.StatusPending {
			return approvalerrors.InvalidTransition(r.Status, strings.ToLower(target))
		}

		r.Status = target
		// A delegate deciding on the manager's behalf must not leave the
		// original manager's name next to their own id and email.
		if req.ApproverID != r.ReportingManagerID {
			r.ReportingManagerName = ""
		}
		r.ReportingManagerID = req.ApproverID
		r.ReportingManagerEmail = req.ApproverEmail
		r.ApproverComment = optional(req.ApproverComment)

		if err := s.requests.WithTx(tx).Update(ctx, r); err != nil {
			return err
		}
		if err := s.recordDecision(ctx, tx, r, target, req.ApproverID, req.ApproverEmail, now); err != nil {
			return err
		}

		decided = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateCache(ctx)
	warning := s.pushSchedule(ctx, decided, target)

	s.logger.Info("decision committed",
		zap.String("request_id", requestID),
		zap.String("status", target),
		zap.Int("approver_id", req.ApproverID),
		zap.Int("dates", len(decided.Dates)))

	return &DecisionResponse{
		Status:  statusMsg,
		Request: wfhrequest.MapToResponse(*decided),
		Warning: warning,
	}, nil
}

func (s *service) Withdraw(ctx context.Context, requestID string, caller authz.Caller) (*DecisionResponse, error) {
	var withdrawn *wfhrequest.Request

	err := s.db.Transaction(func(tx *gorm.DB) error {
		r, err := s.lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if !authz.CanWithdraw(caller, facts(r)) {
			return approvalerrors.ErrActionForbidden
		}
		if r.Status != wfhrequest.StatusPending {
			return approvalerrors.InvalidTransition(r.Status, "withdraw")
		}

		r.Status = wfhrequest.StatusWithdrawn
		if err := s.requests.WithTx(tx).Update(ctx, r); err != nil {
			return err
		}

		withdrawn = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	warning := s.pushSchedule(ctx, withdrawn, wfhrequest.StatusWithdrawn)

	s.logger.Info("request withdrawn",
		zap.String("request_id", requestID),
		zap.Int("caller_staff_id", caller.StaffID))

	return &DecisionResponse{
		Status:  "Request withdrawn",
		Request: wfhrequest.MapToResponse(*withdrawn),
		Warning: warning,
	}, nil
}

func (s *service) Cancel(ctx context.Context, requestID string, caller authz.Caller) (*DecisionResponse, error) {
	var cancelled *wfhrequest.Request

	err := s.db.Transaction(func(tx *gorm.DB) error {
		r, err := s.lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if !authz.CanCancel(caller, facts(r)) {
			return approvalerrors.ErrActionForbidden
		}
		if r.Status != wfhrequest.StatusPending && r.Status != wfhrequest.StatusApproved {
			return approvalerrors.InvalidTransition(r.Status, "cancel")
		}

		r.Status = wfhrequest.StatusCancelled
		if err := s.requests.WithTx(tx).Update(ctx, r); err != nil {
			return err
		}

		cancelled = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	warning := s.pushSchedule(ctx, cancelled, wfhrequest.StatusCancelled)

	s.logger.Info("request cancelled",
		zap.String("request_id", requestID),
		zap.Int("caller_staff_id", caller.StaffID))

	return &DecisionResponse{
		Status:  "Request cancelled",
		Request: wfhrequest.MapToResponse(*cancelled),
		Warning: warning,
	}, nil
}

func (s *service) Update(ctx context.Context, requestID string, caller authz.Caller, req UpdateRequestRequest) (*DecisionResponse, error) {
	dates, err := parseDates(req.RequestedDates)
	if err != nil {
		return nil, err
	}

	var updated *wfhrequest.Request

	err = s.db.Transaction(func(tx *gorm.DB) error {
		r, err := s.lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if !authz.CanUpdate(caller, facts(r)) {
			return approvalerrors.ErrActionForbidden
		}
		if r.Status != wfhrequest.StatusPending && r.Status != wfhrequest.StatusApproved {
			return approvalerrors.InvalidTransition(r.Status, "update")
		}

		// Editing an approved request re-opens it for approval.
		r.Status = wfhrequest.StatusPending
		r.Reason = req.Reason
		if req.TimeOfDay != "" {
			r.TimeOfDay = req.TimeOfDay
		}
		r.ApproverComment = nil

		txRepo := s.requests.WithTx(tx)
		if err := txRepo.Update(ctx, r); err != nil {
			return err
		}

		rows := make([]wfhrequest.RequestDate, len(dates))
		for i, d := range dates {
			rows[i] = wfhrequest.RequestDate{ID: uuid.New(), RequestID: r.ID, Date: d}
		}
		if err := txRepo.ReplaceDates(ctx, r, rows); err != nil {
			return err
		}

		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("request updated",
		zap.String("request_id", requestID),
		zap.Int("caller_staff_id", caller.StaffID),
		zap.Int("dates", len(dates)))

	return &DecisionResponse{
		Status:  "Request updated",
		Request: wfhrequest.MapToResponse(*updated),
	}, nil
}

// lockRequest loads the request under FOR UPDATE so concurrent decisions
// on the same request serialize on the row.
func (s *service) lockRequest(ctx context.Context, tx *gorm.DB, requestID string) (*wfhrequest.Request, error) {
	if _, err := uuid.Parse(requestID); err != nil {
		return nil, wfhrequesterrors.ErrInvalidRequestID
	}

	r, err := s.requests.WithTx(tx).FindByIDForUpdate(ctx, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wfhrequesterrors.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// recordDecision writes one audit entry and one outbox event per
// requested date, all sharing the decision timestamp. The audit table's
// unique index backstops the row lock; a violation means another decision
// for the same date already landed.
func (s *service) recordDecision(ctx context.Context, tx *gorm.DB, r *wfhrequest.Request, action string, approverID int, approverEmail string, now time.Time) error {
	auditRepo := s.audit.WithTx(tx)
	outboxRepo := s.outbox.WithTx(tx)

	for _, d := range r.Dates {
		entry := &auditlog.Entry{
			RequestID:       r.ID,
			RequesterEmail:  r.RequesterEmail,
			Action:          action,
			ApproverID:      approverID,
			ApproverEmail:   approverEmail,
			RequestedDate:   d.Date,
			Department:      r.Department,
			TimeOfDay:       r.TimeOfDay,
			Comment:         r.ApproverComment,
			ActionTimestamp: now,
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			if isUniqueViolation(err) {
				return approvalerrors.ErrDecisionConflict
			}
			return err
		}

		if err := s.enqueueNotification(ctx, outboxRepo, r, action, d.Date, now); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) enqueueNotification(ctx context.Context, repo kafka.OutboxRepository, r *wfhrequest.Request, action string, date time.Time, now time.Time) error {
	event := events.RequestDecisionEvent{
		EventType:     "request_decision",
		RequestID:     r.ID.String(),
		Action:        action,
		Email:         r.RequesterEmail,
		ApproverEmail: r.ReportingManagerEmail,
		WfhDate:       date.Format("2006-01-02"),
		Comment:       comment(r.ApproverComment),
		OccurredAt:    now,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return repo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     r.ID.String(),
		AggregateType: "wfh_request",
		AggregateID:   r.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RequestDecisionTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// pushSchedule propagates the committed status to the schedule, one upsert
// per date. The client retries internally; exhaustion comes back here as a
// warning because the decision must not be rolled back for a reporting
// surface.
func (s *service) pushSchedule(ctx context.Context, r *wfhrequest.Request, status string) string {
	var failed []string
	for _, d := range r.Dates {
		entry := schedule.UpsertEntryRequest{
			StaffID:    r.StaffID,
			Date:       d.Date.Format("2006-01-02"),
			Department: r.Department,
			Status:     status,
		}
		if err := s.schedules.Push(ctx, entry); err != nil {
			s.logger.Warn("schedule propagation failed",
				zap.String("request_id", r.ID.String()),
				zap.String("date", entry.Date),
				zap.String("status", status),
				zap.Error(err))
			failed = append(failed, entry.Date)
		}
	}

	if len(failed) == 0 {
		return ""
	}
	return fmt.Sprintf("decision recorded but schedule update failed for dates %s",
		strings.Join(failed, ", "))
}

func facts(r *wfhrequest.Request) authz.RequestFacts {
	return authz.RequestFacts{
		StaffID:            r.StaffID,
		Department:         r.Department,
		ReportingManagerID: r.ReportingManagerID,
	}
}

func parseDates(raw []string) ([]time.Time, error) {
	seen := make(map[string]struct{}, len(raw))
	dates := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		if _, dup := seen[s]; dup {
			return nil, wfhrequesterrors.ErrDuplicateDates
		}
		seen[s] = struct{}{}

		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, wfhrequesterrors.ErrInvalidDateFormat
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func comment(c *string) string {
	if c == nil {
		return ""
	}
	return *c
}
