package notification

import (
	"context"
	"fmt"

	"worknest/internal/events"
	"worknest/internal/wfhrequest"

	"go.uber.org/zap"
)

// Service turns a decision event into the requester and approver emails.
// Delivery is at-least-once; a duplicate event just re-sends the same mail,
// so no state is kept here.
type Service interface {
	Notify(ctx context.Context, event events.RequestDecisionEvent) error
}

type service struct {
	mailer Mailer
	logger *zap.Logger
}

func NewService(mailer Mailer, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{mailer: mailer, logger: l}
}

func (s *service) Notify(ctx context.Context, event events.RequestDecisionEvent) error {
	requesterSubject, requesterBody := composeRequesterEmail(event)
	approverSubject, approverBody := composeApproverEmail(event)

	if err := s.mailer.Send(ctx, event.Email, requesterSubject, requesterBody); err != nil {
		return fmt.Errorf("send requester email: %w", err)
	}

	if err := s.mailer.Send(ctx, event.ApproverEmail, approverSubject, approverBody); err != nil {
		return fmt.Errorf("send approver email: %w", err)
	}

	s.logger.Info("decision emails sent",
		zap.String("request_id", event.RequestID),
		zap.String("action", event.Action),
		zap.String("wfh_date", event.WfhDate),
	)
	return nil
}

func composeRequesterEmail(event events.RequestDecisionEvent) (subject, body string) {
	if event.Action == wfhrequest.StatusApproved {
		subject = "WFH Request Approved"
		body = fmt.Sprintf(
			"Congratulations! Your request for WFH on %s has been approved.\n\nComments: %s",
			event.WfhDate, event.Comment,
		)
		return subject, body
	}

	subject = "WFH Request Rejected"
	body = fmt.Sprintf(
		"Unfortunately, your request for WFH on %s has been rejected.\n\nComments: %s",
		event.WfhDate, event.Comment,
	)
	return subject, body
}

func composeApproverEmail(event events.RequestDecisionEvent) (subject, body string) {
	if event.Action == wfhrequest.StatusApproved {
		subject = "Approval Confirmation"
		body = fmt.Sprintf(
			"You have approved the WFH request for %s from the requester. Comments: %s",
			event.WfhDate, event.Comment,
		)
		return subject, body
	}

	subject = "Rejection Confirmation"
	body = fmt.Sprintf(
		"You have rejected the WFH request for %s from the requester. Comments: %s",
		event.WfhDate, event.Comment,
	)
	return subject, body
}
