package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"worknest/internal/shared/apperror"

	"go.uber.org/zap"
)

// Pusher propagates decision outcomes into the schedule. The in-process
// service satisfies it directly; Client satisfies it over HTTP when the
// schedule module is deployed on its own.
//
//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock
type Pusher interface {
	Push(ctx context.Context, entry UpsertEntryRequest) error
}

const (
	pushMaxAttempts = 3
	pushBaseBackoff = 200 * time.Millisecond
)

// Client calls the schedule HTTP endpoint with bounded retries. Only
// network errors and 5xx responses are retried; a 4xx means the payload is
// wrong and retrying cannot help.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("schedule.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.client")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}
}

func (c *Client) Push(ctx context.Context, entry UpsertEntryRequest) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError, "failed to encode schedule entry", http.StatusInternalServerError)
	}

	var lastErr error
	for attempt := 1; attempt <= pushMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pushBaseBackoff * time.Duration(attempt-1)):
			}
		}

		lastErr = c.pushOnce(ctx, body)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}

		c.logger.Warn("schedule push attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("staff_id", entry.StaffID),
			zap.String("date", entry.Date),
			zap.Error(lastErr))
	}

	return apperror.Wrap(lastErr, apperror.CodeDownstreamUnavailable,
		"schedule service unavailable", http.StatusServiceUnavailable)
}

func (c *Client) pushOnce(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/schedules", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("schedule service returned %d", resp.StatusCode)
	}
	return apperror.New(apperror.CodeDownstreamUnavailable,
		fmt.Sprintf("schedule service rejected entry with status %d", resp.StatusCode),
		http.StatusBadGateway)
}

func isRetryable(err error) bool {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusBadGateway {
		return false
	}
	return true
}
