package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"worknest/internal/shared/apperror"
	"worknest/internal/wfhrequest"

	"go.uber.org/zap"
)

const (
	lookupMaxAttempts = 3
	lookupBaseBackoff = 200 * time.Millisecond
)

// LocalResolver answers reporting-manager lookups through the in-process
// profile service.
type LocalResolver struct {
	service Service
}

func NewLocalResolver(service Service) *LocalResolver {
	return &LocalResolver{service: service}
}

func (r *LocalResolver) ReportingManager(ctx context.Context, staffID int) (wfhrequest.ManagerInfo, error) {
	manager, err := r.service.ReportingManager(ctx, staffID)
	if err != nil {
		return wfhrequest.ManagerInfo{}, err
	}
	return wfhrequest.ManagerInfo{
		StaffID: manager.StaffID,
		Name:    manager.FirstName + " " + manager.LastName,
		Email:   manager.Email,
	}, nil
}

// Client answers the same lookup over HTTP when the profile module runs as
// its own service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("profile.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.client")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}
}

// ReportingManager retries transient failures with backoff; a 404 is a
// definitive answer and returns immediately.
func (c *Client) ReportingManager(ctx context.Context, staffID int) (wfhrequest.ManagerInfo, error) {
	var lastErr error
	for attempt := 1; attempt <= lookupMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return wfhrequest.ManagerInfo{}, ctx.Err()
			case <-time.After(lookupBaseBackoff * time.Duration(attempt-1)):
			}
		}

		info, err := c.lookupOnce(ctx, staffID)
		if err == nil {
			return info, nil
		}
		if !lookupRetryable(err) {
			return wfhrequest.ManagerInfo{}, err
		}
		lastErr = err

		c.logger.Warn("manager lookup attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("staff_id", staffID),
			zap.Error(err))
	}

	return wfhrequest.ManagerInfo{}, apperror.Wrap(lastErr, apperror.CodeDownstreamUnavailable,
		"profile service unavailable", http.StatusServiceUnavailable)
}

func (c *Client) lookupOnce(ctx context.Context, staffID int) (wfhrequest.ManagerInfo, error) {
	url := fmt.Sprintf("%s/profiles/%d/manager", c.baseURL, staffID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return wfhrequest.ManagerInfo{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return wfhrequest.ManagerInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return wfhrequest.ManagerInfo{}, apperror.New(apperror.CodeNotFound,
			"Reporting manager not found", http.StatusNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return wfhrequest.ManagerInfo{}, fmt.Errorf("profile service returned %d", resp.StatusCode)
	}

	var envelope struct {
		Data ProfileResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return wfhrequest.ManagerInfo{}, fmt.Errorf("profile service returned an invalid body: %w", err)
	}

	return wfhrequest.ManagerInfo{
		StaffID: envelope.Data.StaffID,
		Name:    envelope.Data.FirstName + " " + envelope.Data.LastName,
		Email:   envelope.Data.Email,
	}, nil
}

// lookupRetryable treats anything without a mapped AppError (network
// errors, 5xx, bad bodies) as transient.
func lookupRetryable(err error) bool {
	var appErr *apperror.AppError
	return !errors.As(err, &appErr)
}
