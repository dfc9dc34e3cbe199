package schedule_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"worknest/internal/schedule"
	"worknest/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClient_Push(t *testing.T) {
	ctx := context.Background()

	entry := schedule.UpsertEntryRequest{
		StaffID:    1,
		Date:       "2024-06-10",
		Department: "IT",
		Status:     "Approved",
	}

	t.Run("delivers on first attempt", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, "/schedules", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := schedule.NewClient(srv.URL, time.Second, zap.NewNop())
		assert.NoError(t, client.Push(ctx, entry))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("retries a 5xx and succeeds", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := schedule.NewClient(srv.URL, time.Second, zap.NewNop())
		assert.NoError(t, client.Push(ctx, entry))
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := schedule.NewClient(srv.URL, time.Second, zap.NewNop())
		err := client.Push(ctx, entry)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeDownstreamUnavailable, appErr.Code)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("does not retry a 4xx", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := schedule.NewClient(srv.URL, time.Second, zap.NewNop())
		err := client.Push(ctx, entry)

		assert.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

// both pusher variants stay interchangeable
var (
	_ schedule.Pusher = (*schedule.LocalPusher)(nil)
	_ schedule.Pusher = (*schedule.Client)(nil)
)
