package profile_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"worknest/internal/profile"
	"worknest/internal/shared/apperror"
	"worknest/internal/wfhrequest"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const managerEnvelope = `{"data":{"staff_id":140001,"first_name":"Rina","last_name":"Wijaya","email":"rina.wijaya@worknest.test"}}`

func TestClient_ReportingManager(t *testing.T) {
	ctx := context.Background()

	t.Run("recovers from a transient 5xx on the next attempt", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/profiles/140333/manager", r.URL.Path)
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(managerEnvelope))
		}))
		defer srv.Close()

		client := profile.NewClient(srv.URL, time.Second, zap.NewNop())
		info, err := client.ReportingManager(ctx, 140333)

		assert.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
		assert.Equal(t, 140001, info.StaffID)
		assert.Equal(t, "Rina Wijaya", info.Name)
		assert.Equal(t, "rina.wijaya@worknest.test", info.Email)
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := profile.NewClient(srv.URL, time.Second, zap.NewNop())
		_, err := client.ReportingManager(ctx, 140333)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeDownstreamUnavailable, appErr.Code)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("does not retry a missing manager", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := profile.NewClient(srv.URL, time.Second, zap.NewNop())
		_, err := client.ReportingManager(ctx, 999999)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("stops waiting when the context is cancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		client := profile.NewClient(srv.URL, time.Second, zap.NewNop())
		_, err := client.ReportingManager(cancelled, 140333)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

// both resolver variants stay interchangeable
var (
	_ wfhrequest.ManagerResolver = (*profile.LocalResolver)(nil)
	_ wfhrequest.ManagerResolver = (*profile.Client)(nil)
)
