package approval_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worknest/internal/approval"
	approvalMock "worknest/internal/approval/mock"
	"worknest/internal/authz"
	"worknest/internal/middleware"
	"worknest/internal/wfhrequest"
	wfhrequesterrors "worknest/internal/wfhrequest/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *approvalMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := approvalMock.NewMockService(ctrl)
	handler := approval.NewHandler(svc)

	r := gin.New()
	r.POST("/requests/:id/approve", handler.Approve)
	r.POST("/requests/:id/reject", handler.Reject)

	authed := r.Group("/requests/:id")
	authed.Use(middleware.AuthContext(""))
	authed.PUT("/withdraw", handler.Withdraw)
	authed.PUT("/cancel", handler.Cancel)
	authed.PUT("", handler.Update)

	return r, svc
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(r *gin.Engine, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestApprovalHandler_Approve(t *testing.T) {
	t.Run("returns the decision body on success", func(t *testing.T) {
		r, svc := setupHandlerTest(t)

		svc.EXPECT().
			Approve(gomock.Any(), "abc", approval.DecisionRequest{
				ApproverID:      2,
				ApproverEmail:   "manager@worknest.test",
				ApproverComment: "ok",
			}).
			Return(&approval.DecisionResponse{
				Status:  "Request approved",
				Request: wfhrequest.RequestResponse{Status: wfhrequest.StatusApproved},
			}, nil)

		w, env := doJSON(r, http.MethodPost, "/requests/abc/approve",
			`{"approver_id":2,"approver_email":"manager@worknest.test","approver_comment":"ok"}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), "Request approved")
	})

	t.Run("rejects a body without approver_id", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		w, env := doJSON(r, http.MethodPost, "/requests/abc/approve",
			`{"approver_email":"manager@worknest.test"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("maps not found from the service", func(t *testing.T) {
		r, svc := setupHandlerTest(t)

		svc.EXPECT().
			Approve(gomock.Any(), "abc", gomock.Any()).
			Return(nil, wfhrequesterrors.ErrRequestNotFound)

		w, env := doJSON(r, http.MethodPost, "/requests/abc/approve",
			`{"approver_id":2,"approver_email":"manager@worknest.test"}`, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestApprovalHandler_Withdraw(t *testing.T) {
	t.Run("requires the identity headers", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		w, env := doJSON(r, http.MethodPut, "/requests/abc/withdraw", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "MISSING_AUTH_CONTEXT", env.Error.Code)
	})

	t.Run("passes the caller from the headers to the service", func(t *testing.T) {
		r, svc := setupHandlerTest(t)

		svc.EXPECT().
			Withdraw(gomock.Any(), "abc", authz.Caller{
				Role: authz.RoleStaff, StaffID: 1, Department: "IT",
			}).
			Return(&approval.DecisionResponse{
				Status:  "Request withdrawn",
				Request: wfhrequest.RequestResponse{Status: wfhrequest.StatusWithdrawn},
			}, nil)

		w, env := doJSON(r, http.MethodPut, "/requests/abc/withdraw", "", map[string]string{
			"X-Role":       "Staff",
			"X-Staff-ID":   "1",
			"X-Department": "IT",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)
	})

	t.Run("accepts the legacy numeric role codes", func(t *testing.T) {
		r, svc := setupHandlerTest(t)

		svc.EXPECT().
			Withdraw(gomock.Any(), "abc", authz.Caller{
				Role: authz.RoleManager, StaffID: 3, Department: "Sales",
			}).
			Return(&approval.DecisionResponse{Status: "Request withdrawn"}, nil)

		w, _ := doJSON(r, http.MethodPut, "/requests/abc/withdraw", "", map[string]string{
			"X-Role":       "3",
			"X-Staff-ID":   "3",
			"X-Department": "Sales",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestApprovalHandler_Update(t *testing.T) {
	t.Run("binds dates and reason and forwards the caller", func(t *testing.T) {
		r, svc := setupHandlerTest(t)

		svc.EXPECT().
			Update(gomock.Any(), "abc", authz.Caller{
				Role: authz.RoleStaff, StaffID: 1, Department: "IT",
			}, approval.UpdateRequestRequest{
				RequestedDates: []string{"2024-06-12"},
				Reason:         "moved",
			}).
			Return(&approval.DecisionResponse{
				Status:  "Request updated",
				Request: wfhrequest.RequestResponse{Status: wfhrequest.StatusPending},
			}, nil)

		w, env := doJSON(r, http.MethodPut, "/requests/abc",
			`{"requested_dates":["2024-06-12"],"reason":"moved"}`, map[string]string{
				"X-Role":       "Staff",
				"X-Staff-ID":   "1",
				"X-Department": "IT",
			})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Ok)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		w, env := doJSON(r, http.MethodPut, "/requests/abc",
			`{"requested_dates":["12-06-2024"],"reason":"moved"}`, map[string]string{
				"X-Role":       "Staff",
				"X-Staff-ID":   "1",
				"X-Department": "IT",
			})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}
