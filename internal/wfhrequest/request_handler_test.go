package wfhrequest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worknest/internal/wfhrequest"
	wfhrequesterrors "worknest/internal/wfhrequest/errors"
	wfhrequestMock "worknest/internal/wfhrequest/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type handlerEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupHandlerTest(t *testing.T) (*gin.Engine, *wfhrequestMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := wfhrequestMock.NewMockService(ctrl)
	handler := wfhrequest.NewHandler(svc)

	r := gin.New()
	wfhrequest.RegisterRoutes(r, handler)
	return r, svc
}

func TestRequestHandler_Create(t *testing.T) {
	t.Run("created request comes back in the envelope", func(t *testing.T) {
		r, svc := setupHandlerTest(t)

		svc.EXPECT().
			Create(gomock.Any(), wfhrequest.CreateRequestRequest{
				StaffID:        1,
				Department:     "IT",
				RequestedDates: []string{"2024-06-10"},
				Reason:         "WFH",
			}).
			Return(wfhrequest.RequestResponse{
				RequestID: "generated",
				Status:    wfhrequest.StatusPending,
			}, nil)

		body := `{"staff_id":1,"department":"IT","requested_dates":["2024-06-10"],"reason":"WFH"}`
		req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var env handlerEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), wfhrequest.StatusPending)
	})

	t.Run("missing requested_dates is a validation error", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		body := `{"staff_id":1,"department":"IT","reason":"WFH"}`
		req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var env handlerEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestRequestHandler_GetById(t *testing.T) {
	t.Run("not found propagates", func(t *testing.T) {
		r, svc := setupHandlerTest(t)

		svc.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(wfhrequest.RequestResponse{}, wfhrequesterrors.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/requests/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequestHandler_GetByStaff(t *testing.T) {
	t.Run("non-numeric staff id is rejected", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/staff/abc/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("listing for a staff member", func(t *testing.T) {
		r, svc := setupHandlerTest(t)

		svc.EXPECT().
			GetByStaff(gomock.Any(), 1).
			Return([]wfhrequest.RequestResponse{{RequestID: "a"}, {RequestID: "b"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/staff/1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var env handlerEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

		var items []wfhrequest.RequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, 2)
	})
}
