package wfhrequest_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"worknest/internal/wfhrequest"
	wfhrequesterrors "worknest/internal/wfhrequest/errors"
	wfhrequestMock "worknest/internal/wfhrequest/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  wfhrequest.Service
	repo     *wfhrequestMock.MockRepository
	managers *wfhrequestMock.MockManagerResolver
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	repo := wfhrequestMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	managers := wfhrequestMock.NewMockManagerResolver(ctrl)

	svc := wfhrequest.NewService(gormDB, repo, managers, zap.NewNop())

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		managers: managers,
	}
}

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the reporting manager and persists pending", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.managers.EXPECT().
			ReportingManager(gomock.Any(), 1).
			Return(wfhrequest.ManagerInfo{
				StaffID: 2,
				Name:    "Alex Tan",
				Email:   "manager@worknest.test",
			}, nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *wfhrequest.Request
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *wfhrequest.Request) error {
				created = r
				return nil
			})

		resp, err := deps.service.Create(ctx, wfhrequest.CreateRequestRequest{
			StaffID:        1,
			Department:     "IT",
			RequestedDates: []string{"2024-06-11", "2024-06-10"},
			Reason:         "WFH",
			RequesterEmail: "staff@worknest.test",
		})

		assert.NoError(t, err)
		assert.Equal(t, wfhrequest.StatusPending, resp.Status)
		assert.Equal(t, 2, resp.ReportingManagerID)
		assert.Equal(t, "Alex Tan", resp.ReportingManagerName)
		// dates come back sorted regardless of submission order
		assert.Equal(t, []string{"2024-06-10", "2024-06-11"}, resp.RequestedDates)
		assert.Equal(t, wfhrequest.TimeOfDayFull, created.TimeOfDay)
	})

	t.Run("duplicate dates are rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, wfhrequest.CreateRequestRequest{
			StaffID:        1,
			Department:     "IT",
			RequestedDates: []string{"2024-06-10", "2024-06-10"},
			Reason:         "WFH",
		})

		assert.ErrorIs(t, err, wfhrequesterrors.ErrDuplicateDates)
	})

	t.Run("empty date list is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, wfhrequest.CreateRequestRequest{
			StaffID:    1,
			Department: "IT",
			Reason:     "WFH",
		})

		assert.ErrorIs(t, err, wfhrequesterrors.ErrNoRequestedDates)
	})

	t.Run("manager lookup failure maps to downstream unavailable", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.managers.EXPECT().
			ReportingManager(gomock.Any(), 1).
			Return(wfhrequest.ManagerInfo{}, errors.New("connection refused"))

		_, err := deps.service.Create(ctx, wfhrequest.CreateRequestRequest{
			StaffID:        1,
			Department:     "IT",
			RequestedDates: []string{"2024-06-10"},
			Reason:         "WFH",
		})

		assert.ErrorIs(t, err, wfhrequesterrors.ErrManagerLookupFailed)
	})
}

func TestRequestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, wfhrequesterrors.ErrInvalidRequestID)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)
		assert.ErrorIs(t, err, wfhrequesterrors.ErrRequestNotFound)
	})

	t.Run("found row is mapped to the wire shape", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		date, _ := time.Parse("2006-01-02", "2024-06-10")
		r := &wfhrequest.Request{
			ID:         uuid.New(),
			StaffID:    1,
			Department: "IT",
			Reason:     "WFH",
			TimeOfDay:  wfhrequest.TimeOfDayHalfAM,
			Status:     wfhrequest.StatusPending,
			Dates:      []wfhrequest.RequestDate{{Date: date}},
			CreatedAt:  time.Now(),
		}
		deps.repo.EXPECT().FindByID(gomock.Any(), r.ID.String()).Return(r, nil)

		resp, err := deps.service.GetByID(ctx, r.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, r.ID.String(), resp.RequestID)
		assert.Equal(t, []string{"2024-06-10"}, resp.RequestedDates)
		assert.Equal(t, wfhrequest.TimeOfDayHalfAM, resp.TimeOfDay)
		assert.NotEmpty(t, resp.CreatedAt)
	})
}

func TestRequestService_Listings(t *testing.T) {
	ctx := context.Background()

	t.Run("by staff", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByStaff(gomock.Any(), 1).
			Return([]wfhrequest.Request{{ID: uuid.New(), StaffID: 1}}, nil)

		resp, err := deps.service.GetByStaff(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("by manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindByManager(gomock.Any(), 2).
			Return([]wfhrequest.Request{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

		resp, err := deps.service.GetByManager(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}
