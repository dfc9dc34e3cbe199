package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"worknest/internal/schedule"
	scheduleMock "worknest/internal/schedule/mock"
	"worknest/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestScheduleService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the entry and echoes the wire shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := scheduleMock.NewMockRepository(ctrl)
		svc := schedule.NewService(repo, zap.NewNop())

		var saved *schedule.Entry
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *schedule.Entry) error {
				saved = e
				return nil
			})

		resp, err := svc.Upsert(ctx, schedule.UpsertEntryRequest{
			StaffID:    1,
			Date:       "2024-06-10",
			Department: "IT",
			Status:     "Approved",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.StaffID)
		assert.Equal(t, "2024-06-10", resp.Date)
		assert.Equal(t, "Approved", resp.Status)

		assert.Equal(t, 1, saved.StaffID)
		assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), saved.Date)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := scheduleMock.NewMockRepository(ctrl)
		svc := schedule.NewService(repo, zap.NewNop())

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := svc.Upsert(ctx, schedule.UpsertEntryRequest{
			StaffID:    1,
			Date:       "2024-06-10",
			Department: "IT",
			Status:     "Approved",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	})
}

func TestScheduleService_GetByStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := scheduleMock.NewMockRepository(ctrl)
	svc := schedule.NewService(repo, zap.NewNop())

	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().FindByStaff(gomock.Any(), 1).Return([]schedule.Entry{
		{StaffID: 1, Date: date, Department: "IT", Status: "Approved"},
	}, nil)

	resp, err := svc.GetByStaff(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2024-06-10", resp[0].Date)
}
