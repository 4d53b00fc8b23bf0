package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	housekeepingMocks "frontdesk/internal/domains/housekeeping/mocks"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/model/dto"
	"frontdesk/internal/domains/housekeeping/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
)

type housekeepingMockSet struct {
	repo     *housekeepingMocks.MockHousekeeping
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
}

func newHousekeepingService(t *testing.T) (service.Housekeeping, housekeepingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := housekeepingMockSet{
		repo:     housekeepingMocks.NewMockHousekeeping(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(set.repo, set.roomRepo, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestHousekeepingService_Create(t *testing.T) {
	req := dto.CreateTaskRequest{
		RoomID:   "room-1",
		TaskType: model.TypeDailyCleaning,
		Notes:    "daily refresh",
	}

	t.Run("successful create", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, model.TypeDailyCleaning, res.TaskType)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestHousekeepingService_Update(t *testing.T) {
	pendingTask := model.Task{
		ID:       "task-1",
		RoomID:   "room-1",
		TaskType: model.TypeDailyCleaning,
		Status:   model.StatusPending,
	}

	t.Run("pending moves to in_progress", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingTask, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusInProgress}, "task-1")

		assert.NoError(t, err)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingTask, nil)

		err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusCompleted}, "task-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("completed checkout cleaning waits for verification", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		inProgress := model.Task{
			ID:       "task-1",
			RoomID:   "room-1",
			TaskType: model.TypeCheckoutCleaning,
			Status:   model.StatusInProgress,
		}

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inProgress, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				assert.Contains(t, fields, model.FieldCompletedAt)

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusCompleted}, "task-1")

		assert.NoError(t, err)
	})

	t.Run("verified checkout cleaning releases the room", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		completed := model.Task{
			ID:       "task-1",
			RoomID:   "room-1",
			TaskType: model.TypeCheckoutCleaning,
			Status:   model.StatusCompleted,
		}

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(completed, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusVerified}, "task-1")

		assert.NoError(t, err)
	})

	t.Run("in-progress task cannot skip straight to verified", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		inProgress := model.Task{
			ID:       "task-1",
			RoomID:   "room-1",
			TaskType: model.TypeCheckoutCleaning,
			Status:   model.StatusInProgress,
		}

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inProgress, nil)

		err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusVerified}, "task-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("completed daily cleaning leaves the room alone", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		inProgress := model.Task{
			ID:       "task-1",
			RoomID:   "room-1",
			TaskType: model.TypeDailyCleaning,
			Status:   model.StatusInProgress,
		}

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inProgress, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusCompleted}, "task-1")

		assert.NoError(t, err)
	})

	t.Run("task not found", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Task{}, nil)

		err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: model.StatusInProgress}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHousekeepingService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "task-1")

		assert.NoError(t, err)
	})

	t.Run("task not found", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHousekeepingService_EnqueueCheckoutCleaning(t *testing.T) {
	t.Run("creates a pending checkout cleaning task", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, task model.Task) error {
				assert.Equal(t, "room-1", task.RoomID)
				assert.Equal(t, model.TypeCheckoutCleaning, task.TaskType)
				assert.Equal(t, model.StatusPending, task.Status)
				if assert.NotNil(t, task.BookingID) {
					assert.Equal(t, "booking-1", *task.BookingID)
				}

				return nil
			})

		svc.EnqueueCheckoutCleaning(context.Background(), "room-1", "booking-1")
	})

	t.Run("insert failure is swallowed", func(t *testing.T) {
		svc, set := newHousekeepingService(t)

		set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(assert.AnError)

		svc.EnqueueCheckoutCleaning(context.Background(), "room-1", "booking-1")
	})
}
