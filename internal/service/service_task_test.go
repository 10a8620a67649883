package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-task-board/internal/logger"
	"github.com/MKhiriev/go-task-board/internal/mock"
	"github.com/MKhiriev/go-task-board/internal/store"
	"github.com/MKhiriev/go-task-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTaskSvc(t *testing.T, ctrl *gomock.Controller) (*taskService, *mock.MockTaskRepository) {
	t.Helper()
	mockRepo := mock.NewMockTaskRepository(ctrl)
	svc := NewTaskService(mockRepo, logger.Nop()).(*taskService)
	return svc, mockRepo
}

func validInput() models.TaskInput {
	return models.TaskInput{
		TaskName:        "write report",
		TaskDescription: "quarterly numbers",
		DueDate:         models.NewDate(2026, 9, 15),
		Progress:        models.ProgressNotStarted,
	}
}

// ── Buckets ──────────────────────────────────────────────────────────────────

func TestTaskService_Buckets_SplitsByProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	// already ordered by due date, ties broken by insertion order
	tasks := []models.Task{
		{TaskID: 1, UserID: 7, TaskName: "a", Progress: models.ProgressInProgress, DueDate: models.NewDate(2026, 9, 1)},
		{TaskID: 2, UserID: 7, TaskName: "b", Progress: models.ProgressNotStarted, DueDate: models.NewDate(2026, 9, 2)},
		{TaskID: 3, UserID: 7, TaskName: "c", Progress: models.ProgressNotStarted, DueDate: models.NewDate(2026, 9, 2)},
		{TaskID: 4, UserID: 7, TaskName: "d", Progress: models.ProgressCompleted, DueDate: models.NewDate(2026, 9, 3)},
	}

	mockRepo.EXPECT().ListTasksByOwner(ctx, int64(7)).Return(tasks, nil)

	buckets, err := svc.Buckets(ctx, 7)
	require.NoError(t, err)

	require.Len(t, buckets.NotStarted, 2)
	require.Len(t, buckets.InProgress, 1)
	require.Len(t, buckets.Completed, 1)

	// the repository order must survive the split
	assert.Equal(t, int64(2), buckets.NotStarted[0].TaskID)
	assert.Equal(t, int64(3), buckets.NotStarted[1].TaskID)
	assert.Equal(t, int64(1), buckets.InProgress[0].TaskID)
	assert.Equal(t, int64(4), buckets.Completed[0].TaskID)
}

func TestTaskService_Buckets_AnonymousCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no ListTasksByOwner expectation: anonymous must not touch the store
	svc, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	buckets, err := svc.Buckets(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, buckets.NotStarted)
	assert.Empty(t, buckets.InProgress)
	assert.Empty(t, buckets.Completed)
}

func TestTaskService_Buckets_SkipsUnknownProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	tasks := []models.Task{
		{TaskID: 1, UserID: 7, Progress: models.ProgressNotStarted},
		{TaskID: 2, UserID: 7, Progress: models.Progress("Paused")},
	}

	mockRepo.EXPECT().ListTasksByOwner(ctx, int64(7)).Return(tasks, nil)

	buckets, err := svc.Buckets(ctx, 7)
	require.NoError(t, err)
	require.Len(t, buckets.NotStarted, 1)
	assert.Empty(t, buckets.InProgress)
	assert.Empty(t, buckets.Completed)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestTaskService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()
	input := validInput()

	mockRepo.EXPECT().CreateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, int64(7), task.UserID, "the task must belong to the caller")
			assert.Equal(t, input.TaskName, task.TaskName)
			assert.Equal(t, input.TaskDescription, task.TaskDescription)
			assert.True(t, task.DueDate.Equal(input.DueDate))
			assert.Equal(t, input.Progress, task.Progress)
			task.TaskID = 1
			return task, nil
		},
	)

	created, err := svc.Create(ctx, 7, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.TaskID)
}

func TestTaskService_Create_AnonymousRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, 0, validInput())
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTaskService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.TaskInput)
		wantErr error
	}{
		{"empty name", func(i *models.TaskInput) { i.TaskName = "" }, ErrValidationEmptyTaskName},
		{"empty description", func(i *models.TaskInput) { i.TaskDescription = "" }, ErrValidationEmptyDescription},
		{"no due date", func(i *models.TaskInput) { i.DueDate = models.Date{} }, ErrValidationNoDueDate},
		{"bad progress", func(i *models.TaskInput) { i.Progress = "Done" }, ErrValidationBadProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(ctx, 7, input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskService_Create_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateTask(ctx, gomock.Any()).Return(models.Task{}, store.ErrTaskNameAlreadyExists)

	_, err := svc.Create(ctx, 7, validInput())
	require.ErrorIs(t, err, store.ErrTaskNameAlreadyExists)
}

// ── Get / Update / Delete ────────────────────────────────────────────────────

func TestTaskService_Get_NoOwnershipCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Task{TaskID: 5, UserID: 99, TaskName: "someone else's task"}
	mockRepo.EXPECT().GetTask(ctx, int64(5)).Return(stored, nil)

	// any caller may fetch any task, identity is not even an argument
	found, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(99), found.UserID)
}

func TestTaskService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetTask(ctx, int64(99)).Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.Get(ctx, 99)
	require.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskService_Update_ReassignsOwnerToCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()
	input := validInput()

	mockRepo.EXPECT().UpdateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, int64(5), task.TaskID)
			// the editing caller becomes the owner, whoever owned it before
			assert.Equal(t, int64(7), task.UserID)
			return task, nil
		},
	)

	updated, err := svc.Update(ctx, 5, 7, input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.UserID)
}

func TestTaskService_Update_AnonymousRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Update(ctx, 5, 0, validInput())
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestTaskService_Delete_NoOwnershipCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteTask(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 5))
}

func TestTaskService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteTask(ctx, int64(99)).Return(store.ErrTaskNotFound)

	require.ErrorIs(t, svc.Delete(ctx, 99), store.ErrTaskNotFound)
}
