package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-board/internal/logger"
	"github.com/MKhiriev/go-task-board/internal/store"
	"github.com/MKhiriev/go-task-board/models"
)

// taskService is the concrete implementation of TaskService. All duplicate
// name and not-found semantics live in the repository; this layer validates
// boundary input, applies the anonymous-caller rule, and shapes the board
// view.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService backed by the given repository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// Buckets implements [TaskService]. Tasks arrive from the repository
// ordered by due date (insertion order as tiebreak) and are split across
// the three buckets without reordering, so each bucket keeps that order.
func (t *taskService) Buckets(ctx context.Context, ownerID int64) (models.TaskBuckets, error) {
	log := logger.FromContext(ctx)

	// anonymous callers get the landing state, no store round trip
	if ownerID == 0 {
		return models.TaskBuckets{}, nil
	}

	tasks, err := t.taskRepository.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("listing tasks by owner failed")
		return models.TaskBuckets{}, fmt.Errorf("listing tasks by owner failed: %w", err)
	}

	var buckets models.TaskBuckets
	for _, task := range tasks {
		switch task.Progress {
		case models.ProgressNotStarted:
			buckets.NotStarted = append(buckets.NotStarted, task)
		case models.ProgressInProgress:
			buckets.InProgress = append(buckets.InProgress, task)
		case models.ProgressCompleted:
			buckets.Completed = append(buckets.Completed, task)
		default:
			log.Warn().
				Int64("task_id", task.TaskID).
				Str("progress", task.Progress.String()).
				Msg("task with unknown progress value skipped")
		}
	}

	return buckets, nil
}

// Create implements [TaskService].
func (t *taskService) Create(ctx context.Context, ownerID int64, input models.TaskInput) (models.Task, error) {
	log := logger.FromContext(ctx)

	if ownerID == 0 {
		log.Error().Msg("task creation requires an authenticated owner")
		return models.Task{}, ErrInvalidDataProvided
	}
	if err := validateTaskInput(input); err != nil {
		log.Error().Str("task_name", input.TaskName).Err(err).Msg("invalid task data provided")
		return models.Task{}, err
	}

	createdTask, err := t.taskRepository.CreateTask(ctx, models.Task{
		UserID:          ownerID,
		TaskName:        input.TaskName,
		TaskDescription: input.TaskDescription,
		DueDate:         input.DueDate,
		Progress:        input.Progress,
	})
	if err != nil {
		log.Err(err).Str("task_name", input.TaskName).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// Get implements [TaskService].
func (t *taskService) Get(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	foundTask, err := t.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task lookup failed")
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	return foundTask, nil
}

// Update implements [TaskService]. The updated task is owned by callerID
// afterwards, whoever owned it before.
func (t *taskService) Update(ctx context.Context, taskID, callerID int64, input models.TaskInput) (models.Task, error) {
	log := logger.FromContext(ctx)

	if callerID == 0 {
		log.Error().Int64("task_id", taskID).Msg("task update requires an authenticated caller")
		return models.Task{}, ErrInvalidDataProvided
	}
	if err := validateTaskInput(input); err != nil {
		log.Error().Str("task_name", input.TaskName).Err(err).Msg("invalid task data provided")
		return models.Task{}, err
	}

	updatedTask, err := t.taskRepository.UpdateTask(ctx, models.Task{
		TaskID:          taskID,
		UserID:          callerID,
		TaskName:        input.TaskName,
		TaskDescription: input.TaskDescription,
		DueDate:         input.DueDate,
		Progress:        input.Progress,
	})
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updatedTask, nil
}

// Delete implements [TaskService].
func (t *taskService) Delete(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	if err := t.taskRepository.DeleteTask(ctx, taskID); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}
