package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-board/internal/logger"
	"github.com/MKhiriev/go-task-board/models"
)

// taskRepository is the SQL-backed implementation of [TaskRepository].
//
// The write paths (create, update) run inside transactions so that the
// advisory duplicate-name pre-check and the write itself appear atomic to
// concurrent callers. The tasks.task_name UNIQUE constraint remains the
// authoritative backstop: a violation raised despite the pre-check is
// mapped to [ErrTaskNameAlreadyExists].
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask implements [TaskRepository].
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: beginning transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// advisory pre-check; the constraint is the backstop
	taken, err := r.taskNameTaken(ctx, tx, task.TaskName, 0)
	if err != nil {
		return models.Task{}, err
	}
	if taken {
		return models.Task{}, ErrTaskNameAlreadyExists
	}

	query, args, err := insertTaskQuery(r.db.Builder(), task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Task
	row := tx.QueryRowContext(ctx, query, args...)
	if err := scanTask(row, &saved); err != nil {
		if r.db.IsUniqueViolation(err) {
			return models.Task{}, ErrTaskNameAlreadyExists
		}

		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning created task")
		return models.Task{}, r.db.wrapDBError(err)
	}

	if err := tx.Commit(); err != nil {
		if r.db.IsUniqueViolation(err) {
			return models.Task{}, ErrTaskNameAlreadyExists
		}

		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: committing transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// GetTask implements [TaskRepository]. Any caller may fetch any task by ID;
// this method is the single point where an ownership rule would be added.
func (r *taskRepository) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectTaskByIDQuery(r.db.Builder(), taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error: building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Task
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanTask(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error: scanning found task")
		return models.Task{}, r.db.wrapDBError(err)
	}

	return found, nil
}

// UpdateTask implements [TaskRepository]. All five mutable columns are
// overwritten, user_id included.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: beginning transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// advisory pre-check against *other* tasks only
	taken, err := r.taskNameTaken(ctx, tx, task.TaskName, task.TaskID)
	if err != nil {
		return models.Task{}, err
	}
	if taken {
		return models.Task{}, ErrTaskNameAlreadyExists
	}

	query, args, err := updateTaskQuery(r.db.Builder(), task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Task
	row := tx.QueryRowContext(ctx, query, args...)
	if err := scanTask(row, &saved); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Task{}, ErrTaskNotFound
		case r.db.IsUniqueViolation(err):
			return models.Task{}, ErrTaskNameAlreadyExists
		}

		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: scanning updated task")
		return models.Task{}, r.db.wrapDBError(err)
	}

	if err := tx.Commit(); err != nil {
		if r.db.IsUniqueViolation(err) {
			return models.Task{}, ErrTaskNameAlreadyExists
		}

		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: committing transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// DeleteTask implements [TaskRepository]. Removal is unconditional for any
// existing ID; no ownership rule is applied.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteTaskQuery(r.db.Builder(), taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: executing delete")
		return r.db.wrapDBError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: reading rows affected")
		return r.db.wrapDBError(err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// ListTasksByOwner implements [TaskRepository].
func (r *taskRepository) ListTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectTasksByOwnerQuery(r.db.Builder(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := scanTask(rows, &task); err != nil {
			log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: scanning task rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasksByOwner").Msg("error: iterating task rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// taskNameTaken runs the advisory duplicate-name pre-check inside tx.
func (r *taskRepository) taskNameTaken(ctx context.Context, tx *sql.Tx, taskName string, excludeTaskID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectTaskNameTakenQuery(r.db.Builder(), taskName, excludeTaskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.taskNameTaken").Msg("error: building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var taken bool
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&taken); err != nil {
		log.Err(err).Str("func", "*taskRepository.taskNameTaken").Msg("error: executing name check")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return taken, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, task *models.Task) error {
	return row.Scan(&task.TaskID, &task.UserID, &task.TaskName, &task.TaskDescription, &task.DueDate, &task.Progress)
}
