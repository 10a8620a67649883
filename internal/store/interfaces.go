//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-task-board/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] if the email is
	// already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by their login email. Returns
	// [ErrNoUserWasFound] if no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TaskRepository is the persistence contract for tasks.
//
// CreateTask and UpdateTask each run as a single transaction: an advisory
// duplicate-name check followed by the write, with the tasks.task_name
// UNIQUE constraint as the authoritative backstop. A constraint violation
// that slips past the pre-check is mapped to [ErrTaskNameAlreadyExists]
// rather than surfacing as a raw driver error.
type TaskRepository interface {
	// CreateTask persists a new task and returns it with the
	// server-assigned TaskID.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// GetTask fetches a task by ID regardless of owner. Returns
	// [ErrTaskNotFound] if it does not exist. This is the single point at
	// which an ownership check would be added.
	GetTask(ctx context.Context, taskID int64) (models.Task, error)

	// UpdateTask overwrites all five mutable fields of the task with the
	// given ID, including user_id. Returns [ErrTaskNotFound] or
	// [ErrTaskNameAlreadyExists].
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)

	// DeleteTask removes a task unconditionally. Returns [ErrTaskNotFound]
	// if no row was affected.
	DeleteTask(ctx context.Context, taskID int64) error

	// ListTasksByOwner returns all tasks owned by ownerID ordered ascending
	// by due date, ties broken by insertion order.
	ListTasksByOwner(ctx context.Context, ownerID int64) ([]models.Task, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying or must be abandoned.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
