//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-task-board/models"
)

// AuthService covers registration, credential verification and the session
// token lifecycle.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService covers the task lifecycle and the bucketed board view. Every
// operation takes the caller's identity explicitly; nothing is read from
// ambient state, so the service is a pure function of its inputs.
type TaskService interface {
	// Buckets returns ownerID's tasks grouped by progress. An anonymous
	// caller (ownerID 0) receives empty buckets.
	Buckets(ctx context.Context, ownerID int64) (models.TaskBuckets, error)

	// Create persists a new task owned by ownerID.
	Create(ctx context.Context, ownerID int64, input models.TaskInput) (models.Task, error)

	// Get fetches a single task by ID for display. No ownership check.
	Get(ctx context.Context, taskID int64) (models.Task, error)

	// Update overwrites all mutable fields of the task and reassigns it to
	// callerID, mirroring the edit form's behavior.
	Update(ctx context.Context, taskID, callerID int64, input models.TaskInput) (models.Task, error)

	// Delete removes a task unconditionally. No ownership check.
	Delete(ctx context.Context, taskID int64) error
}
