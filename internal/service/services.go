package service

import (
	"github.com/MKhiriev/go-task-board/internal/config"
	"github.com/MKhiriev/go-task-board/internal/crypto"
	"github.com/MKhiriev/go-task-board/internal/logger"
	"github.com/MKhiriev/go-task-board/internal/store"
)

// Services bundles every use-case service for injection into the transport
// layer.
type Services struct {
	AuthService AuthService
	TaskService TaskService
}

// NewServices wires the services to their repositories.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, crypto.NewPasswordHasher(), cfg, logger),
		TaskService: NewTaskService(repositories.TaskRepository, logger),
	}
}
