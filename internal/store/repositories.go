package store

import "github.com/MKhiriev/go-task-board/internal/logger"

// Repositories bundles all persistence-layer contracts for injection into
// the service layer.
type Repositories struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewRepositories constructs every repository against the given database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
