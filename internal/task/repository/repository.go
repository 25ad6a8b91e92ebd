package repository

import "taskboard-backend/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByOwner returns a user's tasks in insertion order, optionally
	// filtered by status
	FindByOwner(userID string, status *domain.Status) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error
}
