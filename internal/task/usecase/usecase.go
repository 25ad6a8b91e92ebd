package usecase

import "taskboard-backend/internal/task/domain"

// TaskCreateRequest carries a new task's fields. Status and priority are
// defaulted when empty; unknown status values map through the column table.
type TaskCreateRequest struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *string
}

// TaskUpdateRequest carries a partial update; nil fields are left untouched.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// TaskUsecase defines task operations, all scoped to the calling user.
// A task owned by someone else is indistinguishable from a missing one.
type TaskUsecase interface {
	GetUserTasks(userID string, status *string) ([]*domain.Task, error)
	CreateTask(userID string, req TaskCreateRequest) (*domain.Task, error)
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)
	DeleteTask(userID, taskID string) error
}
