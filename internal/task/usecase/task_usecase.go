package usecase

import (
	"strings"
	"time"

	"taskboard-backend/internal/task/domain"
	"taskboard-backend/internal/task/repository"
	"taskboard-backend/pkg/apperror"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) GetUserTasks(userID string, status *string) ([]*domain.Task, error) {
	var statusFilter *domain.Status
	if status != nil && *status != "" {
		s := domain.StatusFromColumn(*status)
		statusFilter = &s
	}

	tasks, err := u.taskRepo.FindByOwner(userID, statusFilter)
	if err != nil {
		return nil, apperror.Internal("failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (u *taskUsecase) CreateTask(userID string, req TaskCreateRequest) (*domain.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.Validation("title is required")
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		parsed, ok := domain.ParsePriority(req.Priority)
		if !ok {
			return nil, apperror.Validation("priority must be Low, Medium or High")
		}
		priority = parsed
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.StatusFromColumn(req.Status),
		Priority:    priority,
		DueDate:     dueDate,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, apperror.Internal("failed to create task", err)
	}

	return task, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.findOwnedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, apperror.Validation("title is required")
		}
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Status != nil {
		task.Status = domain.StatusFromColumn(*updates.Status)
	}
	if updates.Priority != nil {
		parsed, ok := domain.ParsePriority(*updates.Priority)
		if !ok {
			return nil, apperror.Validation("priority must be Low, Medium or High")
		}
		task.Priority = parsed
	}
	if updates.DueDate != nil {
		dueDate, err := parseDueDate(updates.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = dueDate
	}

	// Last writer wins: no version check on concurrent edits.
	if err := u.taskRepo.Update(task); err != nil {
		return nil, apperror.Internal("failed to update task", err)
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	if _, err := u.findOwnedTask(userID, taskID); err != nil {
		return err
	}

	if err := u.taskRepo.Delete(taskID); err != nil {
		return apperror.Internal("failed to delete task", err)
	}
	return nil
}

// findOwnedTask loads a task and enforces ownership. A foreign task reads
// as not found so callers cannot probe other users' boards.
func (u *taskUsecase) findOwnedTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, apperror.Internal("failed to look up task", err)
	}
	if task == nil || task.UserID != userID {
		return nil, apperror.NotFound("Task not found")
	}
	return task, nil
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t, nil
		}
	}
	return nil, apperror.Validation("dueDate must be an RFC3339 timestamp or YYYY-MM-DD date")
}
