package domain

import "time"

// Status represents the board lane a task sits in
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Task is one card on the board, always owned by a user
type Task struct {
	ID          string     `json:"_id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status" gorm:"default:'To Do'"`
	Priority    Priority   `json:"priority" gorm:"default:'Medium'"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StatusFromColumn maps a drag destination to a status. The client sends
// either a column key or a canonical status; anything unrecognized lands
// back in "To Do".
func StatusFromColumn(column string) Status {
	switch column {
	case "todo", string(StatusToDo):
		return StatusToDo
	case "inProgress", string(StatusInProgress):
		return StatusInProgress
	case "done", string(StatusDone):
		return StatusDone
	default:
		return StatusToDo
	}
}

// ParsePriority validates a priority value. ok is false for anything
// outside the three levels.
func ParsePriority(value string) (Priority, bool) {
	switch Priority(value) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(value), true
	default:
		return "", false
	}
}
