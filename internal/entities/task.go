// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// StatusPending marks a task not yet started.
	StatusPending TaskStatus = "PENDING"
	// StatusInProgress marks a task being worked on.
	StatusInProgress TaskStatus = "IN_PROGRESS"
	// StatusCompleted marks a finished task.
	StatusCompleted TaskStatus = "COMPLETED"
	// StatusDelayed marks a task past its deadline.
	StatusDelayed TaskStatus = "DELAYED"
)

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	// PriorityLow marks low priority.
	PriorityLow TaskPriority = "LOW"
	// PriorityMedium marks medium priority.
	PriorityMedium TaskPriority = "MEDIUM"
	// PriorityHigh marks high priority.
	PriorityHigh TaskPriority = "HIGH"
)

// Task belongs to exactly one project. DependencyTaskID, if set, must
// reference a task in the same project.
type Task struct {
	ID               string
	ProjectID        string
	Title            string
	Description      string
	Status           TaskStatus
	Priority         TaskPriority
	AssignedToID     *string
	DependencyTaskID *string
	Deadline         *time.Time
	CreatedAt        *time.Time
	UpdatedAt        *time.Time
}

// TaskUpdate carries optional field changes for UpdateTask.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	Deadline    *time.Time
}
