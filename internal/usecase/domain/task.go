// Package domain contains application usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"

	"github.com/hariprasadd0/codora/internal/entities"
	"github.com/hariprasadd0/codora/internal/events"

	"github.com/google/uuid"
)

// CreateTask creates a task under a project and broadcasts TaskCreated.
func (u *Usecase) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if task.ProjectID == "" || task.Title == "" {
		return nil, fmt.Errorf("%w: projectID and title are required", entities.ErrInvalidArgument)
	}

	task.ID = uuid.NewString()
	if task.Status == "" {
		task.Status = entities.StatusPending
	}
	if task.Priority == "" {
		task.Priority = entities.PriorityMedium
	}

	created, err := u.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	u.broadcaster.Broadcast(events.ProjectScope(created.ProjectID), events.TaskCreated, created)
	u.log.Infow("task created", "task_id", created.ID, "project_id", created.ProjectID)
	return created, nil
}

// Task returns a task by id.
func (u *Usecase) Task(ctx context.Context, taskID string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: taskID is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetTask(ctx, taskID)
}

// ListTasks returns the tasks of a project.
func (u *Usecase) ListTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", entities.ErrInvalidArgument)
	}

	if _, err := u.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	return u.repo.ListTasks(ctx, projectID)
}

// UpdateTask patches mutable task fields.
func (u *Usecase) UpdateTask(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: taskID is required", entities.ErrInvalidArgument)
	}
	if upd.Status != nil {
		switch *upd.Status {
		case entities.StatusPending, entities.StatusInProgress, entities.StatusCompleted, entities.StatusDelayed:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *upd.Status)
		}
	}
	if upd.Priority != nil {
		switch *upd.Priority {
		case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh:
		default:
			return nil, fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, *upd.Priority)
		}
	}

	return u.repo.UpdateTask(ctx, taskID, upd)
}

// DeleteTask removes a task.
func (u *Usecase) DeleteTask(ctx context.Context, taskID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return fmt.Errorf("%w: taskID is required", entities.ErrInvalidArgument)
	}

	return u.repo.DeleteTask(ctx, taskID)
}

// AssignTask assigns a task to a user through the transactional engine.
// On commit exactly one TaskAssigned broadcast goes out on the project scope
// and one envelope is queued for the calendar sync listener; a rejected
// assignment emits nothing.
func (u *Usecase) AssignTask(ctx context.Context, taskID, assigneeID string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: taskID is required", entities.ErrInvalidArgument)
	}
	if assigneeID == "" {
		return nil, fmt.Errorf("%w: assigneeID is required", entities.ErrInvalidArgument)
	}

	task, err := u.repo.AssignTask(ctx, taskID, assigneeID)
	if err != nil {
		return nil, err
	}

	u.broadcaster.Broadcast(events.ProjectScope(task.ProjectID), events.TaskAssigned, task)
	u.bus.Publish(events.TaskEnvelope{Event: events.TaskAssigned, Task: *task})

	u.log.Infow("task assigned", "task_id", taskID, "assignee_id", assigneeID)
	return task, nil
}
