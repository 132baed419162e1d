package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hariprasadd0/codora/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertTaskQuery = `
INSERT INTO tasks(id, project_id, title, description, status, priority, assigned_to_id, dependency_task_id, deadline)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, project_id, title, description, status, priority, assigned_to_id, dependency_task_id, deadline, created_at, updated_at`
	selectTaskQuery = `
SELECT id, project_id, title, description, status, priority, assigned_to_id, dependency_task_id, deadline, created_at, updated_at
FROM tasks WHERE id=$1`
	selectTaskForUpdateQuery = `
SELECT id, project_id, title, description, status, priority, assigned_to_id, dependency_task_id, deadline, created_at, updated_at
FROM tasks WHERE id=$1 FOR UPDATE`
	listTasksQuery = `
SELECT id, project_id, title, description, status, priority, assigned_to_id, dependency_task_id, deadline, created_at, updated_at
FROM tasks WHERE project_id=$1 ORDER BY created_at`
	updateTaskQuery = `
UPDATE tasks
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    status = COALESCE($4, status),
    priority = COALESCE($5, priority),
    deadline = COALESCE($6, deadline),
    updated_at = NOW()
WHERE id=$1
RETURNING id, project_id, title, description, status, priority, assigned_to_id, dependency_task_id, deadline, created_at, updated_at`
	deleteTaskQuery = `DELETE FROM tasks WHERE id=$1`

	selectDependencyProjectQuery = `SELECT project_id FROM tasks WHERE id=$1`
	userExistsQuery              = `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`
	selectProjectForAssignQuery  = `SELECT creator_id, team_id FROM projects WHERE id=$1`
	assignTaskQuery              = `
UPDATE tasks SET assigned_to_id=$2, updated_at=NOW() WHERE id=$1
RETURNING id, project_id, title, description, status, priority, assigned_to_id, dependency_task_id, deadline, created_at, updated_at`
)

// CreateTask inserts a task after validating its project and optional
// dependency inside one transaction.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var creatorID string
	var teamID *string
	if err := tx.QueryRow(ctx, selectProjectForAssignQuery, task.ProjectID).Scan(&creatorID, &teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project lookup: %w", err)
	}

	if task.DependencyTaskID != nil {
		var depProject string
		if err := tx.QueryRow(ctx, selectDependencyProjectQuery, *task.DependencyTaskID).Scan(&depProject); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, entities.ErrDependencyInvalid
			}
			return nil, fmt.Errorf("dependency lookup: %w", err)
		}
		if depProject != task.ProjectID {
			return nil, entities.ErrDependencyInvalid
		}
	}

	if task.AssignedToID != nil {
		var exists bool
		if err := tx.QueryRow(ctx, userExistsQuery, *task.AssignedToID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("assignee lookup: %w", err)
		}
		if !exists {
			return nil, entities.ErrAssigneeNotFound
		}
	}

	created, err := scanTask(tx.QueryRow(ctx, insertTaskQuery,
		task.ID, task.ProjectID, task.Title, task.Description,
		task.Status, task.Priority, task.AssignedToID, task.DependencyTaskID, task.Deadline))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: task id taken", entities.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("insert task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("task created", "task_id", created.ID, "project_id", created.ProjectID)
	return created, nil
}

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, taskID string) (*entities.Task, error) {
	t, err := scanTask(p.db.QueryRow(ctx, selectTaskQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// ListTasks returns the tasks of a project.
func (p *Postgres) ListTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, listTasksQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		var t entities.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority,
			&t.AssignedToID, &t.DependencyTaskID, &t.Deadline, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask patches mutable task fields.
func (p *Postgres) UpdateTask(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error) {
	t, err := scanTask(p.db.QueryRow(ctx, updateTaskQuery,
		taskID, upd.Title, upd.Description, upd.Status, upd.Priority, upd.Deadline))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	p.log.Infow("task updated", "task_id", taskID)
	return t, nil
}

// DeleteTask removes a task.
func (p *Postgres) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := p.db.Exec(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}

	p.log.Infow("task deleted", "task_id", taskID)
	return nil
}

// AssignTask assigns a task to a user inside a single transaction.
//
// The task row is locked FOR UPDATE, so concurrent assignments to the same
// task serialize: the second transaction re-reads the committed assignee and
// fails the already-assigned check instead of silently overwriting. Assignee
// existence, project mode and team membership are all read under the same
// snapshot as the write.
func (p *Postgres) AssignTask(ctx context.Context, taskID, assigneeID string) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := scanTask(tx.QueryRow(ctx, selectTaskForUpdateQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	var assigneeExists bool
	if err := tx.QueryRow(ctx, userExistsQuery, assigneeID).Scan(&assigneeExists); err != nil {
		return nil, fmt.Errorf("assignee lookup: %w", err)
	}
	if !assigneeExists {
		p.log.Errorw("assignee not found", "task_id", taskID, "assignee_id", assigneeID)
		return nil, entities.ErrAssigneeNotFound
	}

	if task.AssignedToID != nil && *task.AssignedToID == assigneeID {
		return nil, entities.ErrTaskAlreadyAssigned
	}

	var creatorID string
	var teamID *string
	if err := tx.QueryRow(ctx, selectProjectForAssignQuery, task.ProjectID).Scan(&creatorID, &teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A task without a live project means the store is corrupt.
			p.log.Errorw("task without project", "task_id", taskID, "project_id", task.ProjectID)
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project lookup: %w", err)
	}

	if teamID != nil {
		var member bool
		if err := tx.QueryRow(ctx, memberExistsQuery, assigneeID, *teamID).Scan(&member); err != nil {
			return nil, fmt.Errorf("membership check: %w", err)
		}
		if !member {
			p.log.Errorw("assignee not in project team", "task_id", taskID, "assignee_id", assigneeID, "team_id", *teamID)
			return nil, entities.ErrNotTeamMember
		}
	} else if assigneeID != creatorID {
		p.log.Errorw("solo project assignment rejected", "task_id", taskID, "assignee_id", assigneeID)
		return nil, entities.ErrNotProjectCreator
	}

	updated, err := scanTask(tx.QueryRow(ctx, assignTaskQuery, taskID, assigneeID))
	if err != nil {
		return nil, fmt.Errorf("assign task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("task assigned", "task_id", taskID, "assignee_id", assigneeID)
	return updated, nil
}

func scanTask(row pgx.Row) (*entities.Task, error) {
	var t entities.Task
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.AssignedToID, &t.DependencyTaskID, &t.Deadline, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
