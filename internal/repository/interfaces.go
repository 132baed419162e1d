// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/hariprasadd0/codora/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
	EnableCalendar(ctx context.Context, userID string, creds entities.CalendarCredentials) (*entities.User, error)
	DisableCalendar(ctx context.Context, userID string) (*entities.User, error)
}

// TeamInterface exposes team and membership operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (*entities.Team, error)
	AddMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	RemoveMember(ctx context.Context, teamID, userID string) error
	IsMember(ctx context.Context, userID, teamID string) (bool, error)
	IsTeamLead(ctx context.Context, userID, teamID string) (bool, error)
}

// ProjectInterface exposes project-related operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, projectID string) (*entities.Project, error)
	ListProjects(ctx context.Context, creatorID string) ([]entities.Project, error)
	UpdateProject(ctx context.Context, projectID string, name, description *string) (*entities.Project, error)
	AttachTeam(ctx context.Context, projectID, teamID string) (*entities.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}

// TaskInterface exposes task-related operations, including the
// transactional assignment engine.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, taskID string) (*entities.Task, error)
	ListTasks(ctx context.Context, projectID string) ([]entities.Task, error)
	UpdateTask(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	AssignTask(ctx context.Context, taskID, assigneeID string) (*entities.Task, error)
}

// CalendarEventInterface exposes calendar event records.
type CalendarEventInterface interface {
	CreateCalendarEvent(ctx context.Context, event entities.CalendarEvent) (*entities.CalendarEvent, error)
	GetCalendarEvent(ctx context.Context, userID, eventID string) (*entities.CalendarEvent, error)
	ListCalendarEvents(ctx context.Context, userID string) ([]entities.CalendarEvent, error)
	DeleteCalendarEvent(ctx context.Context, userID, eventID string) error
}
