// Package usecase contains application service interfaces for the delivery layer.
package usecase

import (
	"context"

	"github.com/hariprasadd0/codora/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, email, name string) (*entities.User, error)
	User(ctx context.Context, userID string) (*entities.User, error)
	EnableCalendar(ctx context.Context, userID string, creds entities.CalendarCredentials) (*entities.User, error)
	DisableCalendar(ctx context.Context, userID string) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team and membership operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, creatorID, name string) (*entities.Team, error)
	Team(ctx context.Context, teamID string) (*entities.Team, error)
	AddMember(ctx context.Context, callerID, teamID, userID string, role entities.TeamRole) (*entities.TeamMember, error)
	RemoveMember(ctx context.Context, callerID, teamID, userID string) error
	IsMember(ctx context.Context, userID, teamID string) (bool, error)
	IsTeamLead(ctx context.Context, userID, teamID string) (bool, error)
}

// ProjectUsecaseInterface abstracts project-related operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, creatorID, name, description string) (*entities.Project, error)
	Project(ctx context.Context, projectID string) (*entities.Project, error)
	ListProjects(ctx context.Context, creatorID string) ([]entities.Project, error)
	UpdateProject(ctx context.Context, callerID, projectID string, name, description *string) (*entities.Project, error)
	AttachTeam(ctx context.Context, callerID, projectID, teamID string) (*entities.Project, error)
	DeleteProject(ctx context.Context, callerID, projectID string) error
}

// TaskUsecaseInterface abstracts task operations, including assignment.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	Task(ctx context.Context, taskID string) (*entities.Task, error)
	ListTasks(ctx context.Context, projectID string) ([]entities.Task, error)
	UpdateTask(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	AssignTask(ctx context.Context, taskID, assigneeID string) (*entities.Task, error)
}

// CalendarUsecaseInterface abstracts calendar sync and event records.
type CalendarUsecaseInterface interface {
	SyncTask(ctx context.Context, taskID, userID string) (*entities.CalendarEvent, error)
	CalendarEvent(ctx context.Context, userID, eventID string) (*entities.CalendarEvent, error)
	ListCalendarEvents(ctx context.Context, userID string) ([]entities.CalendarEvent, error)
	DeleteCalendarEvent(ctx context.Context, userID, eventID string) error
}
