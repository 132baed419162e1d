// Package dto defines transport request/response shapes.
package dto

import "time"

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

// Error codes returned by the API.
const (
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeInvalidInput        ErrorCode = "INVALID_INPUT"
	CodeConflict            ErrorCode = "CONFLICT"
	CodeForbidden           ErrorCode = "FORBIDDEN"
	CodePreconditionFailed  ErrorCode = "PRECONDITION_FAILED"
	CodeInvalidState        ErrorCode = "INVALID_STATE"
	CodeExternalService     ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeInternal            ErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// User is the transport model of a user. Credentials are never exposed.
type User struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	CalendarEnabled bool   `json:"calendarEnabled"`
}

// CreateUserRequest registers an account.
type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// EnableCalendarRequest attaches delegated calendar credentials.
type EnableCalendarRequest struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	CalendarID   string `json:"calendarId"`
}

// TeamMember is the transport model of a membership.
type TeamMember struct {
	TeamID string `json:"teamId"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Team is the transport model of a team.
type Team struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatorID string       `json:"creatorId"`
	Members   []TeamMember `json:"members"`
}

// CreateTeamRequest creates a team.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest adds a user to a team.
type AddMemberRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Project is the transport model of a project.
type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatorID   string  `json:"creatorId"`
	TeamID      *string `json:"teamId,omitempty"`
}

// CreateProjectRequest creates a solo project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest patches a project.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AttachTeamRequest converts a project to team mode.
type AttachTeamRequest struct {
	TeamID string `json:"teamId"`
}

// Task is the transport model of a task.
type Task struct {
	ID               string     `json:"id"`
	ProjectID        string     `json:"projectId"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	AssignedToID     *string    `json:"assignedToId,omitempty"`
	DependencyTaskID *string    `json:"dependencyTaskId,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// CreateTaskRequest creates a task under a project.
type CreateTaskRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	AssignedToID     *string    `json:"assignedToId,omitempty"`
	DependencyTaskID *string    `json:"dependencyTaskId,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
}

// UpdateTaskRequest patches a task.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// AssignTaskRequest assigns a task to a user.
type AssignTaskRequest struct {
	AssignedToID string `json:"assignedToId"`
}

// CalendarEvent is the transport model of a synced event record.
type CalendarEvent struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	TaskID          string    `json:"taskId"`
	ProviderEventID string    `json:"providerEventId"`
	Title           string    `json:"title"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
}
