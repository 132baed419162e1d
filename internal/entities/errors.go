// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEventNotFound signals missing calendar event record.
	ErrEventNotFound = errors.New("calendar event not found")
	// ErrAssigneeNotFound signals the requested assignee does not exist.
	ErrAssigneeNotFound = errors.New("assignee not found")
	// ErrDependencyInvalid signals a dependency task that is missing or lives in another project.
	ErrDependencyInvalid = errors.New("dependency task invalid")
	// ErrTaskAlreadyAssigned signals re-assignment to the current assignee.
	ErrTaskAlreadyAssigned = errors.New("task already assigned")
	// ErrMemberExists signals duplicate team membership.
	ErrMemberExists = errors.New("member already in team")
	// ErrNotTeamMember signals assignee outside the project team.
	ErrNotTeamMember = errors.New("not a team member")
	// ErrNotProjectCreator signals an operation reserved for the project creator,
	// including solo-project assignment to anyone else.
	ErrNotProjectCreator = errors.New("project creator required")
	// ErrNotTeamLead signals a caller without the TEAM_LEAD role.
	ErrNotTeamLead = errors.New("caller is not a team lead")
	// ErrCalendarNotConnected signals missing delegated calendar credentials.
	ErrCalendarNotConnected = errors.New("calendar not connected")
	// ErrTaskNoDeadline signals a sync attempt on a task without a deadline.
	ErrTaskNoDeadline = errors.New("task has no deadline")
	// ErrExternalService wraps opaque calendar provider failures.
	ErrExternalService = errors.New("external service error")
)
