// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/hariprasadd0/codora/internal/entities"
	"github.com/hariprasadd0/codora/internal/transport/http/dto"
)

// ToDTOUser maps entities.User to the transport model, omitting credentials.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		CalendarEnabled: u.CalendarEnabled,
	}
}

// ToDTOTeam maps entities.Team to the transport model.
func ToDTOTeam(team entities.Team) dto.Team {
	members := make([]dto.TeamMember, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, ToDTOMember(m))
	}

	return dto.Team{
		ID:        team.ID,
		Name:      team.Name,
		CreatorID: team.CreatorID,
		Members:   members,
	}
}

// ToDTOMember maps entities.TeamMember to the transport model.
func ToDTOMember(m entities.TeamMember) dto.TeamMember {
	return dto.TeamMember{
		TeamID: m.TeamID,
		UserID: m.UserID,
		Role:   string(m.Role),
	}
}

// ToDTOProject maps entities.Project to the transport model.
func ToDTOProject(p entities.Project) dto.Project {
	return dto.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatorID:   p.CreatorID,
		TeamID:      p.TeamID,
	}
}

// ToDTOTask maps entities.Task to the transport model.
func ToDTOTask(t entities.Task) dto.Task {
	return dto.Task{
		ID:               t.ID,
		ProjectID:        t.ProjectID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           string(t.Status),
		Priority:         string(t.Priority),
		AssignedToID:     t.AssignedToID,
		DependencyTaskID: t.DependencyTaskID,
		Deadline:         t.Deadline,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// ToDTOTasks maps a task slice.
func ToDTOTasks(tasks []entities.Task) []dto.Task {
	res := make([]dto.Task, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, ToDTOTask(t))
	}
	return res
}

// ToDTOCalendarEvent maps entities.CalendarEvent to the transport model.
func ToDTOCalendarEvent(ev entities.CalendarEvent) dto.CalendarEvent {
	return dto.CalendarEvent{
		ID:              ev.ID,
		UserID:          ev.UserID,
		TaskID:          ev.TaskID,
		ProviderEventID: ev.ProviderEventID,
		Title:           ev.Title,
		Start:           ev.Start,
		End:             ev.End,
	}
}

// ToDTOCalendarEvents maps an event slice.
func ToDTOCalendarEvents(events []entities.CalendarEvent) []dto.CalendarEvent {
	res := make([]dto.CalendarEvent, 0, len(events))
	for _, ev := range events {
		res = append(res, ToDTOCalendarEvent(ev))
	}
	return res
}
